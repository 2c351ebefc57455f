// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	schoolModel "sekolahku_backend/internals/features/school/schools/model"
	authHelper "sekolahku_backend/internals/features/users/auth/helper"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	userRepo "sekolahku_backend/internals/features/users/user/repository"
	helpers "sekolahku_backend/internals/helpers"
)

/* ==========================
   Const & small helpers
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

/* ==========================
   Claims builder
========================== */

func buildAccessClaims(user userModel.UserModel, roles []string, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"roles":     roles,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	if user.UserSchoolID != nil {
		claims["school_id"] = user.UserSchoolID.String()
	}
	return claims
}

func issueTokens(db *gorm.DB, c *fiber.Ctx, user *userModel.UserModel) (string, string, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	roles, err := userRepo.UserRoleNames(db, user.UserID)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal ambil roles")
	}

	now := nowUTC()
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(*user, roles, now)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.UserID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// simpan hash refresh (bukan plaintext)
	if err := db.Create(&authModel.RefreshTokenModel{
		UserID:    user.UserID,
		TokenHash: computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}).Error; err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal simpan refresh token")
	}

	return access, refresh, nil
}

/* ==========================
   REGISTER
========================== */

// Register membuat akun user biasa (belum terikat sekolah). Role default
// "user"; keanggotaan sekolah menyusul lewat staff/student management.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := authHelper.ValidateRegisterInput(input.UserName, input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Cek dulu di scope platform (user_school_id NULL): composite unique
	// biasa menganggap NULL distinct, jadi duplikat di scope ini tidak
	// tertangkap index uq_users_school_email. Index parsial
	// uq_users_platform_email (lihat migrasi) menutup race-nya.
	if _, err := userRepo.FindUserByEmailInSchool(db, input.Email, nil); err == nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Email already registered")
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName:     strings.TrimSpace(input.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(input.Email)),
		UserPassword: passwordHash,
	}
	if err := userRepo.CreateUser(db, &user); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	if err := userRepo.GrantRole(db, user.UserID, constants.RoleUser, nil); err != nil {
		// bukan fatal untuk registrasi — role bisa di-grant ulang admin
		_ = err
	}

	return helpers.JsonCreated(c, "Registration successful", nil)
}

/* ==========================
   LOGIN
========================== */

// Email hanya unik PER TENANT: wali dengan anak di dua sekolah punya dua
// akun beremail sama. Kalau email cocok di lebih dari satu scope, login
// harus menyebut school_slug untuk memilih akunnya.
var errLoginAmbiguous = fiber.NewError(fiber.StatusConflict,
	"Email terdaftar di lebih dari satu sekolah; sertakan school_slug")

func pickLoginUser(candidates []userModel.UserModel) (*userModel.UserModel, error) {
	switch len(candidates) {
	case 0:
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	case 1:
		return &candidates[0], nil
	default:
		return nil, errLoginAmbiguous
	}
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email      string `json:"email"`
		Password   string `json:"password"`
		SchoolSlug string `json:"school_slug"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	q := db.Where("LOWER(user_email) = ?", strings.ToLower(strings.TrimSpace(input.Email)))
	if slug := strings.TrimSpace(input.SchoolSlug); slug != "" {
		var school schoolModel.SchoolModel
		if err := db.Where("school_slug = ?", slug).First(&school).Error; err != nil {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		q = q.Where("user_school_id = ?", school.SchoolID)
	}

	var candidates []userModel.UserModel
	if err := q.Limit(5).Find(&candidates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	user, err := pickLoginUser(candidates)
	if err != nil {
		return err
	}
	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := authHelper.CheckPasswordHash(user.UserPassword, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, refresh, err := issueTokens(db, c, user)
	if err != nil {
		return err
	}
	setRefreshCookie(c, refresh)

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"user_id":   user.UserID,
			"user_name": user.UserName,
			"email":     user.UserEmail,
			"school_id": user.UserSchoolID,
		},
	})
}

/* ==========================
   REFRESH TOKEN (rotate)
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return err
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// hash refresh harus dikenal & masih aktif
	hash := computeRefreshHash(refreshCookie, refreshSecret)
	var rt authModel.RefreshTokenModel
	if err := db.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		First(&rt).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	user, err := userRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: revoke token lama, issue pasangan baru
	now := nowUTC()
	if err := db.Model(&authModel.RefreshTokenModel{}).
		Where("id = ?", rt.ID).
		Update("revoked_at", now).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal revoke refresh lama")
	}

	access, refresh, err := issueTokens(db, c, user)
	if err != nil {
		return err
	}
	setRefreshCookie(c, refresh)

	return helpers.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token": access,
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// blacklist access token yang sedang dipakai
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		raw := strings.TrimSpace(authz[7:])
		_ = db.Create(&authModel.TokenBlacklistModel{
			Token:     raw,
			ExpiredAt: nowUTC().Add(accessTTLDefault),
		}).Error
	}

	// revoke refresh token cookie kalau ada
	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			hash := computeRefreshHash(refreshCookie, refreshSecret)
			now := nowUTC()
			_ = db.Model(&authModel.RefreshTokenModel{}).
				Where("token_hash = ? AND revoked_at IS NULL", hash).
				Update("revoked_at", now).Error
		}
	}

	clearRefreshCookie(c)
	return helpers.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	v := c.Locals("user_id")
	userIDStr, ok := v.(string)
	if !ok || userIDStr == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	user, err := userRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if err := authHelper.CheckPasswordHash(user.UserPassword, input.CurrentPassword); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}
	if len(input.NewPassword) < 8 {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "Password minimal 8 karakter")
	}

	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}
	if err := userRepo.UpdateUserPassword(db, userID, newHash); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helpers.JsonUpdated(c, "Password changed successfully", nil)
}

/* ==========================
   Cookies
========================== */

func setRefreshCookie(c *fiber.Ctx, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Path:     "/api/auth",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Expires:  nowUTC().Add(refreshTTLDefault),
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/auth",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Expires:  nowUTC().Add(-time.Hour),
	})
}
