package helper

import (
	"crypto/rand"
	"encoding/base64"
)

// RandomSecret menghasilkan string acak kriptografis sepanjang n karakter
// (base64url, tanpa padding). Dipakai untuk password awal akun yang dibuat
// sistem — nilainya tidak pernah dikembalikan ke caller.
func RandomSecret(n int) string {
	if n < 1 {
		n = 32
	}
	// base64 mengembang ~4/3; alokasikan byte secukupnya lalu potong.
	raw := make([]byte, (n*3+3)/4+2)
	if _, err := rand.Read(raw); err != nil {
		// crypto/rand gagal hanya saat entropi OS rusak total
		panic(err)
	}
	s := base64.RawURLEncoding.EncodeToString(raw)
	return s[:n]
}
