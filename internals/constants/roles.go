package constants

// Nama role baku di tabel roles.
const (
	RoleSuperAdmin = "super-admin" // bypass semua gate, lintas tenant
	RoleAdmin      = "admin"       // admin sekolah (per tenant)
	RoleTeacher    = "teacher"
	RoleStaff      = "staff"
	RoleParent     = "parent"
	RoleStudent    = "student"
	RoleUser       = "user"
)

// AllRoles: seluruh role yang dikenal sistem, untuk validasi grant.
var AllRoles = []string{
	RoleUser,
	RoleStudent,
	RoleParent,
	RoleStaff,
	RoleTeacher,
	RoleAdmin,
	RoleSuperAdmin,
}

// IsValidRole mengecek nama role (sudah lower-case) dikenal sistem.
func IsValidRole(name string) bool {
	for _, r := range AllRoles {
		if r == name {
			return true
		}
	}
	return false
}
