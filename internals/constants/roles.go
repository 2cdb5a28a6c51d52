package constants

import "fmt"

// Role adalah tipe tertutup untuk role pengguna.
// Hanya dua role yang dikenal sistem: ADMIN dan USER.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole menormalisasi string role dari klaim/upstream ke tipe Role.
// Role yang tidak dikenal mengembalikan ok=false (dianggap anonymous).
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	default:
		return "", false
	}
}

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyUsersCanAccess  = "❌ Hanya user login yang boleh mengakses fitur %s."
	ErrOnlyGuestCanAccess  = "❌ Fitur %s hanya untuk pengunjung yang belum login."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorUser(feature string) string {
	return fmt.Sprintf(ErrOnlyUsersCanAccess, feature)
}

func RoleErrorGuest(feature string) string {
	return fmt.Sprintf(ErrOnlyGuestCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []Role{
		RoleUser,
		RoleAdmin,
	}

	AdminOnly = []Role{
		RoleAdmin,
	}

	// Guard USER bersifat strict: admin yang membuka halaman user
	// tetap diarahkan ke /unauthorized, sama seperti sebaliknya.
	UserOnly = []Role{
		RoleUser,
	}
)

// Redirect target untuk guard (dipakai frontend untuk navigasi)
const (
	RedirectLogin        = "/login"
	RedirectUnauthorized = "/unauthorized"
	RedirectHome         = "/"
)
