package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case RoleCustomer, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	Points       int      `db:"points"`
}
