package entity

// Role is the closed set of account roles carried in access tokens.
type Role string

const (
	RoleUser     Role = "user"
	RolePreparer Role = "preparer"
	RoleAdmin    Role = "admin"
)

// ParseRole accepts only the known roles. Anything else, including "", is rejected.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleUser, RolePreparer, RoleAdmin:
		return r, true
	}
	return "", false
}
