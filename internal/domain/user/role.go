package user

// Role enum. Resolved by the external identity provider and carried in
// JWT claims; the engine only checks it at the HTTP boundary.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// CanManagePayroll reports whether the role may mutate periods, invoices
// and settlements. Any authenticated user may read their own wallet and
// invoices.
func CanManagePayroll(r Role) bool {
	return r == RoleOwner || r == RoleAdmin
}
