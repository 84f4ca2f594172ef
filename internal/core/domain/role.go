package domain

// Role identifies the authorization class of an account.
type Role string

const (
	RoleAdmin            Role = "ADMIN"
	RoleEmployee         Role = "EMPLOYEE"
	RoleRetailCustomer   Role = "RETAIL_CUSTOMER"
	RoleResellerCustomer Role = "RESELLER_CUSTOMER"
)

// roleMeta is the single source of truth for everything derived from a role.
// Landing paths match the storefront client routes.
type roleMeta struct {
	displayName string
	landingPath string
	badgeColor  string
}

var roleTable = map[Role]roleMeta{
	RoleAdmin:            {displayName: "Administrator", landingPath: "/admin/dashboard", badgeColor: "red"},
	RoleEmployee:         {displayName: "Employee", landingPath: "/employee/dashboard", badgeColor: "blue"},
	RoleRetailCustomer:   {displayName: "Retail Customer", landingPath: "/dashboard", badgeColor: "green"},
	RoleResellerCustomer: {displayName: "Reseller Customer", landingPath: "/reseller/catalog", badgeColor: "purple"},
}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	_, ok := roleTable[r]
	return ok
}

// LandingPath returns the client route a freshly authenticated user of this
// role is sent to. Unknown roles fall back to the retail landing — routing is
// total and never errors.
func (r Role) LandingPath() string {
	if meta, ok := roleTable[r]; ok {
		return meta.landingPath
	}
	return roleTable[RoleRetailCustomer].landingPath
}

// DisplayName returns the human-readable role name. Unknown roles are
// rendered as-is.
func (r Role) DisplayName() string {
	if meta, ok := roleTable[r]; ok {
		return meta.displayName
	}
	return string(r)
}

// BadgeColor returns the UI badge color associated with the role.
func (r Role) BadgeColor() string {
	if meta, ok := roleTable[r]; ok {
		return meta.badgeColor
	}
	return "gray"
}

// AdminCreatableRoles lists the roles an administrator may provision through
// the back-office. ADMIN accounts are seeded out-of-band and RETAIL_CUSTOMER
// accounts come only from self-signup.
var AdminCreatableRoles = []Role{RoleEmployee, RoleResellerCustomer}

// AdminCreatable reports whether an administrator may create an account with
// this role.
func (r Role) AdminCreatable() bool {
	for _, allowed := range AdminCreatableRoles {
		if r == allowed {
			return true
		}
	}
	return false
}
