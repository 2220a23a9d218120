package types

// Role is the operational role of an Actor.
// Roles are mutually exclusive: exactly one is active per actor.
// A value outside the closed set below is a valid, fully-denied role,
// never an error.
type Role string

// the closed role set
const (
	SuperAdmin Role = "super_admin"
	Admin      Role = "admin"
	Manager    Role = "manager"
	Supervisor Role = "supervisor"
	Marketer   Role = "marketer"
	Staff      Role = "staff"
)

var roleDisplayNames = map[Role]string{
	SuperAdmin: "Super Admin",
	Admin:      "Admin",
	Manager:    "Manager",
	Supervisor: "Supervisor",
	Marketer:   "Marketer",
	Staff:      "Staff",
}

func (r Role) String() string {
	return string(r)
}

// DisplayName is a presentation helper, not security-relevant.
// Unknown roles fall back to their raw value.
func (r Role) DisplayName() string {
	if n, ok := roleDisplayNames[r]; ok {
		return n
	}
	return string(r)
}
