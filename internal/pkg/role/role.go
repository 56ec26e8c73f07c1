package role

// Role enumerates the access roles of the portal. The numeric values mirror
// the RoleID column of the roles table, but authorization decisions compare
// roles, never raw integers.
type Role int

const (
	Unknown               Role = 0
	Admin                 Role = 1
	Editor                Role = 2
	User                  Role = 3
	FixedAssetTeam        Role = 4
	BillingTeam           Role = 5
	KeyAccountsSupervisor Role = 6
	ERTeam                Role = 7
	Temp                  Role = 8
)

func (r Role) String() string {
	switch r {
	case Admin:
		return "Admin"
	case Editor:
		return "Editor"
	case User:
		return "User"
	case FixedAssetTeam:
		return "FixedAssetTeam"
	case BillingTeam:
		return "BillingTeam"
	case KeyAccountsSupervisor:
		return "KeyAccountsSupervisor"
	case ERTeam:
		return "ERTeam"
	case Temp:
		return "Temp"
	}
	return "Unknown"
}

// FromID maps a stored RoleID to its Role. Unknown IDs stay Unknown and are
// denied by every permission set.
func FromID(id int) Role {
	if id >= int(Admin) && id <= int(Temp) {
		return Role(id)
	}
	return Unknown
}

// AllStaff is every permanent role allowed to act on their own records.
// Temp accounts are excluded, matching the legacy "RoleID >= 8 denied" gate.
func AllStaff() []Role {
	return []Role{Admin, Editor, User, FixedAssetTeam, BillingTeam, KeyAccountsSupervisor, ERTeam}
}

// Allowed reports whether r is contained in the permitted set.
func Allowed(r Role, permitted []Role) bool {
	for _, p := range permitted {
		if r == p {
			return true
		}
	}
	return false
}
