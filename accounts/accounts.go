package accounts

// TrackType identifies the membership track an account belongs to.
type TrackType string

const (
	TrackBackend  TrackType = "BACKEND"
	TrackFrontend TrackType = "FRONTEND"
	TrackDesign   TrackType = "DESIGN"
)

// RoleType represents an account role.
type RoleType string

const (
	RoleAdmin  RoleType = "ADMIN_LION" // Can manage assignments, lectures, and members
	RoleMember RoleType = "BABY_LION"  // Regular member
)

// Account is a registered member. Accounts are looked up by the email address
// the identity provider verified; authentication never creates them.
type Account struct {
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Track TrackType `json:"track"`
	Role  RoleType  `json:"role"`
}

// IsAdmin returns true if the account holds the elevated role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
