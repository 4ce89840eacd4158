package ai

// Role tags the author of a message part.
type Role string

const (
	RoleUser   Role = "user"
	RoleModel  Role = "model"
	// RoleSystem carries instructions; providers send it in their system slot.
	RoleSystem Role = "system"
)

// Message is one role-tagged turn sent to a Provider.
type Message struct {
	Role Role
	Text string
}
