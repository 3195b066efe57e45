package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Role  Role   `json:"role"`
}

// Identity is the cached login: an opaque bearer token plus the user record.
// It is owned by the credential store; services borrow a read-only snapshot
// per operation and never mutate it.
type Identity struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
