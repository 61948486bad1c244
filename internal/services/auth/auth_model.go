package auth

// StorageKey is the single persistence key holding the serialized signed-in
// user. Absent key means signed out.
const StorageKey = "skillbuilder_mock_auth"

// User is the session user exposed to consumers. Role is a free-form string
// ("admin", "trainer", "participant"); no enumeration is enforced.
type User struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Role      string  `json:"role"`
	ImageURL  *string `json:"imageUrl"`
}

// Credential is a user plus its password. It only ever lives inside the
// credential store and is never serialized out of this package.
type Credential struct {
	User
	Password string `json:"-"`
}

// State is the session state shape exposed to consumers. IsLoaded
// distinguishes "not yet read from storage" from "confirmed signed out".
type State struct {
	IsLoaded   bool  `json:"isLoaded"`
	IsSignedIn bool  `json:"isSignedIn"`
	User       *User `json:"user"`
}

// SignUpRequest captures the registration payload.
type SignUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Result is the outcome of a sign-in or sign-up attempt. Credential failures
// are carried here, never as a transport error.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
