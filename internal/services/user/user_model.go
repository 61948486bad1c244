package user

// User is one account row on the module detail page.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// Filter narrows the user listing. Empty fields match everything; Search is
// a case-insensitive substring match on name or email.
type Filter struct {
	Search string
	Role   string
	Status string
}
