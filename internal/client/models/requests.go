package models

// Credentials is the body of POST /auth/token.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupData is the body of POST /auth/register.
type SignupData struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ProfilePatch is the body of PATCH /users/:username. Empty fields are left
// untouched by the backend, so a blank password keeps the current one.
type ProfilePatch struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p == ProfilePatch{}
}

// Result is the outcome of a user-initiated session action: success, or the
// list of messages to show next to the form.
type Result struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors,omitempty"`
}

func Succeeded() Result {
	return Result{Success: true}
}

func Failed(messages ...string) Result {
	return Result{Success: false, Errors: messages}
}
