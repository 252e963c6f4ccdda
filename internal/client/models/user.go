// Package models defines the Jobly resources exchanged with the backend and
// the request payloads the client sends.
package models

import "slices"

// User is the current-user record returned by GET /users/:username.
type User struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`

	// Applications lists applied job ids. Some backend versions send Jobs
	// (objects with an id) instead; AppliedJobIDs merges both.
	Applications []int `json:"applications,omitempty"`
	Jobs         []Job `json:"jobs,omitempty"`
}

// AppliedJobIDs returns the ids of every job the user has applied to.
func (u *User) AppliedJobIDs() []int {
	if u == nil {
		return nil
	}
	ids := slices.Clone(u.Applications)
	for _, j := range u.Jobs {
		if !slices.Contains(ids, j.ID) {
			ids = append(ids, j.ID)
		}
	}
	return ids
}

// HasApplied reports whether jobID is among the user's applications.
func (u *User) HasApplied(jobID int) bool {
	return slices.Contains(u.AppliedJobIDs(), jobID)
}

// Clone returns a deep copy so callers cannot mutate session state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Applications = slices.Clone(u.Applications)
	c.Jobs = slices.Clone(u.Jobs)
	return &c
}

// FullName joins first and last name.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
