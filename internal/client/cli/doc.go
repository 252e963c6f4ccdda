// Package cli provides the interactive Jobly command-line client.
//
// The App resumes any stored session in the background, then runs a REPL
// over the session and catalog services. Typical flow: log in or sign up,
// browse companies and jobs, apply, and review flash messages.
//
// Key features:
//   - Login / Signup / Logout
//   - Profile view and edit
//   - Company and job listings with filters, job applications
//   - Flash messages, dismissable by number
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
