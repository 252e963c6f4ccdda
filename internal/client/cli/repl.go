package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobly/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	state() services.State
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Companies(ctx context.Context, args []string) error
	Company(ctx context.Context, args []string) error
	Jobs(ctx context.Context) error
	Job(ctx context.Context, args []string) error
	Apply(ctx context.Context, args []string) error
	Messages(ctx context.Context) error
	Dismiss(ctx context.Context, args []string) error
}

const (
	helpAnonymous     = "Available commands: login, signup, messages, dismiss <n>, exit"
	helpAuthenticated = "Available commands: companies [name], company <handle>, jobs, job <id>, apply <id>, " +
		"profile, edit-profile, messages, dismiss <n>, logout, exit"
	msgLoading    = "Loading..."
	msgLoginFirst = "Please log in or sign up first."
)

// protected lists commands that need an authenticated session.
var protected = map[string]bool{
	"companies":    true,
	"company":      true,
	"jobs":         true,
	"job":          true,
	"apply":        true,
	"profile":      true,
	"edit-profile": true,
}

// runREPL starts a simple read–eval–print loop for the Jobly CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn). Commands listed in
// protected answer "Loading..." while the session resolves and ask the user
// to log in while anonymous.
//
//	Always:
//	  - help                - show available commands
//	  - login | signup      - authenticate
//	  - logout              - end the session
//	  - messages            - list flash messages
//	  - dismiss <n>         - remove message n
//	  - exit | quit         - leave the program
//
//	Logged in:
//	  - companies [name]    - list companies, optionally by name
//	  - company <handle>    - company details and jobs
//	  - jobs                - search jobs (title, min salary, equity)
//	  - job <id>            - job details
//	  - apply <id>          - apply to a job
//	  - profile             - show the current user
//	  - edit-profile        - update name, email or password
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("jobly%s> ", prefixSpace(statusFn())))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if protected[cmd] {
			switch a.state() {
			case services.StateAuthenticated:
			case services.StateResolving:
				printlnFn(msgLoading)
				continue
			default:
				printlnFn(msgLoginFirst)
				continue
			}
		}

		switch cmd {
		case "help":
			if a.state() == services.StateAuthenticated {
				printlnFn(helpAuthenticated)
			} else {
				printlnFn(helpAnonymous)
			}

		case "login":
			_ = a.Login(ctx)

		case "signup", "register":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit-profile":
			_ = a.EditProfile(ctx)

		case "companies":
			_ = a.Companies(ctx, args)

		case "company":
			_ = a.Company(ctx, args)

		case "jobs":
			_ = a.Jobs(ctx)

		case "job":
			_ = a.Job(ctx, args)

		case "apply":
			_ = a.Apply(ctx, args)

		case "messages":
			_ = a.Messages(ctx)

		case "dismiss":
			_ = a.Dismiss(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
