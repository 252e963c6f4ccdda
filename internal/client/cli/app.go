package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dmitrijs2005/jobly/internal/client/flash"
	"github.com/dmitrijs2005/jobly/internal/client/services"
	"github.com/dmitrijs2005/jobly/internal/logging"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

type App struct {
	session services.SessionService
	catalog services.CatalogService
	flash   *flash.Queue
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(session services.SessionService, catalog services.CatalogService, flashes *flash.Queue,
	logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		session: session,
		catalog: catalog,
		flash:   flashes,
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run resumes the stored session in the background and serves the REPL
// until the user quits or input ends. Protected commands answer
// "Loading..." until the session is resolved.
func (a *App) Run(ctx context.Context) {
	hctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		st := a.session.Hydrate(hctx)
		a.logger.Debug(ctx, "session resolved", "state", st.String())
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	printlnFn("Welcome to Jobly CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) state() services.State {
	return a.session.State()
}

// getStatus renders the prompt status: who is logged in and how many
// messages are waiting.
func (a *App) getStatus() string {
	var parts []string

	snap := a.session.Snapshot()
	switch snap.State {
	case services.StateAuthenticated:
		parts = append(parts, snap.User.Username)
	case services.StateResolving:
		parts = append(parts, "loading")
	}

	switch n := a.flash.Len(); n {
	case 0:
	case 1:
		parts = append(parts, "1 message")
	default:
		parts = append(parts, fmt.Sprintf("%d messages", n))
	}

	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) printErrors(errs []string) {
	for _, e := range errs {
		a.printf("  ! %s\n", e)
	}
}

// printLatestFlash shows the message an action just queued.
func (a *App) printLatestFlash() {
	msgs := a.flash.List()
	if len(msgs) > 0 {
		a.printf("%s\n", msgs[len(msgs)-1])
	}
}
