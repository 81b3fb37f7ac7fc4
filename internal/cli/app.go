// Package cli implements the interactive terminal interface of jobdesk:
// a REPL whose commands are thin views over the API client, gated by the
// route guard and backed by the session store.
package cli

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"

	"jobdesk/internal/api"
	"jobdesk/internal/config"
	"jobdesk/internal/logging"
	"jobdesk/internal/session"
	"jobdesk/internal/storage"
)

// App wires the session store, API client and guard together and carries the
// I/O endpoints every command reads from and writes to.
type App struct {
	config  *config.Config
	session *session.Store
	client  api.Client
	guard   *Guard
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	closeFn func() error
}

// NewApp builds the application from configuration: opens the local state
// database, constructs the HTTP client (whose bearer token is read from the
// session at dispatch time), and the session store over both.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.StateDBPath)
	if err != nil {
		log.Error(ctx, "opening state database failed", "path", c.StateDBPath, "error", err)
		return nil, err
	}
	tokens := storage.NewSQLiteStore(db)

	var sess *session.Store
	apiClient := api.NewHTTPClient(
		c.APIBaseURL,
		api.TokenFunc(func() string {
			if sess == nil {
				return ""
			}
			return sess.Token()
		}),
		&http.Client{Timeout: c.RequestTimeout},
		log,
	)
	sess = session.NewStore(apiClient, tokens, log)

	return &App{
		config:  c,
		session: sess,
		client:  apiClient,
		guard:   NewGuard(sess),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		closeFn: db.Close,
	}, nil
}

// Run initializes the session from persisted state and enters the REPL.
// The session reaches a terminal state before the first prompt, so no
// protected command can run while the session is still loading.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.closeFn(); err != nil {
			a.log.Error(ctx, "closing state database failed", "error", err)
		}
	}()

	a.session.Initialize(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Check implements the guard consultation for the REPL dispatcher.
func (a *App) Check(requiredRole string) Decision {
	return a.guard.Check(requiredRole)
}

// status renders the prompt suffix: the user's email and role when logged in.
func (a *App) status() string {
	u := a.session.CurrentUser()
	if u == nil {
		return ""
	}
	return "(" + u.Email + " " + u.Role + ")"
}
