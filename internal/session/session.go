// Package session owns the process-wide authentication state: who is logged
// in, the bearer token backing that, and the lifecycle between them.
//
// The store is the single writer of the persisted token; its in-memory token
// and the persisted copy never diverge. On startup, Initialize replays the
// persisted token through a local expiry check and a server profile fetch.
// A profile-fetch failure during initialization forces a local logout even
// when the cause is a transient network outage; the client cannot tell an
// unreachable server from a rejected token with the current API error
// contract, and failing closed is the safer default.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"jobdesk/internal/api"
	"jobdesk/internal/common"
	"jobdesk/internal/logging"
	"jobdesk/internal/models"
	"jobdesk/internal/storage"
	"jobdesk/internal/token"
)

// State is the lifecycle phase of the session.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateInitializing  State = "initializing"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Result is the outcome of a login or registration attempt. On failure,
// Message carries a user-displayable explanation sourced from the server
// when available.
type Result struct {
	Success bool
	Message string
}

// Store is the single source of truth for the current session.
type Store struct {
	client api.Client
	tokens storage.TokenStore
	log    logging.Logger
	now    func() time.Time

	mu    sync.Mutex
	state State
	tok   string
	user  *models.User
	busy  bool
}

// NewStore creates an uninitialized session over the given API client and
// token storage. Call Initialize before consulting any predicate.
func NewStore(client api.Client, tokens storage.TokenStore, log logging.Logger) *Store {
	return &Store{
		client: client,
		tokens: tokens,
		log:    log,
		now:    time.Now,
		state:  StateUninitialized,
	}
}

// Initialize replays the persisted token, if any, into a terminal state:
//
//   - no persisted token: Anonymous
//   - token fails to decode: clear it, Anonymous
//   - token locally expired: clear it, Anonymous, no network call
//   - otherwise: confirm with GET /auth/profile; success means Authenticated,
//     failure clears the token and ends Anonymous
//
// Every path leaves Loading() false. Initialize is meant to run once at
// startup, before the first guard check.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	s.state = StateInitializing
	s.mu.Unlock()

	stored, err := s.tokens.Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "reading persisted token failed", "error", err)
		s.becomeAnonymous(ctx, false)
		return
	}
	if stored == "" {
		s.becomeAnonymous(ctx, false)
		return
	}

	payload, err := token.Decode(stored)
	if err == nil && payload.ExpiredAt(s.now()) {
		err = common.ErrTokenExpired
	}
	if err != nil {
		s.log.Warn(ctx, "discarding persisted token", "error", err)
		s.becomeAnonymous(ctx, true)
		return
	}

	// Expose the token so the profile fetch goes out authenticated.
	s.mu.Lock()
	s.tok = stored
	s.mu.Unlock()

	user, err := s.client.Profile(ctx)
	if err != nil {
		s.log.Warn(ctx, "profile fetch failed, logging out locally", "error", err)
		s.becomeAnonymous(ctx, true)
		return
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = &user
	s.mu.Unlock()
}

// becomeAnonymous resets the in-memory session and, when clearStored is set,
// removes the persisted token as well.
func (s *Store) becomeAnonymous(ctx context.Context, clearStored bool) {
	if clearStored {
		if err := s.tokens.Clear(ctx); err != nil {
			s.log.Error(ctx, "clearing persisted token failed", "error", err)
		}
	}
	s.mu.Lock()
	s.state = StateAnonymous
	s.tok = ""
	s.user = nil
	s.mu.Unlock()
}

// beginMutation marks a mutating call in flight. Login and register are
// serialized; a second call while one is outstanding fails fast instead of
// racing, so the slower response can never overwrite the newer state.
// Logout stays outside the flag: it writes unconditionally and must never
// be refused.
func (s *Store) beginMutation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *Store) endMutation() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// Login authenticates against the server. On success the returned token is
// persisted first, then the in-memory session flips to Authenticated with
// the returned user. On failure the session is left exactly as it was.
func (s *Store) Login(ctx context.Context, email, password string) Result {
	if !s.beginMutation() {
		return Result{Message: common.ErrBusy.Error()}
	}
	defer s.endMutation()

	resp, err := s.client.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return Result{Message: failureMessage(err, "Login failed")}
	}

	if err := s.adopt(ctx, resp); err != nil {
		s.log.Error(ctx, "persisting token failed", "error", err)
		return Result{Message: "Login failed"}
	}
	return Result{Success: true}
}

// Register creates an account; the server logs the new user straight in, so
// the contract mirrors Login.
func (s *Store) Register(ctx context.Context, reg models.RegisterRequest) Result {
	if !s.beginMutation() {
		return Result{Message: common.ErrBusy.Error()}
	}
	defer s.endMutation()

	resp, err := s.client.Register(ctx, reg)
	if err != nil {
		return Result{Message: failureMessage(err, "Registration failed")}
	}

	if err := s.adopt(ctx, resp); err != nil {
		s.log.Error(ctx, "persisting token failed", "error", err)
		return Result{Message: "Registration failed"}
	}
	return Result{Success: true}
}

// adopt persists the token from an auth response and installs the session.
// Persisting happens before the in-memory switch so the two copies of the
// token cannot diverge: a failed write leaves the old session untouched.
func (s *Store) adopt(ctx context.Context, resp models.AuthResponse) error {
	if err := s.tokens.Set(ctx, resp.Token); err != nil {
		return err
	}
	user := resp.User
	s.mu.Lock()
	s.state = StateAuthenticated
	s.tok = resp.Token
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Logout clears the persisted and in-memory token and user unconditionally.
// It is idempotent: logging out twice lands in the same Anonymous state.
func (s *Store) Logout(ctx context.Context) error {
	err := s.tokens.Clear(ctx)
	s.mu.Lock()
	s.state = StateAnonymous
	s.tok = ""
	s.user = nil
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return nil
}

// UpdateUser shallow-merges the non-nil patch fields into the current user.
// Calling it while not authenticated returns common.ErrNotAuthenticated.
func (s *Store) UpdateUser(patch models.UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticated || s.user == nil {
		return common.ErrNotAuthenticated
	}
	patch.Apply(s.user)
	return nil
}

// State returns the current lifecycle phase.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Loading reports whether initialization has not yet reached a terminal
// state. Guards must defer rendering while this is true.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateUninitialized || s.state == StateInitializing
}

// Token returns the current bearer token, or "" when anonymous. Store
// satisfies api.TokenSource through this method.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tok
}

// CurrentUser returns a copy of the logged-in user, or nil when anonymous.
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Role returns the current user's role, or "" when anonymous.
func (s *Store) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *Store) IsEmployer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.IsEmployer()
}

func (s *Store) IsJobSeeker() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.IsJobSeeker()
}

// failureMessage extracts the server's displayable message from err, falling
// back to the operation-specific default.
func failureMessage(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

var _ api.TokenSource = (*Store)(nil)
