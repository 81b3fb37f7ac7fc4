package cli

// Decision is the outcome of a guard check for a protected view.
type Decision int

const (
	// DecisionDefer means the session is still initializing; show a neutral
	// loading state and never a login redirect.
	DecisionDefer Decision = iota
	// DecisionLogin means the user is not authenticated and must log in.
	DecisionLogin
	// DecisionForbidden means the user is authenticated but lacks the
	// required role.
	DecisionForbidden
	// DecisionAllow permits rendering the protected view.
	DecisionAllow
)

// SessionView is the slice of session state the guard consults.
type SessionView interface {
	Loading() bool
	IsAuthenticated() bool
	Role() string
}

// Guard gates access to protected views based on session state and an
// optional required role.
type Guard struct {
	session SessionView
}

func NewGuard(s SessionView) *Guard {
	return &Guard{session: s}
}

// Check evaluates access for a view. requiredRole "" means any authenticated
// user. The order is fixed: a loading session always defers, even for views
// the eventual state would forbid.
func (g *Guard) Check(requiredRole string) Decision {
	if g.session.Loading() {
		return DecisionDefer
	}
	if !g.session.IsAuthenticated() {
		return DecisionLogin
	}
	if requiredRole != "" && g.session.Role() != requiredRole {
		return DecisionForbidden
	}
	return DecisionAllow
}
