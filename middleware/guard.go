package middleware

import "pharmacy-shop/models"

const (
	RedirectSignIn = "/signin"
	RedirectHome   = "/"
)

// GuardDecision is the outcome of a route guard: render the protected
// content, or send the caller somewhere else.
type GuardDecision struct {
	Allowed    bool
	RedirectTo string
}

// RequireAuthenticated allows any signed-in session and sends anonymous
// callers to the sign-in view.
func RequireAuthenticated(session models.Session) GuardDecision {
	if session.Authenticated() {
		return GuardDecision{Allowed: true}
	}
	return GuardDecision{RedirectTo: RedirectSignIn}
}

// RequireRole allows a signed-in session with exactly the given role.
// Everything else lands on the home view, not sign-in: a signed-in user
// of the wrong role has nothing to gain from the sign-in page.
func RequireRole(session models.Session, role models.Role) GuardDecision {
	if current, ok := session.Role(); ok && current == role {
		return GuardDecision{Allowed: true}
	}
	return GuardDecision{RedirectTo: RedirectHome}
}
