package auth

import "crypto/subtle"

// State is the tagged authentication state of one admin browser session.
// States are ordered: a later state implies every earlier one, which is
// what the route guards compare against.
type State int

const (
	// StateAnonymous is the initial state of every session
	StateAnonymous State = iota

	// StatePasswordVerified means the shared password matched and the
	// session is waiting for the one-time code
	StatePasswordVerified

	// StateAuthenticated grants access to the admin listing
	StateAuthenticated
)

// String returns the state name for logging
func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StatePasswordVerified:
		return "password_verified"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Gate is the two-stage admin authentication state machine: shared
// password first, then a time-based one-time code. There is no logout
// transition; sessions fall back to anonymous on idle expiry.
type Gate struct {
	adminPassword string
	totpSecret    string
}

// NewGate creates a gate with the out-of-band supplied secrets.
func NewGate(adminPassword, totpSecret string) *Gate {
	return &Gate{
		adminPassword: adminPassword,
		totpSecret:    totpSecret,
	}
}

// SubmitPassword handles the first factor. A correct password moves an
// anonymous session to password_verified; a wrong one is not an error,
// the session just stays where it was.
func (g *Gate) SubmitPassword(current State, password string) State {
	if current == StateAuthenticated {
		return current
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(g.adminPassword)) == 1 {
		return StatePasswordVerified
	}

	return current
}

// SubmitCode handles the second factor. Only a password_verified
// session can advance; a wrong code leaves it at password_verified.
func (g *Gate) SubmitCode(current State, code string) State {
	if current != StatePasswordVerified {
		return current
	}

	if ValidateCode(g.totpSecret, code) {
		return StateAuthenticated
	}

	return StatePasswordVerified
}

// TOTPSecret exposes the shared secret for the enrollment view.
func (g *Gate) TOTPSecret() string {
	return g.totpSecret
}
