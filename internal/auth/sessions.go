package auth

import (
	"encoding/gob"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "lca_admin"

	keyState    = "auth_state"
	keyLastSeen = "last_seen"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string // "success" or "error"
	Message  string
}

func init() {
	// securecookie serializes session values with gob
	gob.Register(Flash{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// SessionManager keeps the auth gate state in a signed cookie. The
// cookie carries only the state tag and a last-seen timestamp; idle
// expiry is checked lazily on the next read, there is no active timer.
type SessionManager struct {
	store        *sessions.CookieStore
	idleTimeout  time.Duration
	timeProvider TimeProvider
}

// NewSessionManager creates a manager signing cookies with the given
// key and expiring sessions after idleTimeout without requests.
func NewSessionManager(signingKey []byte, idleTimeout time.Duration) *SessionManager {
	store := sessions.NewCookieStore(signingKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(idleTimeout.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionManager{
		store:        store,
		idleTimeout:  idleTimeout,
		timeProvider: &RealTimeProvider{},
	}
}

// State reads the session state of the request. A missing, malformed or
// idle-expired session reads as anonymous.
func (m *SessionManager) State(r *http.Request) State {
	// Get never fails into an unusable session: a bad cookie yields a fresh one
	session, _ := m.store.Get(r, sessionName)

	rawState, ok := session.Values[keyState].(int)
	if !ok {
		return StateAnonymous
	}

	lastSeen, ok := session.Values[keyLastSeen].(int64)
	if !ok {
		return StateAnonymous
	}

	if m.timeProvider.Now().Sub(time.Unix(lastSeen, 0)) > m.idleTimeout {
		return StateAnonymous
	}

	return State(rawState)
}

// SetState records a gate transition and resets the idle window.
func (m *SessionManager) SetState(w http.ResponseWriter, r *http.Request, state State) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values[keyState] = int(state)
	session.Values[keyLastSeen] = m.timeProvider.Now().Unix()
	return session.Save(r, w)
}

// Touch slides the idle window forward without changing state.
// Called by the auth middleware on every guarded request.
func (m *SessionManager) Touch(w http.ResponseWriter, r *http.Request) error {
	state := m.State(r)
	return m.SetState(w, r, state)
}

// AddFlash queues a one-shot message for the next rendered page.
func (m *SessionManager) AddFlash(w http.ResponseWriter, r *http.Request, category, message string) error {
	session, _ := m.store.Get(r, sessionName)
	session.AddFlash(Flash{Category: category, Message: message})
	return session.Save(r, w)
}

// Flashes drains the queued messages.
func (m *SessionManager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	session, _ := m.store.Get(r, sessionName)

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}

	// Flashes mutates the session, the drain has to be persisted
	_ = session.Save(r, w)

	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}

	return flashes
}
