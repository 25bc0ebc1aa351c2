package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lc-autoel/LCA-BookingSite/internal/auth"
)

type fakeSessionState struct {
	state   auth.State
	touched int
}

func (s *fakeSessionState) State(r *http.Request) auth.State {
	return s.state
}

func (s *fakeSessionState) Touch(w http.ResponseWriter, r *http.Request) error {
	s.touched++
	return nil
}

func guardedRequest(t *testing.T, sessions *fakeSessionState, min auth.State) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	handler := RequireState(sessions, min, "/admin_login")(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/booking_admin", nil))
	return rec, reached
}

func TestRequireStateRedirectsBelowMinimum(t *testing.T) {
	tests := []struct {
		name  string
		state auth.State
		min   auth.State
	}{
		{"anonymous blocked from second factor", auth.StateAnonymous, auth.StatePasswordVerified},
		{"anonymous blocked from admin", auth.StateAnonymous, auth.StateAuthenticated},
		{"password only blocked from admin", auth.StatePasswordVerified, auth.StateAuthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &fakeSessionState{state: tt.state}

			rec, reached := guardedRequest(t, sessions, tt.min)

			assert.False(t, reached)
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/admin_login", rec.Header().Get("Location"))
			assert.Zero(t, sessions.touched)
		})
	}
}

func TestRequireStatePassesAtOrAboveMinimum(t *testing.T) {
	tests := []struct {
		name  string
		state auth.State
		min   auth.State
	}{
		{"password verified reaches second factor", auth.StatePasswordVerified, auth.StatePasswordVerified},
		{"authenticated reaches second factor", auth.StateAuthenticated, auth.StatePasswordVerified},
		{"authenticated reaches admin", auth.StateAuthenticated, auth.StateAuthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &fakeSessionState{state: tt.state}

			rec, reached := guardedRequest(t, sessions, tt.min)

			assert.True(t, reached)
			assert.Equal(t, http.StatusOK, rec.Code)
			// прошедший запрос сдвигает idle-окно
			assert.Equal(t, 1, sessions.touched)
		})
	}
}
