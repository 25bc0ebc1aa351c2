package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

func newTestSessionManager(idleTimeout time.Duration) (*SessionManager, *fakeTimeProvider) {
	clock := &fakeTimeProvider{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	m := NewSessionManager([]byte("0123456789abcdef0123456789abcdef"), idleTimeout)
	m.timeProvider = clock
	return m, clock
}

// requestWithCookies переносит cookies из ответа в новый запрос,
// как это делает браузер
func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/booking_admin", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestStateDefaultsToAnonymous(t *testing.T) {
	m, _ := newTestSessionManager(10 * time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/booking_admin", nil)
	assert.Equal(t, StateAnonymous, m.State(req))
}

func TestSetStateRoundTrip(t *testing.T) {
	m, _ := newTestSessionManager(10 * time.Minute)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin_login", nil)
	require.NoError(t, m.SetState(rec, req, StateAuthenticated))

	next := requestWithCookies(t, rec)
	assert.Equal(t, StateAuthenticated, m.State(next))
}

func TestStateWithinIdleWindow(t *testing.T) {
	m, clock := newTestSessionManager(10 * time.Minute)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin_login", nil)
	require.NoError(t, m.SetState(rec, req, StatePasswordVerified))

	clock.now = clock.now.Add(9 * time.Minute)

	next := requestWithCookies(t, rec)
	assert.Equal(t, StatePasswordVerified, m.State(next))
}

func TestStateExpiresAfterIdleTimeout(t *testing.T) {
	m, clock := newTestSessionManager(10 * time.Minute)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin_login", nil)
	require.NoError(t, m.SetState(rec, req, StateAuthenticated))

	clock.now = clock.now.Add(11 * time.Minute)

	// простой дольше окна откатывает сессию к анонимной
	next := requestWithCookies(t, rec)
	assert.Equal(t, StateAnonymous, m.State(next))
}

func TestTouchSlidesIdleWindow(t *testing.T) {
	m, clock := newTestSessionManager(10 * time.Minute)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin_login", nil)
	require.NoError(t, m.SetState(rec, req, StateAuthenticated))

	// через 8 минут сессия активна, Touch сдвигает окно
	clock.now = clock.now.Add(8 * time.Minute)
	touchRec := httptest.NewRecorder()
	touchReq := requestWithCookies(t, rec)
	require.NoError(t, m.Touch(touchRec, touchReq))

	// еще через 8 минут без Touch сессия истекла бы
	clock.now = clock.now.Add(8 * time.Minute)
	next := requestWithCookies(t, touchRec)
	assert.Equal(t, StateAuthenticated, m.State(next))
}

func TestFlashRoundTrip(t *testing.T) {
	m, _ := newTestSessionManager(10 * time.Minute)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", nil)
	require.NoError(t, m.AddFlash(rec, req, "success", "Din booking blev gennemført!"))

	// первый рендер забирает сообщение
	drainRec := httptest.NewRecorder()
	drainReq := requestWithCookies(t, rec)
	flashes := m.Flashes(drainRec, drainReq)
	require.Len(t, flashes, 1)
	assert.Equal(t, "success", flashes[0].Category)
	assert.Equal(t, "Din booking blev gennemført!", flashes[0].Message)

	// второй рендер уже пустой
	secondReq := requestWithCookies(t, drainRec)
	assert.Empty(t, m.Flashes(httptest.NewRecorder(), secondReq))
}
