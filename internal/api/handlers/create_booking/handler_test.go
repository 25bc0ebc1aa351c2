package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lc-autoel/LCA-BookingSite/internal/api/handlers"
	createReservation "github.com/lc-autoel/LCA-BookingSite/internal/usecase/create_reservation"
)

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	gotRequest *createReservation.Request
	resp       *createReservation.Response
	err        error
}

func (u *fakeUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	u.gotRequest = req
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

type flashRecord struct {
	category string
	message  string
}

type fakeSessions struct {
	flashes []flashRecord
}

func (s *fakeSessions) AddFlash(w http.ResponseWriter, r *http.Request, category, message string) error {
	s.flashes = append(s.flashes, flashRecord{category: category, message: message})
	return nil
}

func postBookingForm(h *Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"name":          {"Jens Hansen"},
		"email":         {"jens@example.dk"},
		"nummerplade":   {"AB12345"},
		"telefon":       {"12345678"},
		"datetime_slot": {"2024-05-02|10:00"},
	}
}

func TestHandleSuccess(t *testing.T) {
	uc := &fakeUseCase{resp: &createReservation.Response{
		ID:        1,
		Name:      "Jens Hansen",
		CreatedAt: time.Now(),
	}}
	sessions := &fakeSessions{}
	h := NewHandler(uc, sessions, &nopLogger{})

	rec := postBookingForm(h, validForm())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/booking", rec.Header().Get("Location"))

	require.NotNil(t, uc.gotRequest)
	assert.Equal(t, "AB12345", uc.gotRequest.LicensePlate)
	assert.Equal(t, "2024-05-02|10:00", uc.gotRequest.Selection)

	require.Len(t, sessions.flashes, 1)
	assert.Equal(t, handlers.FlashSuccess, sessions.flashes[0].category)
	assert.Equal(t, msgBookingCreated, sessions.flashes[0].message)
}

func TestHandleFailuresLookIdentical(t *testing.T) {
	// валидация, гонка за слот и отказ хранилища дают один и тот же
	// ответ пользователю
	tests := []struct {
		name string
		err  error
	}{
		{"validation failure", createReservation.ErrInvalidInput},
		{"malformed selection", createReservation.ErrInvalidSelection},
		{"bad date", createReservation.ErrInvalidDate},
		{"slot taken", createReservation.ErrSlotTaken},
		{"storage failure", createReservation.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}
			sessions := &fakeSessions{}
			h := NewHandler(uc, sessions, &nopLogger{})

			rec := postBookingForm(h, validForm())

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/booking", rec.Header().Get("Location"))

			require.Len(t, sessions.flashes, 1)
			assert.Equal(t, handlers.FlashError, sessions.flashes[0].category)
			assert.Equal(t, msgBookingFailed, sessions.flashes[0].message)
		})
	}
}
