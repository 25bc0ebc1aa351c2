package auth

import (
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPassword = "correct-horse-battery-staple"
	testSecret   = "JBSWY3DPEHPK3PXP"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "anonymous", StateAnonymous.String())
	assert.Equal(t, "password_verified", StatePasswordVerified.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestStateOrdering(t *testing.T) {
	assert.True(t, StateAnonymous < StatePasswordVerified)
	assert.True(t, StatePasswordVerified < StateAuthenticated)
}

func TestSubmitPassword(t *testing.T) {
	gate := NewGate(testPassword, testSecret)

	// правильный пароль продвигает анонимную сессию
	assert.Equal(t, StatePasswordVerified, gate.SubmitPassword(StateAnonymous, testPassword))

	// неправильный пароль не меняет состояние и не является ошибкой
	assert.Equal(t, StateAnonymous, gate.SubmitPassword(StateAnonymous, "wrong"))
	assert.Equal(t, StateAnonymous, gate.SubmitPassword(StateAnonymous, ""))

	// повторная отправка пароля не откатывает второй фактор
	assert.Equal(t, StateAuthenticated, gate.SubmitPassword(StateAuthenticated, testPassword))
	assert.Equal(t, StateAuthenticated, gate.SubmitPassword(StateAuthenticated, "wrong"))
}

func TestSubmitCodeValid(t *testing.T) {
	gate := NewGate(testPassword, testSecret)

	code, err := totp.GenerateCode(testSecret, time.Now())
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, gate.SubmitCode(StatePasswordVerified, code))
}

func TestSubmitCodeWrong(t *testing.T) {
	gate := NewGate(testPassword, testSecret)

	// неверный код оставляет сессию на первом факторе
	assert.Equal(t, StatePasswordVerified, gate.SubmitCode(StatePasswordVerified, "000000"))
	assert.Equal(t, StatePasswordVerified, gate.SubmitCode(StatePasswordVerified, ""))
}

func TestSubmitCodeRequiresPasswordFirst(t *testing.T) {
	gate := NewGate(testPassword, testSecret)

	code, err := totp.GenerateCode(testSecret, time.Now())
	require.NoError(t, err)

	// второй фактор без первого не продвигает сессию
	assert.Equal(t, StateAnonymous, gate.SubmitCode(StateAnonymous, code))
}

func TestValidateCodeExpired(t *testing.T) {
	// код из далекого прошлого не проходит проверку
	code, err := totp.GenerateCode(testSecret, time.Now().Add(-10*time.Minute))
	require.NoError(t, err)

	assert.False(t, ValidateCode(testSecret, code))
}

func TestBuildEnrollment(t *testing.T) {
	enrollment, err := BuildEnrollment("LC-AutoEl Teknik", "Booking Admin", testSecret, 256)
	require.NoError(t, err)

	assert.Contains(t, enrollment.URI, "otpauth://totp/")
	assert.Contains(t, enrollment.URI, "secret="+testSecret)
	assert.Equal(t, testSecret, enrollment.Secret)
	assert.NotEmpty(t, enrollment.QRBase64)
}
