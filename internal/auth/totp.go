package auth

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"net/url"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// ValidateCode validates a one-time code against the pre-shared base32
// secret using the standard 30-second TOTP step.
func ValidateCode(secret, code string) bool {
	return totp.Validate(code, secret)
}

// ProvisioningURI builds the otpauth:// URI an authenticator app
// consumes during enrollment.
func ProvisioningURI(issuer, accountName, secret string) string {
	v := url.Values{}
	v.Set("secret", secret)
	v.Set("issuer", issuer)

	u := url.URL{
		Scheme:   "otpauth",
		Host:     "totp",
		Path:     "/" + issuer + ":" + accountName,
		RawQuery: v.Encode(),
	}

	return u.String()
}

// Enrollment carries everything the setup page renders: the
// provisioning URI, the raw shared secret and an inline PNG QR image.
type Enrollment struct {
	URI      string
	Secret   string
	QRBase64 string // base64-encoded PNG of the provisioning URI
}

// BuildEnrollment renders the provisioning URI of the shared secret as
// a base64-embedded PNG QR code of the given pixel size.
func BuildEnrollment(issuer, accountName, secret string, size int) (*Enrollment, error) {
	uri := ProvisioningURI(issuer, accountName, secret)

	key, err := otp.NewKeyFromURL(uri)
	if err != nil {
		return nil, fmt.Errorf("auth: parse provisioning uri: %w", err)
	}

	img, err := key.Image(size, size)
	if err != nil {
		return nil, fmt.Errorf("auth: render qr image: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("auth: encode qr png: %w", err)
	}

	return &Enrollment{
		URI:      uri,
		Secret:   secret,
		QRBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}
