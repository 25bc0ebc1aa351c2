package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/lc-autoel/LCA-BookingSite/internal/domain"
	"github.com/lc-autoel/LCA-BookingSite/pkg/types"
)

// validateRequest валидирует поля формы
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email exceeds %d characters", ErrInvalidInput, domain.MaxEmailLength)
	}

	if strings.TrimSpace(req.LicensePlate) == "" {
		return fmt.Errorf("%w: license plate is required", ErrInvalidInput)
	}
	if len(req.LicensePlate) > domain.MaxLicensePlateLength {
		return fmt.Errorf("%w: license plate exceeds %d characters", ErrInvalidInput, domain.MaxLicensePlateLength)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	return nil
}

// parseSelection разбирает строку выбора слота "<ISO date>|<HH:MM>".
// Разделитель ищется ровно один раз.
func parseSelection(selection string) (time.Time, types.TimeString, error) {
	datePart, slotPart, found := strings.Cut(selection, domain.SelectionSeparator)
	if !found {
		return time.Time{}, "", fmt.Errorf("%w: missing separator in %q", ErrInvalidSelection, selection)
	}

	date, err := time.Parse(domain.DateFormat, datePart)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %q", ErrInvalidDate, datePart)
	}

	slot, err := types.NewTimeStringFromString(slotPart)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: bad time label %q", ErrInvalidSelection, slotPart)
	}

	return date, slot, nil
}
