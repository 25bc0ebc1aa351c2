package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени HH:MM (24-часовой)
const timeLayout = "15:04"

var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// TimeString время суток в виде строки "HH:MM".
// Хранится в БД как текст, сравнивается лексикографически.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат значения
func (t TimeString) Validate() error {
	_, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsBefore проверяет, что t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter проверяет, что t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает новый TimeString, сдвинутый на minutes вперед.
// Результат остается в пределах суток (без переноса даты).
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
	return nil
}
