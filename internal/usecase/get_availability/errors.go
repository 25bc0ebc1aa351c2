package get_availability

import "errors"

var (
	// ErrInvalidSchedule возвращается при некорректной конфигурации расписания слотов
	ErrInvalidSchedule = errors.New("get_availability: invalid slot schedule")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
