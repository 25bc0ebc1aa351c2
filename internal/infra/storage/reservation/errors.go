package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда запись не найдена
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotTaken возвращается при нарушении уникальности (date, timeslot).
	// Уникальный индекс делает вставку атомарной проверкой доступности слота.
	ErrSlotTaken = errors.New("reservation.repository: slot already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
