package create_reservation

import "errors"

// Все ошибки intake схлопываются для пользователя в одно общее сообщение,
// но внутри классифицируются (валидация / хранилище) для логирования.
var (
	// ErrInvalidSelection возвращается при некорректной строке выбора слота
	// (ожидается "<ISO date>|<HH:MM>")
	ErrInvalidSelection = errors.New("create_reservation: invalid slot selection")

	// ErrInvalidDate возвращается, когда дата в строке выбора не парсится как ISO дата
	ErrInvalidDate = errors.New("create_reservation: invalid date in selection")

	// ErrInvalidInput возвращается при некорректных полях формы
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrSlotTaken возвращается, когда слот уже занят другим бронированием
	ErrSlotTaken = errors.New("create_reservation: slot already taken")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("create_reservation: internal error")
)
