package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/lc-autoel/LCA-BookingSite/internal/domain"
	"github.com/lc-autoel/LCA-BookingSite/pkg/psqlbuilder"
	"github.com/lc-autoel/LCA-BookingSite/pkg/types"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникальности
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Уникальный индекс (reservation_date, timeslot) превращает вставку в
// атомарную условную операцию: занятый слот возвращает ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"name",
			"email",
			"license_plate",
			"phone",
			"timeslot",
			"reservation_date",
		).
		Values(
			res.Name,
			res.Email,
			res.LicensePlate,
			res.Phone,
			res.TimeSlot,
			res.Date,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time

	return res, nil
}

// Exists проверяет, занят ли слот (date, timeslot).
// Одна индексированная проверка на пару, вызывается для каждой
// комбинации день x слот при расчете доступности.
func (r *Repository) Exists(ctx context.Context, date time.Time, slot types.TimeString) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("reservations").
		Where(squirrel.Eq{
			"reservation_date": domain.DateOnly(date),
			"timeslot":         slot,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan result: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns()...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.Name,
		&res.Email,
		&res.LicensePlate,
		&res.Phone,
		&res.TimeSlot,
		&res.Date,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time

	return &res, nil
}

// ListAll получает все бронирования, отсортированные по дате и времени.
// Используется админским списком.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns()...).
		From("reservations").
		OrderBy("reservation_date ASC", "timeslot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.Name,
			&res.Email,
			&res.LicensePlate,
			&res.Phone,
			&res.TimeSlot,
			&res.Date,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func reservationColumns() []string {
	return []string{
		"id",
		"name",
		"email",
		"license_plate",
		"phone",
		"timeslot",
		"reservation_date",
		"created_at",
	}
}
