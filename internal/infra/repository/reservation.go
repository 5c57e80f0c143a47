package repository

import (
	"context"
	"errors"
	"time"

	"resort-booking/internal/domain/availability"
	"resort-booking/internal/domain/reservation"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx, `
		INSERT INTO reservations (
			id, reference, user_id, user_full_name, user_email,
			room_id, room_name, room_category, stay_date, duration,
			guests, total_amount, payment_method, status, verification_code,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		res.ID(),
		res.Reference(),
		res.UserID(),
		res.UserFullName(),
		res.UserEmail(),
		res.RoomID(),
		res.RoomName(),
		res.RoomCategory().String(),
		availability.TruncateToDay(res.Date()),
		res.Duration().String(),
		res.Guests(),
		res.Total().Amount(),
		res.PaymentMethod(),
		res.Status().String(),
		res.VerificationCode(),
		res.CreatedAt(),
		res.UpdatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create reservation", err)
	}
	return res.ID(), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status reservation.Status, updatedAt time.Time) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE reservations SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status.String(), updatedAt,
	)
	if err != nil {
		return wrapPgErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func wrapPgErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case "23503":
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
