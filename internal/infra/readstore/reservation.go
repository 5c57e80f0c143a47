package readstore

import (
	"context"
	"time"

	"resort-booking/internal/domain/availability"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/pkg/pgconv"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const reservationColumns = `id, reference, user_id, user_full_name, user_email, room_id, room_name, room_category,
	stay_date, duration, guests, total_amount, payment_method, status, verification_code, created_at, updated_at`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)

	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (r *ReservationReadStore) FindByUser(ctx context.Context, userID uuid.UUID, statuses []string) ([]*queries.ReservationListItem, error) {
	query := `SELECT id, reference, room_name, stay_date, duration, guests, total_amount, status, created_at
		FROM reservations WHERE user_id = $1`
	args := []any{userID}
	if len(statuses) > 0 {
		query += ` AND status = ANY($2)`
		args = append(args, statuses)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var (
			item     queries.ReservationListItem
			stayDate time.Time
		)
		if scanErr := rows.Scan(
			&item.ID,
			&item.Reference,
			&item.RoomName,
			&stayDate,
			&item.Duration,
			&item.Guests,
			&item.TotalAmount,
			&item.Status,
			&item.CreatedAt,
		); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", scanErr)
		}
		item.Date = availability.DisplayKey(stayDate)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}

// ReservationSnapshotReads serves the write side, which rehydrates the
// domain entity instead of rendering a view.
type ReservationSnapshotReads struct {
	store queries.ReservationReadStore
}

func NewReservationSnapshotReads(store queries.ReservationReadStore) *ReservationSnapshotReads {
	return &ReservationSnapshotReads{store: store}
}

func (r *ReservationSnapshotReads) FindByID(ctx context.Context, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	view, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &commands.ReservationSnapshot{
		ID:               view.ID,
		Reference:        view.Reference,
		UserID:           view.UserID,
		UserFullName:     view.UserFullName,
		UserEmail:        view.UserEmail,
		RoomID:           view.RoomID,
		RoomName:         view.RoomName,
		RoomCategory:     view.RoomCategory,
		Date:             view.Date,
		Duration:         view.Duration,
		Guests:           view.Guests,
		TotalAmount:      view.TotalAmount,
		PaymentMethod:    view.PaymentMethod,
		Status:           view.Status,
		VerificationCode: view.VerificationCode,
		CreatedAt:        view.CreatedAt,
		UpdatedAt:        view.UpdatedAt,
	}, nil
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		view     queries.ReservationView
		stayDate time.Time
	)
	if err := row.Scan(
		&view.ID,
		&view.Reference,
		&view.UserID,
		&view.UserFullName,
		&view.UserEmail,
		&view.RoomID,
		&view.RoomName,
		&view.RoomCategory,
		&stayDate,
		&view.Duration,
		&view.Guests,
		&view.TotalAmount,
		&view.PaymentMethod,
		&view.Status,
		&view.VerificationCode,
		&view.CreatedAt,
		&view.UpdatedAt,
	); err != nil {
		return nil, err
	}
	view.Date = availability.DisplayKey(stayDate)
	return &view, nil
}
