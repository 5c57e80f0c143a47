package shared

import (
	"context"
	"time"

	"resort-booking/internal/domain/reservation"
	"resort-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	DateDocuments() DateDocumentRepository
	DB() db.DBTX
}

type ReservationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status reservation.Status, updatedAt time.Time) error
}

type DateDocumentRepository interface {
	AppendEntry(ctx context.Context, dbtx db.DBTX, docID, dateKey, roomType string, entry DateEntryRecord) error
	UpdateEntryStatus(ctx context.Context, dbtx db.DBTX, docID, reference string, status reservation.Status) error
}
