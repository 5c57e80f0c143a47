package repository

import (
	"context"
	"encoding/json"

	"resort-booking/internal/domain/reservation"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/usecase/shared"
)

// DateDocumentRepository maintains the date-indexed reservation documents
// the availability index is built from. One row per room-and-day, with the
// reservations held against it as a jsonb array.
type DateDocumentRepository struct{}

func NewDateDocumentRepository() *DateDocumentRepository {
	return &DateDocumentRepository{}
}

func (r *DateDocumentRepository) AppendEntry(ctx context.Context, dbtx db.DBTX, docID, dateKey, roomType string, entry shared.DateEntryRecord) error {
	payload, err := json.Marshal([]shared.DateEntryRecord{entry})
	if err != nil {
		return infra.WrapRepoErr("failed to encode date entry", err)
	}

	_, err = dbtx.Exec(ctx, `
		INSERT INTO date_documents (id, date_key, room_type, reservations, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE
		SET reservations = date_documents.reservations || EXCLUDED.reservations,
		    updated_at   = now()`,
		docID, dateKey, roomType, payload,
	)
	if err != nil {
		return wrapPgErr("failed to append date entry", err)
	}
	return nil
}

// UpdateEntryStatus rewrites the status of the matching entry in place,
// matched by the reservation reference stored in the document.
func (r *DateDocumentRepository) UpdateEntryStatus(ctx context.Context, dbtx db.DBTX, docID, reference string, status reservation.Status) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE date_documents
		SET reservations = (
			SELECT COALESCE(jsonb_agg(
				CASE WHEN elem->>'reservationId' = $2
					THEN jsonb_set(elem, '{status}', to_jsonb($3::text))
					ELSE elem
				END
			), '[]'::jsonb)
			FROM jsonb_array_elements(reservations) AS elem
		),
		updated_at = now()
		WHERE id = $1`,
		docID, reference, status.String(),
	)
	if err != nil {
		return wrapPgErr("failed to update date entry status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("date document not found", nil, infra.KindNotFound)
	}
	return nil
}
