package readstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"resort-booking/internal/domain/availability"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
)

type DateDocumentReadStore struct {
	db db.DBTX
}

func NewDateDocumentReadStore(db db.DBTX) *DateDocumentReadStore {
	return &DateDocumentReadStore{db: db}
}

// ListAll loads every date document for index building. A single corrupt
// reservations payload is skipped with a log line rather than failing the
// scan: one bad row must not block the whole calendar.
func (r *DateDocumentReadStore) ListAll(ctx context.Context) ([]availability.DateDocument, error) {
	rows, err := r.db.Query(ctx, `SELECT id, date_key, reservations FROM date_documents`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list date documents", err)
	}
	defer rows.Close()

	var docs []availability.DateDocument
	for rows.Next() {
		var (
			id      string
			dateKey string
			raw     []byte
		)
		if scanErr := rows.Scan(&id, &dateKey, &raw); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan date document row", scanErr)
		}

		var entries []availability.ReservationSummary
		if len(raw) > 0 {
			if jsonErr := json.Unmarshal(raw, &entries); jsonErr != nil {
				slog.Warn("skipping date document with malformed reservations",
					"document_id", id, "error", jsonErr.Error())
				continue
			}
		}

		docs = append(docs, availability.DateDocument{
			Date:         dateKey,
			Reservations: entries,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate date document rows", err)
	}
	return docs, nil
}
