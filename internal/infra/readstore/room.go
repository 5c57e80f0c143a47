package readstore

import (
	"context"
	"encoding/json"

	"resort-booking/internal/domain/room"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/pkg/pgconv"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const roomColumns = `id, name, category, day_rate, overnight_rate, whole_resort_rate, capacity, description, image_url, amenities`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(db db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: db}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)

	view, err := scanRoomView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return view, nil
}

func (r *RoomReadStore) List(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY category, name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		view, scanErr := scanRoomView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}

// RoomSnapshotReads adapts the read store for the write side, which prices
// against the room's stored rates.
type RoomSnapshotReads struct {
	store queries.RoomReadStore
}

func NewRoomSnapshotReads(store queries.RoomReadStore) *RoomSnapshotReads {
	return &RoomSnapshotReads{store: store}
}

func (r *RoomSnapshotReads) FindByID(ctx context.Context, id uuid.UUID) (*commands.RoomSnapshot, error) {
	view, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	amenities := make([]commands.AmenitySnapshot, 0, len(view.Amenities))
	for _, a := range view.Amenities {
		amenities = append(amenities, commands.AmenitySnapshot{Name: a.Name, Surcharge: a.Surcharge})
	}

	return &commands.RoomSnapshot{
		ID:              view.ID,
		Name:            view.Name,
		Category:        view.Category,
		DayRate:         view.DayRate,
		OvernightRate:   view.OvernightRate,
		WholeResortRate: view.WholeResortRate,
		Capacity:        view.Capacity,
		Amenities:       amenities,
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomView(row rowScanner) (*queries.RoomView, error) {
	var (
		view         queries.RoomView
		amenitiesRaw []byte
	)
	if err := row.Scan(
		&view.ID,
		&view.Name,
		&view.Category,
		&view.DayRate,
		&view.OvernightRate,
		&view.WholeResortRate,
		&view.Capacity,
		&view.Description,
		&view.ImageURL,
		&amenitiesRaw,
	); err != nil {
		return nil, err
	}
	view.Amenities = parseAmenities(amenitiesRaw)
	return &view, nil
}

// parseAmenities tolerates both shapes the source data uses: a plain name
// array (included amenities) and an object array whose surcharge may be a
// number or a formatted string like "₱500".
func parseAmenities(raw []byte) []queries.AmenityView {
	if len(raw) == 0 {
		return nil
	}

	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	var result []queries.AmenityView
	for _, item := range items {
		switch v := item.(type) {
		case string:
			if v == "" {
				continue
			}
			result = append(result, queries.AmenityView{Name: v})
		case map[string]any:
			name, _ := v["name"].(string)
			if name == "" {
				continue
			}
			result = append(result, queries.AmenityView{
				Name:      name,
				Surcharge: room.CoerceAmount(v["surcharge"]).Amount(),
			})
		}
	}
	return result
}
