//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// default amenities stored the way production data looks: plain names for
// included amenities, objects with a surcharge for optional ones.
const defaultAmenitiesJSON = `["Free parking", {"name": "Videoke", "surcharge": 500}]`

func CreateTestRoom(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO rooms (id, name, category, day_rate, overnight_rate, whole_resort_rate, capacity, amenities)
		VALUES ($1, $2, 'cottage', 2500, 3500, 0, 8, $3)`,
		roomID, name, defaultAmenitiesJSON)
	require.NoError(t, err)

	return roomID
}

func CreateTestWholeResort(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO rooms (id, name, category, day_rate, overnight_rate, whole_resort_rate, capacity, amenities)
		VALUES ($1, 'Whole Resort', 'whole', 0, 0, 40000, 50, '[]')`,
		roomID)
	require.NoError(t, err)

	return roomID
}

func CreateTestReservation(t *testing.T, db DBLike, roomID, userID uuid.UUID, stayDate time.Time, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	now := time.Now()
	ctx := context.Background()

	var roomName, roomCategory string
	err := db.QueryRow(ctx, "SELECT name, category FROM rooms WHERE id = $1", roomID).Scan(&roomName, &roomCategory)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO reservations (
			id, reference, user_id, user_full_name, user_email,
			room_id, room_name, room_category, stay_date, duration,
			guests, total_amount, payment_method, status, verification_code,
			created_at, updated_at
		) VALUES ($1, $2, $3, 'Test Guest', 'guest@example.com',
			$4, $5, $6, $7, 'day',
			2, 2500, 'on_arrival', $8, 'TESTCODE',
			$9, $9)`,
		reservationID, "RES-"+strings.ToUpper(uuid.New().String()[:8]), userID,
		roomID, roomName, roomCategory, stayDate, status, now)
	require.NoError(t, err)

	return reservationID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
