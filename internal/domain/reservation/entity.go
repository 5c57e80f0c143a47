package reservation

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"resort-booking/internal/domain/room"

	"github.com/google/uuid"
)

var (
	ErrSelectionIncomplete = errors.New("selection is incomplete")
	ErrNotCancellable      = errors.New("only pending reservations can be cancelled")
	ErrInvalidStatus       = errors.New("invalid reservation status")
)

const (
	PaymentOnArrival = "on_arrival"

	verificationCodeLength = 8
	verificationCharset    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

type Reservation struct {
	id               uuid.UUID
	reference        string
	userID           uuid.UUID
	userFullName     string
	userEmail        string
	roomID           uuid.UUID
	roomName         string
	roomCategory     room.Category
	date             time.Time
	duration         Duration
	guests           int
	total            room.Money
	paymentMethod    string
	status           Status
	verificationCode string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewReservation builds a pending reservation from a completed selection.
// The total is computed here from the room snapshot, never taken from the
// caller: the backend record is the pricing source of truth.
func NewReservation(
	r *room.Room,
	sel *Selection,
	userID uuid.UUID,
	userFullName, userEmail string,
	now time.Time,
) (*Reservation, error) {
	if ok, _ := sel.IsReservable(r); !ok {
		return nil, ErrSelectionIncomplete
	}

	duration := sel.Duration()
	if r.IsWholeResort() {
		duration = DurationWhole
	}

	breakdown := ComputeTotal(r, sel)

	return &Reservation{
		id:               uuid.New(),
		reference:        newReference(now),
		userID:           userID,
		userFullName:     strings.TrimSpace(userFullName),
		userEmail:        strings.TrimSpace(userEmail),
		roomID:           r.ID(),
		roomName:         r.Name(),
		roomCategory:     r.Category(),
		date:             *sel.Date(),
		duration:         duration,
		guests:           sel.Guests(),
		total:            breakdown.Total,
		paymentMethod:    PaymentOnArrival,
		status:           StatusPending,
		verificationCode: newVerificationCode(),
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	reference string,
	userID uuid.UUID,
	userFullName, userEmail string,
	roomID uuid.UUID,
	roomName string,
	roomCategory room.Category,
	date time.Time,
	duration Duration,
	guests int,
	total room.Money,
	paymentMethod string,
	status Status,
	verificationCode string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:               id,
		reference:        reference,
		userID:           userID,
		userFullName:     userFullName,
		userEmail:        userEmail,
		roomID:           roomID,
		roomName:         roomName,
		roomCategory:     roomCategory,
		date:             date,
		duration:         duration,
		guests:           guests,
		total:            total,
		paymentMethod:    paymentMethod,
		status:           status,
		verificationCode: verificationCode,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Cancel releases the reservation. Guests may only cancel while the front
// desk has not confirmed it yet.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status != StatusPending {
		return ErrNotCancellable
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status.Blocking()
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) Reference() string          { return r.reference }
func (r *Reservation) UserID() uuid.UUID          { return r.userID }
func (r *Reservation) UserFullName() string       { return r.userFullName }
func (r *Reservation) UserEmail() string          { return r.userEmail }
func (r *Reservation) RoomID() uuid.UUID          { return r.roomID }
func (r *Reservation) RoomName() string           { return r.roomName }
func (r *Reservation) RoomCategory() room.Category { return r.roomCategory }
func (r *Reservation) Date() time.Time            { return r.date }
func (r *Reservation) Duration() Duration         { return r.duration }
func (r *Reservation) Guests() int                { return r.guests }
func (r *Reservation) Total() room.Money          { return r.total }
func (r *Reservation) PaymentMethod() string      { return r.paymentMethod }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) VerificationCode() string   { return r.verificationCode }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time       { return r.updatedAt }

// RES-<base36 timestamp>-<random>, the reference format guests quote at the
// front desk.
func newReference(now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	return strings.ToUpper(fmt.Sprintf("RES-%s-%s", ts, randomString(6)))
}

// Printed on the QR pass and checked at arrival.
func newVerificationCode() string {
	return randomString(verificationCodeLength)
}

func randomString(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to a
		// timestamp-derived suffix rather than erroring the booking.
		ts := strconv.FormatInt(time.Now().UnixNano(), 36)
		return strings.ToUpper(ts[len(ts)-n:])
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = verificationCharset[int(b)%len(verificationCharset)]
	}
	return string(out)
}
