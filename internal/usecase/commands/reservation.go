package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resort-booking/internal/domain/availability"
	"resort-booking/internal/domain/reservation"
	"resort-booking/internal/domain/room"
	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/queries"
	"resort-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrNotCancellable          = errs.New("reservation cannot be cancelled")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// SelectionIncompleteError names the fields a reservation attempt is
// missing, so the handler can tell the guest instead of failing silently.
type SelectionIncompleteError struct {
	Missing []string
}

func (e *SelectionIncompleteError) Error() string {
	return fmt.Sprintf("selection incomplete: missing %s", strings.Join(e.Missing, ", "))
}

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
}

type ReservationReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
}

type CreateReservationParams struct {
	UserID       uuid.UUID
	UserFullName string
	UserEmail    string
	RoomID       uuid.UUID
	Date         time.Time
	Duration     string
	Guests       int
	Amenities    []string
}

type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error)
	Cancel(ctx context.Context, userID, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	roomRepo         RoomRepository
	reservationReads ReservationReads
	uow              shared.UnitOfWork
	clock            clock.Clock
}

func NewReservationCommands(
	roomRepo RoomRepository,
	reservationReads ReservationReads,
	uow shared.UnitOfWork,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		roomRepo:         roomRepo,
		reservationReads: reservationReads,
		uow:              uow,
		clock:            clock,
	}
}

// Create submits a pay-on-arrival reservation. The room's stored rates are
// re-read and the total recomputed server-side; client-supplied totals are
// never trusted. The reservation row and the date-document entry are written
// in one transaction, so a failure in either leaves no half-booked date
// behind.
func (c *reservationCommandsImpl) Create(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error) {
	snap, err := c.roomRepo.FindByID(ctx, params.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}

	domainRoom, err := snapshotToRoom(snap)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	sel := buildSelection(domainRoom, params)
	if ok, missing := sel.IsReservable(domainRoom); !ok {
		return nil, &SelectionIncompleteError{Missing: missing}
	}

	now := c.clock.Now()
	entity, err := reservation.NewReservation(domainRoom, sel, params.UserID, params.UserFullName, params.UserEmail, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	docID := availability.DocumentID(roomTypeOf(domainRoom), entity.Date())
	entry := shared.DateEntryRecord{
		ReservationID: entity.Reference(),
		RoomType:      roomTypeOf(domainRoom),
		Date:          availability.DisplayKey(entity.Date()),
		RoomName:      entity.RoomName(),
		Guests:        entity.Guests(),
		BookedAt:      now.Format(time.RFC3339),
		UserID:        entity.UserID().String(),
		UserFullName:  entity.UserFullName(),
		Status:        entity.Status().String(),
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, createErr := tx.Reservations().Create(ctx, tx.DB(), entity); createErr != nil {
			return createErr
		}
		return tx.DateDocuments().AppendEntry(ctx, tx.DB(), docID, availability.DisplayKey(entity.Date()), entry.RoomType, entry)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return entityToView(entity), nil
}

// Cancel releases a pending reservation and its date-document hold together.
func (c *reservationCommandsImpl) Cancel(ctx context.Context, userID, id uuid.UUID) error {
	snap, err := c.reservationReads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Wrap(err, "failed to find reservation")
	}
	if snap.UserID != userID {
		return ErrReservationNotFound
	}

	entity, err := snapshotToReservation(snap)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if cancelErr := entity.Cancel(c.clock.Now()); cancelErr != nil {
		return errs.Mark(cancelErr, ErrNotCancellable)
	}

	roomType := snap.RoomID.String()
	if room.Category(snap.RoomCategory) == room.CategoryWhole {
		roomType = wholeResortType
	}
	docID := availability.DocumentID(roomType, entity.Date())

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Reservations().UpdateStatus(ctx, tx.DB(), entity.ID(), entity.Status(), entity.UpdatedAt()); updateErr != nil {
			return updateErr
		}
		return tx.DateDocuments().UpdateEntryStatus(ctx, tx.DB(), docID, entity.Reference(), entity.Status())
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

const wholeResortType = "whole_resort"

func roomTypeOf(r *room.Room) string {
	if r.IsWholeResort() {
		return wholeResortType
	}
	return r.ID().String()
}

func snapshotToRoom(snap *RoomSnapshot) (*room.Room, error) {
	amenities := make([]room.Amenity, 0, len(snap.Amenities))
	for _, a := range snap.Amenities {
		amenities = append(amenities, room.NewAmenity(a.Name, room.NewMoney(a.Surcharge)))
	}
	return room.NewRoom(
		snap.ID,
		snap.Name,
		room.Category(snap.Category),
		room.NewMoney(snap.DayRate),
		room.NewMoney(snap.OvernightRate),
		room.NewMoney(snap.WholeResortRate),
		snap.Capacity,
		"", "",
		amenities,
	)
}

func buildSelection(r *room.Room, params CreateReservationParams) *reservation.Selection {
	sel := reservation.NewSelection()
	sel.SelectDate(params.Date)
	switch reservation.Duration(params.Duration) {
	case reservation.DurationDay:
		sel.ChooseDay()
	case reservation.DurationOvernight:
		sel.ChooseOvernight()
	}
	if r.IsWholeResort() {
		sel.ChooseWholeResort()
	}
	sel.SetGuests(params.Guests, r.Capacity())
	for _, name := range params.Amenities {
		if amenity, ok := r.FindAmenity(name); ok {
			sel.ToggleAmenity(amenity)
		}
	}
	return sel
}

func snapshotToReservation(snap *ReservationSnapshot) (*reservation.Reservation, error) {
	date, err := availability.ParseDisplayKey(snap.Date)
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation has malformed date key")
	}
	return reservation.ReconstructReservation(
		snap.ID,
		snap.Reference,
		snap.UserID,
		snap.UserFullName,
		snap.UserEmail,
		snap.RoomID,
		snap.RoomName,
		room.Category(snap.RoomCategory),
		date,
		reservation.Duration(snap.Duration),
		snap.Guests,
		room.NewMoney(snap.TotalAmount),
		snap.PaymentMethod,
		reservation.Status(snap.Status),
		snap.VerificationCode,
		snap.CreatedAt,
		snap.UpdatedAt,
	), nil
}

func entityToView(entity *reservation.Reservation) *queries.ReservationView {
	return &queries.ReservationView{
		ID:               entity.ID(),
		Reference:        entity.Reference(),
		UserID:           entity.UserID(),
		UserFullName:     entity.UserFullName(),
		UserEmail:        entity.UserEmail(),
		RoomID:           entity.RoomID(),
		RoomName:         entity.RoomName(),
		RoomCategory:     entity.RoomCategory().String(),
		Date:             availability.DisplayKey(entity.Date()),
		Duration:         entity.Duration().String(),
		Guests:           entity.Guests(),
		TotalAmount:      entity.Total().Amount(),
		PaymentMethod:    entity.PaymentMethod(),
		Status:           entity.Status().String(),
		VerificationCode: entity.VerificationCode(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}
