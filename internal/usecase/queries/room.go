package queries

import (
	"context"
	"log/slog"
	"time"

	"resort-booking/internal/domain/availability"
	"resort-booking/internal/domain/reservation"
	"resort-booking/internal/domain/room"
	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errs.New("room not found")

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
}

type DateDocumentReadStore interface {
	ListAll(ctx context.Context) ([]availability.DateDocument, error)
}

type QuoteParams struct {
	Date      *time.Time
	Duration  string
	Guests    int
	Amenities []string
}

type RoomQueries interface {
	List(ctx context.Context) ([]*RoomView, error)
	Get(ctx context.Context, id uuid.UUID) (*RoomView, error)
	Calendar(ctx context.Context, id uuid.UUID, year int, month time.Month, selected *time.Time) (*CalendarView, error)
	Quote(ctx context.Context, id uuid.UUID, params QuoteParams) (*QuoteView, error)
}

type roomQueriesImpl struct {
	rooms RoomReadStore
	dates DateDocumentReadStore
	clock clock.Clock
}

func NewRoomQueries(rooms RoomReadStore, dates DateDocumentReadStore, clock clock.Clock) RoomQueries {
	return &roomQueriesImpl{
		rooms: rooms,
		dates: dates,
		clock: clock,
	}
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.rooms.List(ctx)
}

func (q *roomQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.rooms.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Wrap(err, "failed to find room")
	}
	return view, nil
}

// Calendar builds the availability grid for one month. A failed date scan
// degrades to an empty index: every date renders available rather than the
// whole calendar failing.
func (q *roomQueriesImpl) Calendar(ctx context.Context, id uuid.UUID, year int, month time.Month, selected *time.Time) (*CalendarView, error) {
	view, err := q.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	idx := q.buildIndex(ctx, view.Name)

	return &CalendarView{
		Year:         year,
		Month:        int(month),
		Cells:        availability.MonthGrid(year, month, q.clock.Now(), idx, selected),
		BlockedDates: idx.BlockedKeys(),
	}, nil
}

func (q *roomQueriesImpl) Quote(ctx context.Context, id uuid.UUID, params QuoteParams) (*QuoteView, error) {
	view, err := q.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	domainRoom, err := ToDomainRoom(view)
	if err != nil {
		return nil, errs.Wrap(err, "stored room failed domain validation")
	}

	sel := BuildSelection(domainRoom, params.Date, params.Duration, params.Guests, params.Amenities)
	breakdown := reservation.ComputeTotal(domainRoom, sel)
	reservable, missing := sel.IsReservable(domainRoom)

	quote := &QuoteView{
		BaseAmount: breakdown.Base.Amount(),
		Total:      breakdown.Total.Amount(),
		Reservable: reservable,
		Missing:    missing,
	}
	for _, line := range breakdown.Lines {
		quote.Lines = append(quote.Lines, QuoteLine{Label: line.Label, Amount: line.Amount.Amount()})
	}

	return quote, nil
}

func (q *roomQueriesImpl) buildIndex(ctx context.Context, roomName string) availability.Index {
	docs, err := q.dates.ListAll(ctx)
	if err != nil {
		slog.Error("failed to load date documents, treating all dates as available", "error", err.Error())
		return availability.Index{}
	}
	return availability.BuildIndex(docs, roomName)
}

// ToDomainRoom rehydrates a room entity from its read model.
func ToDomainRoom(view *RoomView) (*room.Room, error) {
	amenities := make([]room.Amenity, 0, len(view.Amenities))
	for _, a := range view.Amenities {
		amenities = append(amenities, room.NewAmenity(a.Name, room.NewMoney(a.Surcharge)))
	}

	return room.NewRoom(
		view.ID,
		view.Name,
		room.Category(view.Category),
		room.NewMoney(view.DayRate),
		room.NewMoney(view.OvernightRate),
		room.NewMoney(view.WholeResortRate),
		view.Capacity,
		view.Description,
		view.ImageURL,
		amenities,
	)
}

// BuildSelection replays a client's choices through the selection state
// machine, so its invariants (duration exclusivity, guest clamping,
// included-amenity no-ops) hold regardless of what the request claimed.
func BuildSelection(r *room.Room, date *time.Time, duration string, guests int, amenityNames []string) *reservation.Selection {
	sel := reservation.NewSelection()
	if date != nil {
		sel.SelectDate(*date)
	}
	switch reservation.Duration(duration) {
	case reservation.DurationDay:
		sel.ChooseDay()
	case reservation.DurationOvernight:
		sel.ChooseOvernight()
	}
	if r.IsWholeResort() {
		sel.ChooseWholeResort()
	}
	sel.SetGuests(guests, r.Capacity())
	for _, name := range amenityNames {
		if amenity, ok := r.FindAmenity(name); ok {
			sel.ToggleAmenity(amenity)
		}
	}
	return sel
}
