package queries

import (
	"context"

	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

// HistoryFilter buckets reservations the way the history screen does:
// upcoming holds what still blocks a date, past holds finished stays.
type HistoryFilter string

const (
	FilterAll       HistoryFilter = ""
	FilterUpcoming  HistoryFilter = "upcoming"
	FilterPast      HistoryFilter = "past"
	FilterCancelled HistoryFilter = "cancelled"
)

func (f HistoryFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterUpcoming, FilterPast, FilterCancelled:
		return true
	default:
		return false
	}
}

// Statuses included by each filter bucket.
func (f HistoryFilter) Statuses() []string {
	switch f {
	case FilterUpcoming:
		return []string{"pending", "confirmed"}
	case FilterPast:
		return []string{"completed", "checked-in"}
	case FilterCancelled:
		return []string{"cancelled"}
	default:
		return nil
	}
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUser(ctx context.Context, userID uuid.UUID, statuses []string) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter HistoryFilter) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}
	// Guests only ever see their own reservations.
	if view.UserID != userID {
		return nil, ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, filter HistoryFilter) ([]*ReservationListItem, error) {
	items, err := q.repo.FindByUser(ctx, userID, filter.Statuses())
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	return items, nil
}
