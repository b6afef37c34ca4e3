package booking

import (
	"context"
	"time"

	"roombook/internal/domain"
	"roombook/internal/repository"
)

type Service struct {
	bookings BookingRepository
}

func NewService(bookings BookingRepository) *Service {
	return &Service{bookings: bookings}
}

// FindConflict reports the first booking on room overlapping [start, end).
// nil means the room is free for the whole range. A found conflict is a
// normal outcome, not an error.
func (s *Service) FindConflict(ctx context.Context, room int, start, end time.Time) (*repository.Occupancy, error) {
	if !domain.ValidRoom(room) {
		return nil, ErrInvalidRoom
	}
	if !end.After(start) {
		return nil, ErrValidation
	}
	return s.bookings.FindConflict(ctx, room, start, end)
}

// FindOccupantAt reports who holds room at the instant, start inclusive,
// end exclusive.
func (s *Service) FindOccupantAt(ctx context.Context, room int, at time.Time) (*repository.Occupancy, error) {
	if !domain.ValidRoom(room) {
		return nil, ErrInvalidRoom
	}
	return s.bookings.FindOccupantAt(ctx, room, at)
}

// Record inserts the booking without re-checking availability; callers run
// FindConflict first. Check and insert are two separate statements, so two
// concurrent writers could still double-book. The interaction loop is single
// threaded, which keeps this a known limitation rather than a practical bug.
func (s *Service) Record(ctx context.Context, req RecordRequest) (*domain.Booking, error) {
	if !domain.ValidRoom(req.RoomNumber) {
		return nil, ErrInvalidRoom
	}
	if !req.End.After(req.Start) {
		return nil, ErrValidation
	}
	if req.UserID == 0 {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		RoomNumber: req.RoomNumber,
		StartTime:  req.Start.Format(domain.TimeLayout),
		EndTime:    req.End.Format(domain.TimeLayout),
		UserID:     req.UserID,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
