package booking

import (
	"context"
	"time"

	"roombook/internal/domain"
	"roombook/internal/repository"
)

// BookingRepository defines the storage operations the booking service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindConflict(ctx context.Context, room int, start, end time.Time) (*repository.Occupancy, error)
	FindOccupantAt(ctx context.Context, room int, at time.Time) (*repository.Occupancy, error)
}
