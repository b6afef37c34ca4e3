package repository

import (
	"context"
	"time"

	"roombook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	RoomNumber int    `gorm:"column:room_number;not null"`
	StartTime  string `gorm:"column:start_time;not null"`
	EndTime    string `gorm:"column:end_time;not null"`
	UserID     int64  `gorm:"column:user_id;not null"`
}

func (bookingModel) TableName() string { return "booking" }

// Occupancy names who holds a conflicting booking and when it ends.
type Occupancy struct {
	Name  string `gorm:"column:name"`
	Until string `gorm:"column:end_time"`
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:         m.ID,
		RoomNumber: m.RoomNumber,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		UserID:     m.UserID,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:         b.ID,
		RoomNumber: b.RoomNumber,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		UserID:     b.UserID,
	}
}

// Create inserts the booking as-is. Availability is not re-checked here;
// callers run FindConflict first.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// FindConflict returns the first booking on room whose half-open interval
// intersects [start, end), or nil when the room is free for the whole range.
// Timestamps are compared as text; both sides are formatted with
// domain.TimeLayout so lexicographic order is chronological. With several
// overlapping rows, natural row order decides which one comes back.
func (r *BookingRepository) FindConflict(ctx context.Context, room int, start, end time.Time) (*Occupancy, error) {
	q := `
SELECT users.name, booking.end_time
FROM booking
JOIN users ON users.id = booking.user_id
WHERE booking.room_number = ?
  AND booking.start_time < ?
  AND booking.end_time > ?
LIMIT 1
`
	var occ Occupancy
	tx := r.db.WithContext(ctx).
		Raw(q, room, end.Format(domain.TimeLayout), start.Format(domain.TimeLayout)).
		Scan(&occ)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return &occ, nil
}

// FindOccupantAt returns the booking containing the instant
// (start inclusive, end exclusive), or nil when the room is free.
func (r *BookingRepository) FindOccupantAt(ctx context.Context, room int, at time.Time) (*Occupancy, error) {
	q := `
SELECT users.name, booking.end_time
FROM booking
JOIN users ON users.id = booking.user_id
WHERE booking.room_number = ?
  AND booking.start_time <= ?
  AND booking.end_time > ?
LIMIT 1
`
	ts := at.Format(domain.TimeLayout)
	var occ Occupancy
	tx := r.db.WithContext(ctx).Raw(q, room, ts, ts).Scan(&occ)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return &occ, nil
}
