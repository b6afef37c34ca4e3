package notification

import (
	"context"
	"fmt"
	"io"

	"roombook/internal/domain"
)

// Sender delivers a booking confirmation to the user.
type Sender interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, b *domain.Booking) error
}

// ConsoleSender writes the notification to the terminal instead of
// dispatching it anywhere. Real delivery channels are out of scope.
type ConsoleSender struct {
	out io.Writer
}

func NewConsoleSender(out io.Writer) *ConsoleSender {
	return &ConsoleSender{out: out}
}

func (s *ConsoleSender) NotifyBookingCreated(_ context.Context, user *domain.User, b *domain.Booking) error {
	fmt.Fprintf(s.out, "\nNotification sent to %s and %s\n", user.Email, user.Phone)
	fmt.Fprintf(s.out, "You booked Room #%d from %s to %s.\n\n", b.RoomNumber, b.StartTime, b.EndTime)
	return nil
}
