package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"roombook/internal/database"
	"roombook/internal/modules/booking"
	"roombook/internal/modules/directory"
	"roombook/internal/notification"
	"roombook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestLoop(t *testing.T, input string) (*Loop, *bytes.Buffer, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db))

	users := directory.NewService(repository.NewUserRepository(db))
	bookings := booking.NewService(repository.NewBookingRepository(db))

	out := &bytes.Buffer{}
	loop := New(bookings, users, notification.NewConsoleSender(out), strings.NewReader(input), out)
	return loop, out, db
}

// assertInOrder checks that every needle occurs and that they appear in the
// given order.
func assertInOrder(t *testing.T, haystack string, needles ...string) {
	t.Helper()
	pos := 0
	for _, n := range needles {
		i := strings.Index(haystack[pos:], n)
		require.GreaterOrEqual(t, i, 0, "expected %q after position %d in output:\n%s", n, pos, haystack)
		pos += i + len(n)
	}
}

func TestRunFullSession(t *testing.T) {
	input := strings.Join([]string{
		// book room 3 as a new user
		"2",
		"3",
		"2024-01-01 10:00",
		"2024-01-01 11:00",
		"a@x.com",
		"Alice",
		"555-1",
		// same room and slot again: rejected before any email prompt
		"2",
		"3",
		"2024-01-01 10:00",
		"2024-01-01 11:00",
		// point check inside the interval
		"1",
		"3",
		"2024-01-01 10:30",
		// point check exactly at the end instant
		"1",
		"3",
		"2024-01-01 11:00",
		// room outside the fixed set
		"1",
		"9",
		// unknown menu choice
		"7",
		"0",
	}, "\n") + "\n"

	loop, out, db := newTestLoop(t, input)
	require.NoError(t, loop.Run(context.Background()))

	got := out.String()
	assertInOrder(t, got,
		"Booking successful!",
		"Notification sent to a@x.com and 555-1",
		"You booked Room #3 from 2024-01-01 10:00 to 2024-01-01 11:00.",
		"Room is occupied by Alice until 2024-01-01 11:00",
		"Room is occupied by Alice until 2024-01-01 11:00",
		"Room is free at that time.",
		"Invalid room number.",
		"Invalid choice.",
		"Goodbye.",
	)
	assert.Equal(t, 2, strings.Count(got, "Room is occupied by Alice until 2024-01-01 11:00"))

	// the rejected attempt never asked for an email
	assert.Equal(t, 1, strings.Count(got, "Enter your email:"))

	var cnt int64
	require.NoError(t, db.Raw(
		"SELECT COUNT(1) FROM booking WHERE room_number = ? AND start_time = ? AND end_time = ?",
		3, "2024-01-01 10:00", "2024-01-01 11:00",
	).Scan(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}

func TestBookWithExistingUser(t *testing.T) {
	input := strings.Join([]string{
		"2",
		"2",
		"2024-03-05 14:00",
		"2024-03-05 15:00",
		"a@x.com",
		"0",
	}, "\n") + "\n"

	loop, out, db := newTestLoop(t, input)

	_, err := directory.NewService(repository.NewUserRepository(db)).
		Create(context.Background(), "Alice", "a@x.com", "555-1")
	require.NoError(t, err)

	require.NoError(t, loop.Run(context.Background()))

	got := out.String()
	assertInOrder(t, got,
		"User found: Alice, Email: a@x.com, Phone: 555-1",
		"Booking successful!",
		"You booked Room #2 from 2024-03-05 14:00 to 2024-03-05 15:00.",
	)
	assert.NotContains(t, got, "Creating new user")
}

func TestBookDuplicatePhone(t *testing.T) {
	input := strings.Join([]string{
		"2",
		"1",
		"2024-03-05 14:00",
		"2024-03-05 15:00",
		"b@x.com",
		"Bob",
		"555-1", // phone already taken by Alice
		"0",
	}, "\n") + "\n"

	loop, out, db := newTestLoop(t, input)

	_, err := directory.NewService(repository.NewUserRepository(db)).
		Create(context.Background(), "Alice", "a@x.com", "555-1")
	require.NoError(t, err)

	require.NoError(t, loop.Run(context.Background()))

	got := out.String()
	assertInOrder(t, got,
		"User not found. Creating new user.",
		"A user with this email or phone already exists.",
		"Goodbye.",
	)
	assert.NotContains(t, got, "Booking successful!")
}

func TestInvalidInputsReturnToMenu(t *testing.T) {
	input := strings.Join([]string{
		"1",
		"abc", // non-numeric room
		"1",
		"3",
		"yesterday", // unparseable instant
		"2",
		"3",
		"2024-01-01 11:00", // end before start
		"2024-01-01 10:00",
		"0",
	}, "\n") + "\n"

	loop, out, _ := newTestLoop(t, input)
	require.NoError(t, loop.Run(context.Background()))

	assertInOrder(t, out.String(),
		"Invalid input.",
		"Invalid date format.",
		"Invalid date format or end time is before start time.",
		"Goodbye.",
	)
}

func TestRunStopsOnEOF(t *testing.T) {
	loop, _, _ := newTestLoop(t, "")
	err := loop.Run(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}
