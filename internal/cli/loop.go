package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"roombook/internal/domain"
	"roombook/internal/modules/booking"
	"roombook/internal/modules/directory"
	"roombook/internal/notification"
)

// Loop drives the interactive menu. One line of input per prompt; any
// validation failure prints a message and drops back to the menu, it never
// terminates the loop.
type Loop struct {
	bookings *booking.Service
	users    *directory.Service
	notifs   notification.Sender
	in       *bufio.Scanner
	out      io.Writer
}

func New(
	bookings *booking.Service,
	users *directory.Service,
	notifs notification.Sender,
	in io.Reader,
	out io.Writer,
) *Loop {
	return &Loop{
		bookings: bookings,
		users:    users,
		notifs:   notifs,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run shows the menu until the user exits or input runs out. Only storage
// failures come back as errors; io.EOF means the input stream ended.
func (l *Loop) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(l.out, "\nSelect action:")
		fmt.Fprintln(l.out, "1 - Check room")
		fmt.Fprintln(l.out, "2 - Book room")
		fmt.Fprintln(l.out, "0 - Exit")

		choice, err := l.prompt("Enter choice:")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := l.checkRoom(ctx); err != nil {
				return err
			}
		case "2":
			if err := l.bookRoom(ctx); err != nil {
				return err
			}
		case "0":
			fmt.Fprintln(l.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(l.out, "Invalid choice.")
		}
	}
}

func (l *Loop) prompt(p string) (string, error) {
	fmt.Fprint(l.out, p+" ")
	if !l.in.Scan() {
		if err := l.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(l.in.Text()), nil
}

// readRoom prompts for a room number and validates it against the fixed set.
// ok=false means a message was already printed and the flow should abort.
func (l *Loop) readRoom(verb string) (room int, ok bool, err error) {
	fmt.Fprintln(l.out, "Available rooms:", domain.Rooms())
	s, err := l.prompt("Enter room number to " + verb + ":")
	if err != nil {
		return 0, false, err
	}
	room, aerr := strconv.Atoi(s)
	if aerr != nil {
		fmt.Fprintln(l.out, "Invalid input.")
		return 0, false, nil
	}
	if !domain.ValidRoom(room) {
		fmt.Fprintln(l.out, "Invalid room number.")
		return 0, false, nil
	}
	return room, true, nil
}

func (l *Loop) checkRoom(ctx context.Context) error {
	room, ok, err := l.readRoom("check")
	if err != nil || !ok {
		return err
	}

	atStr, err := l.prompt("Enter time to check (YYYY-MM-DD HH:MM):")
	if err != nil {
		return err
	}
	at, perr := domain.ParseTime(atStr)
	if perr != nil {
		fmt.Fprintln(l.out, "Invalid date format.")
		return nil
	}

	occ, err := l.bookings.FindOccupantAt(ctx, room, at)
	if err != nil {
		return err
	}
	if occ != nil {
		fmt.Fprintf(l.out, "Room is occupied by %s until %s\n", occ.Name, occ.Until)
	} else {
		fmt.Fprintln(l.out, "Room is free at that time.")
	}
	return nil
}

func (l *Loop) bookRoom(ctx context.Context) error {
	room, ok, err := l.readRoom("book")
	if err != nil || !ok {
		return err
	}

	startStr, err := l.prompt("Enter start time (YYYY-MM-DD HH:MM):")
	if err != nil {
		return err
	}
	endStr, err := l.prompt("Enter end time (YYYY-MM-DD HH:MM):")
	if err != nil {
		return err
	}

	start, serr := domain.ParseTime(startStr)
	end, eerr := domain.ParseTime(endStr)
	if serr != nil || eerr != nil || !end.After(start) {
		fmt.Fprintln(l.out, "Invalid date format or end time is before start time.")
		return nil
	}

	// Conflict check comes before user resolution so an occupied room never
	// prompts for an email.
	occ, err := l.bookings.FindConflict(ctx, room, start, end)
	if err != nil {
		return err
	}
	if occ != nil {
		fmt.Fprintf(l.out, "Room is occupied by %s until %s\n", occ.Name, occ.Until)
		return nil
	}

	email, err := l.prompt("Enter your email:")
	if err != nil {
		return err
	}

	user, err := l.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		fmt.Fprintf(l.out, "User found: %s, Email: %s, Phone: %s\n", user.Name, user.Email, user.Phone)
	case errors.Is(err, directory.ErrNotFound):
		fmt.Fprintln(l.out, "User not found. Creating new user.")
		var name, phone string
		if name, err = l.prompt("Enter your name:"); err != nil {
			return err
		}
		if phone, err = l.prompt("Enter your phone number:"); err != nil {
			return err
		}
		user, err = l.users.Create(ctx, name, email, phone)
		if errors.Is(err, directory.ErrValidation) {
			fmt.Fprintln(l.out, "Invalid user details.")
			return nil
		}
		if errors.Is(err, directory.ErrDuplicateUser) {
			fmt.Fprintln(l.out, "A user with this email or phone already exists.")
			return nil
		}
		if err != nil {
			return err
		}
	default:
		return err
	}

	b, err := l.bookings.Record(ctx, booking.RecordRequest{
		RoomNumber: room,
		Start:      start,
		End:        end,
		UserID:     user.ID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(l.out, "Booking successful!")
	_ = l.notifs.NotifyBookingCreated(ctx, user, b)
	return nil
}
