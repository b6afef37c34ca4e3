package domain

import "time"

// TimeLayout is the fixed minute-precision format for every booking
// timestamp. Values are stored as text in this layout, so lexicographic
// order matches chronological order as long as they stay zero-padded.
const TimeLayout = "2006-01-02 15:04"

var rooms = []int{1, 2, 3, 4, 5}

// Rooms returns the fixed set of bookable room numbers.
func Rooms() []int {
	out := make([]int, len(rooms))
	copy(out, rooms)
	return out
}

func ValidRoom(n int) bool {
	for _, r := range rooms {
		if r == n {
			return true
		}
	}
	return false
}

// ParseTime parses a timestamp in TimeLayout. Callers re-format the result
// with TimeLayout before storing or comparing it, which canonicalizes any
// missing zero padding the parser tolerated.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// Booking reserves a room for the half-open interval
// [StartTime, EndTime): start inclusive, end exclusive.
type Booking struct {
	ID         int64  `json:"id"`
	RoomNumber int    `json:"room_number" validate:"required"`
	StartTime  string `json:"start_time" validate:"required"`
	EndTime    string `json:"end_time" validate:"required"`
	UserID     int64  `json:"user_id" validate:"required"`
}
