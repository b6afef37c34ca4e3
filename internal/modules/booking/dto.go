package booking

import "time"

type RecordRequest struct {
	RoomNumber int
	Start      time.Time
	End        time.Time
	UserID     int64
}
