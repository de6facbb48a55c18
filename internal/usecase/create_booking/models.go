package create_booking

import "time"

// Request входные данные создания бронирования
type Request struct {
	UserID      int64
	BusinessID  int64
	ServiceID   int64
	ScheduledAt time.Time
	Notes       *string
	Photos      []string
}
