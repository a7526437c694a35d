package get_next_available

import "time"

// Response suggested delivery dates per booking type
type Response struct {
	Normal time.Time
	Urgent time.Time
}
