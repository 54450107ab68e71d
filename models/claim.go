package models

import (
	"time"
)

// Claim grants one actor exclusive operational use of a shareable drone
// for an open-ended interval. A claim with EndTime unset is active; for
// any drone at most one claim may be active at a time. Claims are never
// deleted, only closed by setting EndTime.
type Claim struct {
	ID        string     `json:"id" db:"id"`
	DroneID   string     `json:"drone_id" db:"drone_id"`
	UserID    string     `json:"user_id" db:"user_id"`
	UserEmail string     `json:"user_email" db:"user_email"`
	StartTime time.Time  `json:"start_time" db:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty" db:"end_time"`
}

// Active reports whether the claim is still open.
func (c *Claim) Active() bool {
	return c.EndTime == nil
}
