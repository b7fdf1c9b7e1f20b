package domain

import "time"

// Session is the single authenticated operator session of the process.
type Session struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}
