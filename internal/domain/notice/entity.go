package notice

import "time"

type Notice struct {
	ID        string
	Title     string
	Body      string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
