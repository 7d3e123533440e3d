package domain

import "time"

type Class struct {
	ID      string
	Name    string
	Subject string
	Code    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
