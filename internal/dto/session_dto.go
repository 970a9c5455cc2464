package dto

import "time"

type SessionResponse struct {
	Id        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
