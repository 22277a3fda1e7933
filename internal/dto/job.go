package dto

import "time"

type CreateJobRequestDTO struct {
	Title  string  `json:"title" example:"Fix kitchen sink"`
	Budget float64 `json:"budget" example:"1000"`
}

type UpdateJobStatusRequestDTO struct {
	Status string `json:"status" example:"approved"`
	// AuthToken is the last-resort credential channel for clients that can
	// send neither cookie nor header.
	AuthToken string `json:"auth_token,omitempty"`
}

type JobResponseDTO struct {
	ID        int       `json:"id" example:"42"`
	OwnerID   int       `json:"owner_id" example:"7"`
	Title     string    `json:"title" example:"Fix kitchen sink"`
	Budget    float64   `json:"budget" example:"1000"`
	Status    string    `json:"status" example:"open"`
	CreatedAt time.Time `json:"created_at" example:"2025-06-09T16:09:57+03:00"`
}
