package dto

import "time"

type ApplyRequestDTO struct {
	ProposedRate float64 `json:"proposed_rate" example:"850"`
}

type ApplicationResponseDTO struct {
	ID                    int       `json:"id" example:"3"`
	JobID                 int       `json:"job_id" example:"42"`
	ProviderID            int       `json:"provider_id" example:"9"`
	Status                string    `json:"status" example:"pending"`
	ProposedRate          float64   `json:"proposed_rate" example:"850"`
	ClientContactRevealed bool      `json:"client_contact_revealed" example:"false"`
	CreatedAt             time.Time `json:"created_at" example:"2025-06-09T16:09:57+03:00"`
}
