package dto

import "time"

type WalletResponseDTO struct {
	Balance     float64 `json:"balance" example:"500.5"`
	TotalPaid   float64 `json:"total_paid" example:"42"`
	TotalEarned float64 `json:"total_earned" example:"0"`
}

type TopUpRequestDTO struct {
	Amount    float64 `json:"amount" example:"500"`
	Reference string  `json:"reference" example:"2377225624"`
}

type PaymentRecordResponseDTO struct {
	ID              int       `json:"id" example:"11"`
	TransactionType string    `json:"transaction_type" example:"approval_fee"`
	AmountOriginal  float64   `json:"amount_original" example:"1000"`
	FeePercentage   float64   `json:"fee_percentage" example:"10"`
	FeeAmount       float64   `json:"fee_amount" example:"100"`
	PaymentStatus   string    `json:"payment_status" example:"pending"`
	RelatedJobID    *int      `json:"related_job_id,omitempty" example:"42"`
	Notes           string    `json:"notes" example:"approval fee for job 42"`
	CreatedAt       time.Time `json:"created_at" example:"2025-06-09T16:09:57+03:00"`
}
