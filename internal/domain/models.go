package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Job struct {
	ID        int       `db:"id"`
	OwnerID   int       `db:"owner_id"`
	Title     string    `db:"title"`
	Budget    float64   `db:"budget"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type JobApplication struct {
	ID                    int       `db:"id"`
	JobID                 int       `db:"job_id"`
	ProviderID            int       `db:"provider_id"`
	Status                string    `db:"status"`
	ProposedRate          float64   `db:"proposed_rate"`
	ClientContactRevealed bool      `db:"client_contact_revealed"`
	Notified              bool      `db:"notified"`
	CreatedAt             time.Time `db:"created_at"`
}

type Wallet struct {
	ID          int     `db:"id"`
	UserID      int     `db:"user_id"`
	Balance     float64 `db:"balance"`
	TotalPaid   float64 `db:"total_paid"`
	TotalEarned float64 `db:"total_earned"`
}

type PaymentRecord struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	TransactionType string    `db:"transaction_type"`
	AmountOriginal  float64   `db:"amount_original"`
	FeePercentage   float64   `db:"fee_percentage"`
	FeeAmount       float64   `db:"fee_amount"`
	PaymentStatus   string    `db:"payment_status"`
	RelatedJobID    *int      `db:"related_job_id"`
	Notes           string    `db:"notes"`
	CreatedAt       time.Time `db:"created_at"`
}
