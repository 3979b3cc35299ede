package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrTransactionNotFound indicates that the journal entry is not found.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionType classifies a journaled monetary movement.
type TransactionType string

// Journal entry types.
const (
	TransactionPayment    TransactionType = "PAYMENT"
	TransactionDeposit    TransactionType = "DEPOSIT"
	TransactionWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTransfer   TransactionType = "TRANSFER"
)

// TransactionStatus is the terminal state of a journal entry.
// PENDING moves to COMPLETED or FAILED. CANCELLED is reserved: nothing in
// this module produces it.
type TransactionStatus string

// Journal entry statuses.
const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
	StatusCancelled TransactionStatus = "CANCELLED"
)

// Transaction is an append-only journal entry recording a completed (or
// explicitly failed) monetary movement. Entries are immutable once written.
// SourceID and DestinationID reference an account or card leg; at most one
// of them may be empty.
type Transaction struct {
	ID            string            `json:"id"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	SourceID      string            `json:"source_id,omitempty"`
	DestinationID string            `json:"destination_id,omitempty"`
	Description   string            `json:"description"`
	Currency      string            `json:"currency"`
	Status        TransactionStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}
