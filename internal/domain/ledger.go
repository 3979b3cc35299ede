package domain

import "github.com/shopspring/decimal"

// TransferParams is the input data for the transfer transaction.
// ConvertedAmount is Amount expressed in the destination currency, already
// rounded at the conversion boundary; for same-currency transfers the two
// are equal.
type TransferParams struct {
	FromAccountID   string          `json:"from_account_id"`
	ToAccountID     string          `json:"to_account_id"`
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	Description     string          `json:"description"`
}

// TransferTxResult is the result of the transfer transaction.
type TransferTxResult struct {
	Transaction Transaction `json:"transaction"`
	FromAccount Account     `json:"from_account"`
	ToAccount   Account     `json:"to_account"`
}

// AccountTxResult is the result of a single-account ledger mutation.
type AccountTxResult struct {
	Transaction Transaction `json:"transaction"`
	Account     Account     `json:"account"`
}

// CardTxResult is the result of a card ledger mutation.
type CardTxResult struct {
	Transaction Transaction `json:"transaction"`
	Card        Card        `json:"card"`
}
