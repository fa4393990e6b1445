// Package record holds the value types flowing through the transfer pipeline.
package record

import "time"

// TransferRecord is the structured result of field parsing. Every field is
// always present with a deterministic empty default; downstream serialization
// never branches on missing keys.
type TransferRecord struct {
	OrderNumber string   `json:"order_number"`
	Date        string   `json:"date"`
	Customer    string   `json:"customer"`
	Address     string   `json:"address"`
	Items       []string `json:"items"`
}

// NewTransferRecord returns a record with all fields at their defaults.
// Items is empty but non-nil so it serializes as [] rather than null.
func NewTransferRecord() TransferRecord {
	return TransferRecord{Items: []string{}}
}

// SubmissionContext carries the caller-supplied parameters merged into the
// artifact alongside the parsed record.
type SubmissionContext struct {
	Username   string    `json:"username"`
	TrayType   string    `json:"tray_type"`
	Quantity   string    `json:"quantity"`
	CapturedAt time.Time `json:"captured_at"`
}
