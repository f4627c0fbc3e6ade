package models

import "time"

// DonationIntent is a donation request from the site. No payment is taken;
// the flow is a stub that acknowledges the pledge.
type DonationIntent struct {
	Amount    int    `json:"amount"`
	Frequency string `json:"frequency"` // one-time | monthly
	Email     string `json:"email"`
}

// DonationReceipt acknowledges a donation intent.
type DonationReceipt struct {
	ReceiptID string    `json:"receiptId"`
	Amount    int       `json:"amount"`
	Frequency string    `json:"frequency"`
	Impact    string    `json:"impact"`
	CreatedAt time.Time `json:"createdAt"`
}
