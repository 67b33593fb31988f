package models

import (
	"time"

	"gorm.io/gorm"
)

type FeeStatus string

const (
	FeeStatusUSD     FeeStatus = "USD"
	FeeStatusEUR     FeeStatus = "EUR"
	FeeStatusBitcoin FeeStatus = "Bitcoin"
	FeeStatusUnpaid  FeeStatus = "unpaid"
)

// Appointment is an owned sub-entity of Patient. Amount is kept as text and
// only parsed when a report needs a number.
type Appointment struct {
	gorm.Model
	PatientID   uint      `json:"patient_id"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Description string    `json:"description"`
	FeeStatus   FeeStatus `json:"feeStatus"`
	Amount      string    `json:"amount"`
}

// IsUnpaid reports whether the amount still counts toward the outstanding
// balance; every other fee status is a paid currency.
func (a *Appointment) IsUnpaid() bool {
	return a.FeeStatus == FeeStatusUnpaid
}
