package service

import (
	"github.com/budgetbook/internal/models"
)

// Virtual transfer destinations used by the month summary. B and N sum
// the outgoings booked against those account codes, C carries the
// month's float reserve and L is the leftover after all outgoings.
const (
	AccountCodeB = "B"
	AccountCodeN = "N"
	AccountCodeC = "C"
)

// MonthSummary is the derived view of a month. It is recomputed on
// every read and never persisted.
type MonthSummary struct {
	TotalOut       float64 `json:"total_out"`
	StartingPoint  float64 `json:"starting_point"`
	TransferToB    float64 `json:"transfer_to_b"`
	TransferToN    float64 `json:"transfer_to_n"`
	TransferToC    float64 `json:"transfer_to_c"`
	TransferToL    float64 `json:"transfer_to_l"`
	TotalTransfers float64 `json:"total_transfers"`
}

// ComputeMonthSummary derives the transfer totals and leftover balance
// for a month from its outgoings. An empty outgoing list yields zero
// sums.
func ComputeMonthSummary(month *models.Month, outgoings []models.Outgoing) MonthSummary {
	var totalOut, toB, toN float64
	for _, item := range outgoings {
		totalOut += item.Amount
		switch item.AccountCode {
		case AccountCodeB:
			toB += item.Amount
		case AccountCodeN:
			toN += item.Amount
		}
	}

	// The C column is the month's float reserve, not the sum of
	// outgoings booked against account C.
	toC := month.FloatAmount
	toL := month.StartingPoint - totalOut

	return MonthSummary{
		TotalOut:       totalOut,
		StartingPoint:  month.StartingPoint,
		TransferToB:    toB,
		TransferToN:    toN,
		TransferToC:    toC,
		TransferToL:    toL,
		TotalTransfers: toB + toN + toC + toL,
	}
}
