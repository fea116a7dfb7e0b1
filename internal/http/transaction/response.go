package transaction

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgervoice/internal/transaction"
)

type recordResponse struct {
	Type              transaction.Type `json:"type"`
	Amount            *string          `json:"amount,omitempty"`
	Quantity          *string          `json:"quantity,omitempty"`
	Unit              string           `json:"unit,omitempty"`
	UnitPrice         *string          `json:"unitPrice,omitempty"`
	Description       string           `json:"description,omitempty"`
	Category          string           `json:"category,omitempty"`
	Memo              string           `json:"memo,omitempty"`
	PaymentMethod     string           `json:"paymentMethod,omitempty"`
	Store             string           `json:"store,omitempty"`
	SavingsAllocation string           `json:"savingsAllocation,omitempty"`
	EffectiveAmount   *string          `json:"effectiveAmount,omitempty"`
}

type previewResponse struct {
	Record  recordResponse `json:"record"`
	Message string         `json:"message"`
}

type quickPreviewResponse struct {
	Amount      *string `json:"amount,omitempty"`
	Description string  `json:"description,omitempty"`
	Payment     string  `json:"payment,omitempty"`
	Store       string  `json:"store,omitempty"`
	RawLine     string  `json:"rawLine,omitempty"`
	Message     string  `json:"message"`
}

type confirmResponse struct {
	Success  bool   `json:"success"`
	DeepLink string `json:"deepLink"`
	Message  string `json:"message"`
}

func toRecordResponse(rec transaction.Record) recordResponse {
	return recordResponse{
		Type:              rec.Type,
		Amount:            numText(rec.Amount),
		Quantity:          numText(rec.Quantity),
		Unit:              rec.Unit,
		UnitPrice:         numText(rec.UnitPrice),
		Description:       rec.Description,
		Category:          rec.Category,
		Memo:              rec.Memo,
		PaymentMethod:     rec.PaymentMethod,
		Store:             rec.Store,
		SavingsAllocation: rec.SavingsAllocation,
		EffectiveAmount:   numText(rec.EffectiveAmount()),
	}
}

func toPreviewResponse(p transaction.Preview) previewResponse {
	return previewResponse{
		Record:  toRecordResponse(p.Record),
		Message: p.Message,
	}
}

func toQuickPreviewResponse(p transaction.QuickPreview) quickPreviewResponse {
	return quickPreviewResponse{
		Amount:      numText(p.Amount),
		Description: p.Description,
		Payment:     p.Payment,
		Store:       p.Store,
		RawLine:     p.RawLine,
		Message:     p.Message,
	}
}

func toConfirmResponse(c transaction.Confirm) confirmResponse {
	return confirmResponse{
		Success:  c.Success,
		DeepLink: c.DeepLink,
		Message:  c.Message,
	}
}

func numText(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}

	s := d.Decimal.String()

	return &s
}
