package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Platform string

const (
	PlatformTakeMyPayments Platform = "takemypayments"
	PlatformBooker         Platform = "booker"
)

func (p Platform) Valid() bool {
	return p == PlatformTakeMyPayments || p == PlatformBooker
}

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "Completed"
	TransactionStatusRefunded  TransactionStatus = "Refunded"
	TransactionStatusDeclined  TransactionStatus = "Declined"
)

// Transaction is one sale row imported from a platform export or entered
// manually. Amounts are stored as integer pence so summation never loses
// sub-pound precision.
type Transaction struct {
	ID            string            `json:"id" gorm:"primaryKey"`
	TransactionID string            `json:"transaction_id" gorm:"index"` // vendor-assigned reference
	StoreID       string            `json:"store_id" gorm:"index"`
	StoreName     string            `json:"store_name"`
	Platform      Platform          `json:"platform"`
	DateTime      time.Time         `json:"date_time"`
	Hour          int               `json:"hour"`        // 0-23, derived from DateTime
	DayOfWeek     int               `json:"day_of_week"` // 0=Sunday
	AmountPence   int64             `json:"amount_pence"`
	PaymentMethod string            `json:"payment_method"`
	CardScheme    string            `json:"card_scheme"`
	Description   string            `json:"description"`
	Status        TransactionStatus `json:"status"`
	Category      string            `json:"category"`
	CustomerID    string            `json:"customer_id,omitempty"` // card-last-4 or loyalty token

	// Optional line item carried by café exports.
	ProductName       string `json:"product_name,omitempty"`
	ProductCategory   string `json:"product_category,omitempty"`
	Quantity          int    `json:"quantity,omitempty"`
	ProductPricePence int64  `json:"product_price_pence,omitempty"`

	// Platform identifiers from the upload context.
	OutletID string `json:"outlet_id,omitempty"`
	MID      string `json:"mid,omitempty"`
	BookerID string `json:"booker_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Amount returns the transaction value in pounds.
func (t *Transaction) Amount() decimal.Decimal {
	return decimal.New(t.AmountPence, -2)
}

// SetDateTime assigns the timestamp and keeps the derived hour and weekday
// buckets in sync.
func (t *Transaction) SetDateTime(ts time.Time) {
	t.DateTime = ts
	t.Hour = ts.Hour()
	t.DayOfWeek = int(ts.Weekday())
}
