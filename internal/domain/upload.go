package domain

import "time"

// Upload tracks the latest successful ingest per store. One row per store,
// upserted on every upload.
type Upload struct {
	StoreID          string    `json:"store_id" gorm:"primaryKey"`
	StoreName        string    `json:"store_name"`
	Platform         Platform  `json:"platform"`
	LastUploaded     time.Time `json:"last_uploaded"`
	TransactionCount int       `json:"transaction_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
