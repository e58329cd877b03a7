package domain

import "time"

// Store is a reference entity for a physical site whose exports get
// ingested. The upload flow works from the request's store context alone,
// so stores are optional metadata rather than a foreign-key constraint.
type Store struct {
	ID       string   `json:"id" gorm:"primaryKey"`
	Name     string   `json:"name"`
	Platform Platform `json:"platform"`
	OutletID string   `json:"outlet_id,omitempty"`
	MID      string   `json:"mid,omitempty"`
	BookerID string   `json:"booker_id,omitempty"`
	Active   bool     `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
