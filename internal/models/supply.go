package models

import "time"

type SupplyStatus string

const (
	SupplyStatusAvailable SupplyStatus = "available"
	SupplyStatusReserved  SupplyStatus = "reserved"
	SupplyStatusClaimed   SupplyStatus = "claimed"
)

// Supply is a persisted donation record. The name column carries the full
// human-readable description built from the extracted supply data.
type Supply struct {
	ID             int64        `db:"id"`
	Name           string       `db:"name"`
	CategoryID     int          `db:"category_id"`
	LocationID     int64        `db:"location_id"`
	Quantity       float64      `db:"quantity"`
	AddedByUserID  int64        `db:"added_by_user_id"`
	Status         SupplyStatus `db:"status"`
	ExpirationDate *time.Time   `db:"expiration_date"`
	CreatedAt      time.Time    `db:"created_at"`
}

// ExtractedSupply holds a validated record_supply_donation tool payload.
// It lives only for the duration of a single chat turn.
type ExtractedSupply struct {
	Category          string
	Name              string
	Quantity          float64
	Unit              string
	Condition         string
	Location          string
	HasTransportation bool
	CanDeliver        bool
	Notes             string
	ExpirationDate    string
}

// AvailableSupply is one row of the supply search join against locations.
type AvailableSupply struct {
	ID           int64
	Name         string
	CategoryID   int
	Quantity     float64
	LocationName string
	Latitude     *float64
	Longitude    *float64
}
