package entities

import (
	"time"

	"github.com/google/uuid"
)

type Donation struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID         uuid.UUID `json:"donor_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit"`
	ExpiryDate      time.Time `json:"expiry_date"`
	PickupAddress   string    `json:"pickup_address"`
	PickupLatitude  float64   `json:"pickup_latitude"`
	PickupLongitude float64   `json:"pickup_longitude"`
	Status          string    `json:"status"` // available, claimed, delivered, cancelled, expired
	ImageURL        string    `json:"image_url,omitempty"`

	Donor  *User    `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	Claims []*Claim `gorm:"foreignKey:DonationID" json:"claims,omitempty"`
	Timestamp
}
