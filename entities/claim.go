package entities

import (
	"time"

	"github.com/google/uuid"
)

type Claim struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID uuid.UUID  `json:"donation_id"`
	ReceiverID uuid.UUID  `json:"receiver_id"`
	Status     string     `json:"status"` // pending, approved, rejected, delivered
	PickupTime *time.Time `json:"pickup_time,omitempty"`
	Notes      string     `json:"notes,omitempty"`

	Donation *Donation `gorm:"foreignKey:DonationID" json:"donation,omitempty"`
	Receiver *User     `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	Timestamp
}
