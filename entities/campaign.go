package entities

import (
	"time"

	"github.com/google/uuid"
)

type Campaign struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CreatorID    uuid.UUID `json:"creator_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	GoalAmount   float64   `json:"goal_amount"`
	RaisedAmount float64   `json:"raised_amount"`
	StartDate    time.Time `json:"start_date"`
	Deadline     time.Time `json:"deadline"`
	Status       string    `json:"status"` // draft, active, completed, cancelled, expired
	ImageURL     string    `json:"image_url,omitempty"`

	Creator *User             `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Pledges []*CampaignPledge `gorm:"foreignKey:CampaignID" json:"pledges,omitempty"`
	Timestamp
}

type CampaignPledge struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	UserID     uuid.UUID `json:"user_id"`
	Amount     float64   `json:"amount"`
	Source     string    `json:"source"`              // direct, midtrans
	Reference  string    `json:"reference,omitempty"` // payment order id when paid through the gateway

	Campaign *Campaign `gorm:"foreignKey:CampaignID" json:"-"`
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Timestamp
}
