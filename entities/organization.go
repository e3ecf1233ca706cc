package entities

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name               string     `json:"name"`
	Address            string     `json:"address"`
	Latitude           float64    `json:"latitude"`
	Longitude          float64    `json:"longitude"`
	ContactPerson      string     `json:"contact_person"`
	Phone              string     `json:"phone,omitempty"`
	Email              string     `json:"email,omitempty"`
	Type               string     `json:"type"` // receiver, donor_company
	CSRInfo            string     `json:"csr_info,omitempty"`
	VerificationDocURL string     `json:"verification_doc_url,omitempty"`
	Verified           bool       `json:"verified"`
	VerificationNotes  string     `json:"verification_notes,omitempty"`
	VerifiedBy         *uuid.UUID `json:"verified_by,omitempty"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`

	Users []*User `gorm:"foreignKey:OrganizationID" json:"users,omitempty"`
	Timestamp
}
