package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name           string     `json:"name"`
	Email          string     `gorm:"uniqueIndex" json:"email"`
	Password       string     `json:"-"`
	Role           string     `json:"role"` // donor, receiver, admin
	Phone          string     `json:"phone,omitempty"`
	Address        string     `json:"address,omitempty"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	Verified       bool       `json:"verified"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Donations    []*Donation   `gorm:"foreignKey:DonorID" json:"donations,omitempty"`
	Claims       []*Claim      `gorm:"foreignKey:ReceiverID" json:"claims,omitempty"`
	Campaigns    []*Campaign   `gorm:"foreignKey:CreatorID" json:"campaigns,omitempty"`
	Timestamp
}

// AuthSession backs token revocation: one row per issued token, keyed by the
// token's jti. Logout revokes the row for the presented token only.
type AuthSession struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
