package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateOrganization = "organization created successfully"
	MessageSuccessGetOrganization    = "organization retrieved successfully"
	MessageSuccessGetOrganizations   = "organizations retrieved successfully"
	MessageSuccessVerifyOrganization = "organization verification status updated"
	MessageSuccessUploadDocument     = "verification document uploaded successfully"

	MessageFailedCreateOrganization = "failed to create organization"
	MessageFailedGetOrganization    = "failed to retrieve organization"
	MessageFailedVerifyOrganization = "failed to update verification status"
	MessageFailedUploadDocument     = "failed to upload verification document"

	ErrOrganizationNotFound = errors.New("organization not found")
)

type (
	CreateOrganizationRequest struct {
		Name               string  `json:"name" validate:"required,max=255"`
		Address            string  `json:"address" validate:"required"`
		Latitude           float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
		Longitude          float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
		ContactPerson      string  `json:"contact_person" validate:"required,max=255"`
		Phone              string  `json:"phone" validate:"omitempty,max=20"`
		Email              string  `json:"email" validate:"omitempty,email"`
		Type               string  `json:"type" validate:"required,oneof=receiver donor_company"`
		CSRInfo            string  `json:"csr_info" validate:"omitempty"`
		VerificationDocURL string  `json:"verification_doc_url" validate:"omitempty,url"`
	}

	VerifyOrganizationRequest struct {
		Verified          *bool  `json:"verified" validate:"required"`
		VerificationNotes string `json:"verification_notes" validate:"omitempty"`
	}

	UploadVerificationDocRequest struct {
		Document *multipart.FileHeader `json:"document" form:"document" validate:"required"`
	}

	OrganizationResponse struct {
		ID                 string          `json:"id"`
		Name               string          `json:"name"`
		Address            string          `json:"address"`
		Latitude           float64         `json:"latitude"`
		Longitude          float64         `json:"longitude"`
		ContactPerson      string          `json:"contact_person"`
		Phone              string          `json:"phone,omitempty"`
		Email              string          `json:"email,omitempty"`
		Type               string          `json:"type"`
		CSRInfo            string          `json:"csr_info,omitempty"`
		VerificationDocURL string          `json:"verification_doc_url,omitempty"`
		Verified           bool            `json:"verified"`
		VerificationNotes  string          `json:"verification_notes,omitempty"`
		VerifiedBy         string          `json:"verified_by,omitempty"`
		VerifiedAt         *time.Time      `json:"verified_at,omitempty"`
		Members            []*UserResponse `json:"members,omitempty"`
		CreatedAt          time.Time       `json:"created_at"`
	}
)
