package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	DonationStatusAvailable = "available"
	DonationStatusClaimed   = "claimed"
	DonationStatusDelivered = "delivered"
	DonationStatusCancelled = "cancelled"
	DonationStatusExpired   = "expired"
)

// Search radius bounds in km. The handler substitutes the default when the
// radius is absent or unparseable and clamps the rest into [min, max].
const (
	DefaultNearbyRadiusKm = 10.0
	MinNearbyRadiusKm     = 1.0
	MaxNearbyRadiusKm     = 100.0
)

var (
	MessageSuccessCreateDonation     = "donation created successfully"
	MessageSuccessGetDonations       = "donations retrieved successfully"
	MessageSuccessGetDonation        = "donation retrieved successfully"
	MessageSuccessUpdateDonation     = "donation updated successfully"
	MessageSuccessDeleteDonation     = "donation deleted successfully"
	MessageSuccessGetNearbyDonations = "nearby donations retrieved successfully"
	MessageSuccessUploadImage        = "donation image uploaded successfully"

	MessageFailedCreateDonation     = "failed to create donation"
	MessageFailedGetDonations       = "failed to retrieve donations"
	MessageFailedUpdateDonation     = "failed to update donation"
	MessageFailedDeleteDonation     = "failed to delete donation"
	MessageFailedGetNearbyDonations = "failed to retrieve nearby donations"
	MessageFailedUploadImage        = "failed to upload donation image"

	ErrDonationNotFound           = errors.New("donation not found")
	ErrOnlyDonorsCanDonate        = errors.New("only donors can create donations")
	ErrUnauthorizedDonationAccess = errors.New("unauthorized access to donation")
	ErrInvalidCoordinates         = errors.New("invalid coordinates")
	ErrExpiryDateInPast           = errors.New("expiry date must be in the future")
)

type (
	CreateDonationRequest struct {
		Title           string  `json:"title" validate:"required,max=255"`
		Description     string  `json:"description" validate:"required"`
		Category        string  `json:"category" validate:"required,max=255"`
		Quantity        float64 `json:"quantity" validate:"required,gt=0"`
		Unit            string  `json:"unit" validate:"required,max=50"`
		ExpiryDate      string  `json:"expiry_date" validate:"required"`
		PickupAddress   string  `json:"pickup_address" validate:"required,max=255"`
		PickupLatitude  float64 `json:"pickup_latitude" validate:"required,min=-90,max=90"`
		PickupLongitude float64 `json:"pickup_longitude" validate:"required,min=-180,max=180"`
		ImageURL        string  `json:"image_url" validate:"omitempty,url"`
	}

	// UpdateDonationRequest enumerates the fields a donor may change. Status is
	// deliberately absent: it moves only through the claim state machine.
	UpdateDonationRequest struct {
		Title           *string  `json:"title" validate:"omitempty,max=255"`
		Description     *string  `json:"description" validate:"omitempty"`
		Category        *string  `json:"category" validate:"omitempty,max=255"`
		Quantity        *float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit            *string  `json:"unit" validate:"omitempty,max=50"`
		ExpiryDate      *string  `json:"expiry_date" validate:"omitempty"`
		PickupAddress   *string  `json:"pickup_address" validate:"omitempty,max=255"`
		PickupLatitude  *float64 `json:"pickup_latitude" validate:"omitempty,min=-90,max=90"`
		PickupLongitude *float64 `json:"pickup_longitude" validate:"omitempty,min=-180,max=180"`
		ImageURL        *string  `json:"image_url" validate:"omitempty,url"`
	}

	DonationFilter struct {
		Status   string
		Category string
		Page     int
		Limit    int
	}

	NearbyDonationsRequest struct {
		Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
		Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
		Radius    float64 `json:"radius" validate:"required,min=1,max=100"`
	}

	UploadDonationImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	DonationResponse struct {
		ID              string        `json:"id"`
		DonorID         string        `json:"donor_id"`
		Donor           *UserResponse `json:"donor,omitempty"`
		Title           string        `json:"title"`
		Description     string        `json:"description"`
		Category        string        `json:"category"`
		Quantity        float64       `json:"quantity"`
		Unit            string        `json:"unit"`
		ExpiryDate      time.Time     `json:"expiry_date"`
		PickupAddress   string        `json:"pickup_address"`
		PickupLatitude  float64       `json:"pickup_latitude"`
		PickupLongitude float64       `json:"pickup_longitude"`
		Status          string        `json:"status"`
		ImageURL        string        `json:"image_url,omitempty"`
		CreatedAt       time.Time     `json:"created_at"`
		UpdatedAt       time.Time     `json:"updated_at"`
	}

	// NearbyDonation is scanned straight from the Haversine query; distance is
	// the computed great-circle distance in km.
	NearbyDonation struct {
		ID              string    `json:"id"`
		DonorID         string    `json:"donor_id"`
		Title           string    `json:"title"`
		Description     string    `json:"description"`
		Category        string    `json:"category"`
		Quantity        float64   `json:"quantity"`
		Unit            string    `json:"unit"`
		ExpiryDate      time.Time `json:"expiry_date"`
		PickupAddress   string    `json:"pickup_address"`
		PickupLatitude  float64   `json:"pickup_latitude"`
		PickupLongitude float64   `json:"pickup_longitude"`
		Status          string    `json:"status"`
		ImageURL        string    `json:"image_url,omitempty"`
		Distance        float64   `json:"distance"`
		CreatedAt       time.Time `json:"created_at"`
	}
)
