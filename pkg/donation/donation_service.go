package donation

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/entities"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/utils/storage"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, caller domain.Identity, req domain.CreateDonationRequest) (*domain.DonationResponse, error)
		GetDonations(ctx context.Context, filter domain.DonationFilter) ([]*domain.DonationResponse, int64, error)
		GetDonationByID(ctx context.Context, id string) (*domain.DonationResponse, error)
		GetMyDonations(ctx context.Context, caller domain.Identity, page, limit int) ([]*domain.DonationResponse, int64, error)
		UpdateDonation(ctx context.Context, caller domain.Identity, id string, req domain.UpdateDonationRequest) (*domain.DonationResponse, error)
		DeleteDonation(ctx context.Context, caller domain.Identity, id string) error
		GetNearbyDonations(ctx context.Context, req domain.NearbyDonationsRequest) ([]*domain.NearbyDonation, error)
		UploadDonationImage(ctx context.Context, caller domain.Identity, id string, image *multipart.FileHeader) (*domain.DonationResponse, error)
	}

	donationService struct {
		donationRepository DonationRepository
		s3                 storage.AwsS3
	}
)

func NewDonationService(donationRepository DonationRepository, s3 storage.AwsS3) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		s3:                 s3,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, caller domain.Identity, req domain.CreateDonationRequest) (*domain.DonationResponse, error) {
	if !caller.IsDonor() {
		return nil, domain.ErrOnlyDonorsCanDonate
	}

	expiryDate, err := parseDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}
	if !expiryDate.After(time.Now()) {
		return nil, domain.ErrExpiryDateInPast
	}

	donorID, err := uuid.Parse(caller.UserID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	donation := &entities.Donation{
		ID:              uuid.New(),
		DonorID:         donorID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		ExpiryDate:      expiryDate,
		PickupAddress:   req.PickupAddress,
		PickupLatitude:  req.PickupLatitude,
		PickupLongitude: req.PickupLongitude,
		Status:          domain.DonationStatusAvailable,
		ImageURL:        req.ImageURL,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}
	return toDonationResponse(donation), nil
}

func (s *donationService) GetDonations(ctx context.Context, filter domain.DonationFilter) ([]*domain.DonationResponse, int64, error) {
	donations, count, err := s.donationRepository.GetDonations(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, donation := range donations {
		result = append(result, toDonationResponse(donation))
	}
	return result, count, nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string) (*domain.DonationResponse, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return toDonationResponse(donation), nil
}

func (s *donationService) GetMyDonations(ctx context.Context, caller domain.Identity, page, limit int) ([]*domain.DonationResponse, int64, error) {
	donations, count, err := s.donationRepository.GetDonationsByDonor(ctx, caller.UserID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, donation := range donations {
		result = append(result, toDonationResponse(donation))
	}
	return result, count, nil
}

func (s *donationService) UpdateDonation(ctx context.Context, caller domain.Identity, id string, req domain.UpdateDonationRequest) (*domain.DonationResponse, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if donation.DonorID.String() != caller.UserID {
		return nil, domain.ErrUnauthorizedDonationAccess
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.ExpiryDate != nil {
		expiryDate, err := parseDate(*req.ExpiryDate)
		if err != nil {
			return nil, err
		}
		updates["expiry_date"] = expiryDate
	}
	if req.PickupAddress != nil {
		updates["pickup_address"] = *req.PickupAddress
	}
	if req.PickupLatitude != nil {
		updates["pickup_latitude"] = *req.PickupLatitude
	}
	if req.PickupLongitude != nil {
		updates["pickup_longitude"] = *req.PickupLongitude
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	if len(updates) > 0 {
		if err := s.donationRepository.UpdateDonation(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.GetDonationByID(ctx, id)
}

func (s *donationService) DeleteDonation(ctx context.Context, caller domain.Identity, id string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	if donation.DonorID.String() != caller.UserID && !caller.IsAdmin() {
		return domain.ErrUnauthorizedDonationAccess
	}
	return s.donationRepository.DeleteDonation(ctx, id)
}

func (s *donationService) GetNearbyDonations(ctx context.Context, req domain.NearbyDonationsRequest) ([]*domain.NearbyDonation, error) {
	donations, err := s.donationRepository.GetNearbyDonations(ctx, req.Latitude, req.Longitude, req.Radius)
	if err != nil {
		return nil, err
	}
	if donations == nil {
		donations = []*domain.NearbyDonation{}
	}
	return donations, nil
}

func (s *donationService) UploadDonationImage(ctx context.Context, caller domain.Identity, id string, image *multipart.FileHeader) (*domain.DonationResponse, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if donation.DonorID.String() != caller.UserID {
		return nil, domain.ErrUnauthorizedDonationAccess
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("donation-%s", id),
		image,
		"donations",
		storage.AllowImage...,
	)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"image_url": s.s3.GetPublicLinkKey(objectKey),
	}
	if err := s.donationRepository.UpdateDonation(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.GetDonationByID(ctx, id)
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func toDonationResponse(donation *entities.Donation) *domain.DonationResponse {
	resp := &domain.DonationResponse{
		ID:              donation.ID.String(),
		DonorID:         donation.DonorID.String(),
		Title:           donation.Title,
		Description:     donation.Description,
		Category:        donation.Category,
		Quantity:        donation.Quantity,
		Unit:            donation.Unit,
		ExpiryDate:      donation.ExpiryDate,
		PickupAddress:   donation.PickupAddress,
		PickupLatitude:  donation.PickupLatitude,
		PickupLongitude: donation.PickupLongitude,
		Status:          donation.Status,
		ImageURL:        donation.ImageURL,
		CreatedAt:       donation.CreatedAt,
		UpdatedAt:       donation.UpdatedAt,
	}
	if donation.Donor != nil {
		resp.Donor = &domain.UserResponse{
			ID:        donation.Donor.ID.String(),
			Name:      donation.Donor.Name,
			Email:     donation.Donor.Email,
			Role:      donation.Donor.Role,
			Verified:  donation.Donor.Verified,
			CreatedAt: donation.Donor.CreatedAt,
		}
	}
	return resp
}
