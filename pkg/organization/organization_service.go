package organization

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
	OrganizationService interface {
		Register(ctx context.Context, req domain.CreateOrganizationRequest) (*domain.OrganizationResponse, error)
		GetByID(ctx context.Context, id string) (*domain.OrganizationResponse, error)
		List(ctx context.Context, orgType string, verified *bool, page, limit int) ([]*domain.OrganizationResponse, int64, error)
		Verify(ctx context.Context, caller domain.Identity, orgID string, req domain.VerifyOrganizationRequest) (*domain.OrganizationResponse, error)
		UploadDocument(ctx context.Context, orgID string, doc *multipart.FileHeader) (*domain.OrganizationResponse, error)
	}

	organizationService struct {
		organizationRepository OrganizationRepository
		s3                     storage.AwsS3
	}
)

func NewOrganizationService(organizationRepository OrganizationRepository, s3 storage.AwsS3) OrganizationService {
	return &organizationService{
		organizationRepository: organizationRepository,
		s3:                     s3,
	}
}

func (s *organizationService) Register(ctx context.Context, req domain.CreateOrganizationRequest) (*domain.OrganizationResponse, error) {
	org := &entities.Organization{
		ID:                 uuid.New(),
		Name:               req.Name,
		Address:            req.Address,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		ContactPerson:      req.ContactPerson,
		Phone:              req.Phone,
		Email:              req.Email,
		Type:               req.Type,
		CSRInfo:            req.CSRInfo,
		VerificationDocURL: req.VerificationDocURL,
		Verified:           false,
	}

	if err := s.organizationRepository.CreateOrganization(ctx, org); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

func (s *organizationService) GetByID(ctx context.Context, id string) (*domain.OrganizationResponse, error) {
	org, err := s.organizationRepository.GetOrganizationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

func (s *organizationService) List(ctx context.Context, orgType string, verified *bool, page, limit int) ([]*domain.OrganizationResponse, int64, error) {
	orgs, count, err := s.organizationRepository.GetOrganizations(ctx, orgType, verified, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		result = append(result, toOrganizationResponse(org))
	}
	return result, count, nil
}

func (s *organizationService) Verify(ctx context.Context, caller domain.Identity, orgID string, req domain.VerifyOrganizationRequest) (*domain.OrganizationResponse, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrUserNotAllowed
	}

	if _, err := s.organizationRepository.GetOrganizationByID(ctx, orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, err
	}

	verifierID, err := uuid.Parse(caller.UserID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	updates := map[string]interface{}{
		"verified":           *req.Verified,
		"verification_notes": req.VerificationNotes,
	}
	if *req.Verified {
		now := time.Now()
		updates["verified_at"] = now
		updates["verified_by"] = verifierID
	} else {
		updates["verified_at"] = nil
		updates["verified_by"] = nil
	}

	if err := s.organizationRepository.UpdateOrganization(ctx, orgID, updates); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, orgID)
}

func (s *organizationService) UploadDocument(ctx context.Context, orgID string, doc *multipart.FileHeader) (*domain.OrganizationResponse, error) {
	if _, err := s.organizationRepository.GetOrganizationByID(ctx, orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, err
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("org-%s", orgID),
		doc,
		"verification-docs",
		storage.AllowDocument...,
	)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"verification_doc_url": s.s3.GetPublicLinkKey(objectKey),
	}
	if err := s.organizationRepository.UpdateOrganization(ctx, orgID, updates); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, orgID)
}

func toOrganizationResponse(org *entities.Organization) *domain.OrganizationResponse {
	resp := &domain.OrganizationResponse{
		ID:                 org.ID.String(),
		Name:               org.Name,
		Address:            org.Address,
		Latitude:           org.Latitude,
		Longitude:          org.Longitude,
		ContactPerson:      org.ContactPerson,
		Phone:              org.Phone,
		Email:              org.Email,
		Type:               org.Type,
		CSRInfo:            org.CSRInfo,
		VerificationDocURL: org.VerificationDocURL,
		Verified:           org.Verified,
		VerificationNotes:  org.VerificationNotes,
		VerifiedAt:         org.VerifiedAt,
		CreatedAt:          org.CreatedAt,
	}
	if org.VerifiedBy != nil {
		resp.VerifiedBy = org.VerifiedBy.String()
	}
	for _, member := range org.Users {
		resp.Members = append(resp.Members, &domain.UserResponse{
			ID:        member.ID.String(),
			Name:      member.Name,
			Email:     member.Email,
			Role:      member.Role,
			Verified:  member.Verified,
			CreatedAt: member.CreatedAt,
		})
	}
	return resp
}
