package claim

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/entities"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/utils/mailing"
)

// DecisionMailer notifies a receiver that their claim was decided. Best
// effort: delivery failures are logged, never surfaced to the caller.
type DecisionMailer func(toEmail, donationTitle, decision string) error

type (
	ClaimService interface {
		RequestClaim(ctx context.Context, caller domain.Identity, req domain.CreateClaimRequest) (*domain.ClaimResponse, error)
		GetClaims(ctx context.Context, caller domain.Identity, filter domain.ClaimFilter) ([]*domain.ClaimResponse, int64, error)
		GetClaimByID(ctx context.Context, caller domain.Identity, id string) (*domain.ClaimResponse, error)
		DecideClaim(ctx context.Context, caller domain.Identity, id string, decision string) (*domain.ClaimResponse, error)
		DeliverClaim(ctx context.Context, caller domain.Identity, id string) (*domain.ClaimResponse, error)
		DeleteClaim(ctx context.Context, caller domain.Identity, id string) error
	}

	claimService struct {
		claimRepository ClaimRepository
		mailer          DecisionMailer
	}
)

func NewClaimService(claimRepository ClaimRepository) ClaimService {
	return &claimService{
		claimRepository: claimRepository,
		mailer:          mailing.SendClaimDecisionMail,
	}
}

// NewClaimServiceWithMailer lets tests substitute the decision mailer.
func NewClaimServiceWithMailer(claimRepository ClaimRepository, mailer DecisionMailer) ClaimService {
	return &claimService{
		claimRepository: claimRepository,
		mailer:          mailer,
	}
}

func (s *claimService) RequestClaim(ctx context.Context, caller domain.Identity, req domain.CreateClaimRequest) (*domain.ClaimResponse, error) {
	if !caller.IsReceiver() {
		return nil, domain.ErrOnlyReceiversCanClaim
	}

	donationID, err := uuid.Parse(req.DonationID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	receiverID, err := uuid.Parse(caller.UserID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	claim := &entities.Claim{
		ID:         uuid.New(),
		DonationID: donationID,
		ReceiverID: receiverID,
		Status:     domain.ClaimStatusPending,
		Notes:      req.Notes,
	}
	if req.PickupTime != "" {
		pickupTime, err := time.Parse(time.RFC3339, req.PickupTime)
		if err != nil {
			return nil, err
		}
		if !pickupTime.After(time.Now()) {
			return nil, domain.ErrPickupTimeInPast
		}
		claim.PickupTime = &pickupTime
	}

	if err := s.claimRepository.CreatePendingClaim(ctx, claim); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	created, err := s.claimRepository.GetClaimByID(ctx, claim.ID.String())
	if err != nil {
		return nil, err
	}
	return toClaimResponse(created), nil
}

func (s *claimService) GetClaims(ctx context.Context, caller domain.Identity, filter domain.ClaimFilter) ([]*domain.ClaimResponse, int64, error) {
	var (
		claims []*entities.Claim
		count  int64
		err    error
	)

	// Scope by role: receivers see their own claims, donors see claims on
	// their own donations, admins see everything.
	switch {
	case caller.IsReceiver():
		claims, count, err = s.claimRepository.GetClaimsByReceiver(ctx, caller.UserID, filter)
	case caller.IsDonor():
		claims, count, err = s.claimRepository.GetClaimsByDonor(ctx, caller.UserID, filter)
	case caller.IsAdmin():
		claims, count, err = s.claimRepository.GetAllClaims(ctx, filter)
	default:
		return nil, 0, domain.ErrUserNotAllowed
	}
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.ClaimResponse, 0, len(claims))
	for _, claim := range claims {
		result = append(result, toClaimResponse(claim))
	}
	return result, count, nil
}

func (s *claimService) GetClaimByID(ctx context.Context, caller domain.Identity, id string) (*domain.ClaimResponse, error) {
	claim, err := s.claimRepository.GetClaimByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}
	if !canViewClaim(caller, claim) {
		return nil, domain.ErrUnauthorizedClaimAccess
	}
	return toClaimResponse(claim), nil
}

func (s *claimService) DecideClaim(ctx context.Context, caller domain.Identity, id string, decision string) (*domain.ClaimResponse, error) {
	claim, err := s.claimRepository.GetClaimByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}

	if !canDecideClaim(caller, claim) {
		return nil, domain.ErrUnauthorizedClaimAccess
	}

	switch decision {
	case domain.ClaimStatusApproved:
		err = s.claimRepository.ApproveClaim(ctx, id, claim.DonationID.String())
	case domain.ClaimStatusRejected:
		err = s.claimRepository.RejectClaim(ctx, id)
	default:
		return nil, domain.ErrInvalidClaimDecision
	}
	if err != nil {
		return nil, err
	}

	if claim.Receiver != nil && claim.Donation != nil {
		go s.notifyDecision(claim.Receiver.Email, claim.Donation.Title, decision)
	}

	updated, err := s.claimRepository.GetClaimByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toClaimResponse(updated), nil
}

func (s *claimService) DeliverClaim(ctx context.Context, caller domain.Identity, id string) (*domain.ClaimResponse, error) {
	claim, err := s.claimRepository.GetClaimByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}

	// Either party may report completion: the claim's receiver, the owning
	// donor, or an admin. First writer wins.
	if !canViewClaim(caller, claim) {
		return nil, domain.ErrUnauthorizedClaimAccess
	}

	if err := s.claimRepository.DeliverClaim(ctx, id, claim.DonationID.String()); err != nil {
		return nil, err
	}

	updated, err := s.claimRepository.GetClaimByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toClaimResponse(updated), nil
}

func (s *claimService) DeleteClaim(ctx context.Context, caller domain.Identity, id string) error {
	claim, err := s.claimRepository.GetClaimByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrClaimNotFound
		}
		return err
	}

	if claim.ReceiverID.String() != caller.UserID && !caller.IsAdmin() {
		return domain.ErrUnauthorizedClaimAccess
	}

	// Deleting an approved claim does not revert the donation status; the
	// donation stays claimed until the donor resolves it.
	return s.claimRepository.DeleteClaim(ctx, id)
}

func (s *claimService) notifyDecision(email, title, decision string) {
	if email == "" {
		return
	}
	if err := s.mailer(email, title, decision); err != nil {
		log.Printf("claim decision mail to %s failed: %v", email, err)
	}
}

// canDecideClaim gates pending->approved/rejected: only the donation's owning
// donor or an admin.
func canDecideClaim(caller domain.Identity, claim *entities.Claim) bool {
	if caller.IsAdmin() {
		return true
	}
	return claim.Donation != nil && claim.Donation.DonorID.String() == caller.UserID
}

func canViewClaim(caller domain.Identity, claim *entities.Claim) bool {
	if caller.IsAdmin() {
		return true
	}
	if claim.ReceiverID.String() == caller.UserID {
		return true
	}
	return claim.Donation != nil && claim.Donation.DonorID.String() == caller.UserID
}

func toClaimResponse(claim *entities.Claim) *domain.ClaimResponse {
	resp := &domain.ClaimResponse{
		ID:         claim.ID.String(),
		DonationID: claim.DonationID.String(),
		ReceiverID: claim.ReceiverID.String(),
		Status:     claim.Status,
		PickupTime: claim.PickupTime,
		Notes:      claim.Notes,
		CreatedAt:  claim.CreatedAt,
		UpdatedAt:  claim.UpdatedAt,
	}
	if claim.Donation != nil {
		resp.Donation = &domain.DonationResponse{
			ID:              claim.Donation.ID.String(),
			DonorID:         claim.Donation.DonorID.String(),
			Title:           claim.Donation.Title,
			Description:     claim.Donation.Description,
			Category:        claim.Donation.Category,
			Quantity:        claim.Donation.Quantity,
			Unit:            claim.Donation.Unit,
			ExpiryDate:      claim.Donation.ExpiryDate,
			PickupAddress:   claim.Donation.PickupAddress,
			PickupLatitude:  claim.Donation.PickupLatitude,
			PickupLongitude: claim.Donation.PickupLongitude,
			Status:          claim.Donation.Status,
			ImageURL:        claim.Donation.ImageURL,
			CreatedAt:       claim.Donation.CreatedAt,
			UpdatedAt:       claim.Donation.UpdatedAt,
		}
		if claim.Donation.Donor != nil {
			resp.Donation.Donor = &domain.UserResponse{
				ID:        claim.Donation.Donor.ID.String(),
				Name:      claim.Donation.Donor.Name,
				Email:     claim.Donation.Donor.Email,
				Role:      claim.Donation.Donor.Role,
				Verified:  claim.Donation.Donor.Verified,
				CreatedAt: claim.Donation.Donor.CreatedAt,
			}
		}
	}
	if claim.Receiver != nil {
		resp.Receiver = &domain.UserResponse{
			ID:        claim.Receiver.ID.String(),
			Name:      claim.Receiver.Name,
			Email:     claim.Receiver.Email,
			Role:      claim.Receiver.Role,
			Verified:  claim.Receiver.Verified,
			CreatedAt: claim.Receiver.CreatedAt,
		}
	}
	return resp
}
