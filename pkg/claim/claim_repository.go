package claim

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/entities"
)

type (
	ClaimRepository interface {
		// CreatePendingClaim inserts a pending claim after re-checking, under a
		// row lock on the donation, that the donation is still available and
		// that this receiver holds no other pending claim on it. This closes
		// the read-then-write race between concurrent requests.
		CreatePendingClaim(ctx context.Context, claim *entities.Claim) error
		GetClaimByID(ctx context.Context, id string) (*entities.Claim, error)
		GetClaimsByReceiver(ctx context.Context, receiverID string, filter domain.ClaimFilter) ([]*entities.Claim, int64, error)
		GetClaimsByDonor(ctx context.Context, donorID string, filter domain.ClaimFilter) ([]*entities.Claim, int64, error)
		GetAllClaims(ctx context.Context, filter domain.ClaimFilter) ([]*entities.Claim, int64, error)
		// ApproveClaim performs pending->approved and available->claimed in one
		// transaction; either both rows move or neither does.
		ApproveClaim(ctx context.Context, claimID, donationID string) error
		RejectClaim(ctx context.Context, claimID string) error
		// DeliverClaim performs approved->delivered and claimed->delivered in
		// one transaction. First writer wins under concurrent calls.
		DeliverClaim(ctx context.Context, claimID, donationID string) error
		DeleteClaim(ctx context.Context, id string) error
	}

	claimRepository struct {
		db *gorm.DB
	}
)

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) CreatePendingClaim(ctx context.Context, claim *entities.Claim) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var donation entities.Donation
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", claim.DonationID).
			First(&donation).Error; err != nil {
			return err
		}
		if donation.Status != domain.DonationStatusAvailable {
			return domain.ErrDonationNotAvailable
		}

		var pending int64
		if err := tx.Model(&entities.Claim{}).
			Where("donation_id = ? AND receiver_id = ? AND status = ?",
				claim.DonationID, claim.ReceiverID, domain.ClaimStatusPending).
			Count(&pending).Error; err != nil {
			return err
		}
		if pending > 0 {
			return domain.ErrDuplicatePendingClaim
		}

		return tx.Create(claim).Error
	})
}

func (r *claimRepository) GetClaimByID(ctx context.Context, id string) (*entities.Claim, error) {
	var claim entities.Claim
	if err := r.db.WithContext(ctx).
		Preload("Donation").
		Preload("Donation.Donor").
		Preload("Receiver").
		Where("id = ?", id).
		First(&claim).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) GetClaimsByReceiver(ctx context.Context, receiverID string, filter domain.ClaimFilter) ([]*entities.Claim, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.Claim{}).
		Where("receiver_id = ?", receiverID)
	return r.paginate(query, filter)
}

func (r *claimRepository) GetClaimsByDonor(ctx context.Context, donorID string, filter domain.ClaimFilter) ([]*entities.Claim, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.Claim{}).
		Joins("JOIN donations ON donations.id = claims.donation_id").
		Where("donations.donor_id = ?", donorID)
	return r.paginate(query, filter)
}

func (r *claimRepository) GetAllClaims(ctx context.Context, filter domain.ClaimFilter) ([]*entities.Claim, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Claim{})
	return r.paginate(query, filter)
}

func (r *claimRepository) paginate(query *gorm.DB, filter domain.ClaimFilter) ([]*entities.Claim, int64, error) {
	var claims []*entities.Claim
	var count int64
	offset := (filter.Page - 1) * filter.Limit

	if filter.Status != "" {
		query = query.Where("claims.status = ?", filter.Status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := query.
		Preload("Donation").
		Preload("Donation.Donor").
		Preload("Receiver").
		Order("claims.created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&claims).Error; err != nil {
		return nil, 0, err
	}
	return claims, count, nil
}

func (r *claimRepository) ApproveClaim(ctx context.Context, claimID, donationID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Claim{}).
			Where("id = ? AND status = ?", claimID, domain.ClaimStatusPending).
			Update("status", domain.ClaimStatusApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrClaimNotPending
		}

		res = tx.Model(&entities.Donation{}).
			Where("id = ? AND status = ?", donationID, domain.DonationStatusAvailable).
			Update("status", domain.DonationStatusClaimed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrDonationNotAvailable
		}
		return nil
	})
}

func (r *claimRepository) RejectClaim(ctx context.Context, claimID string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Claim{}).
		Where("id = ? AND status = ?", claimID, domain.ClaimStatusPending).
		Update("status", domain.ClaimStatusRejected)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrClaimNotPending
	}
	return nil
}

func (r *claimRepository) DeliverClaim(ctx context.Context, claimID, donationID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Claim{}).
			Where("id = ? AND status = ?", claimID, domain.ClaimStatusApproved).
			Update("status", domain.ClaimStatusDelivered)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrClaimNotApproved
		}

		res = tx.Model(&entities.Donation{}).
			Where("id = ? AND status = ?", donationID, domain.DonationStatusClaimed).
			Update("status", domain.DonationStatusDelivered)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrDonationNotClaimed
		}
		return nil
	})
}

func (r *claimRepository) DeleteClaim(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Claim{}).Error
}
