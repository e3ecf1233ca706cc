package campaign

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/entities"
)

type (
	CampaignRepository interface {
		CreateCampaign(ctx context.Context, campaign *entities.Campaign) error
		GetCampaignByID(ctx context.Context, id string) (*entities.Campaign, error)
		GetCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*entities.Campaign, int64, error)
		GetCampaignsByCreator(ctx context.Context, creatorID string, page, limit int) ([]*entities.Campaign, int64, error)
		UpdateCampaign(ctx context.Context, id string, updates map[string]interface{}) error
		DeleteCampaign(ctx context.Context, id string) error
		// RecordPledge appends a pledge and bumps raised_amount under a row lock
		// on the campaign. The campaign must be active and inside its window;
		// crossing the goal flips it to completed in the same transaction.
		RecordPledge(ctx context.Context, pledge *entities.CampaignPledge) error
		GetPledgeByReference(ctx context.Context, reference string) (*entities.CampaignPledge, error)
	}

	campaignRepository struct {
		db *gorm.DB
	}
)

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign *entities.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *campaignRepository) GetCampaignByID(ctx context.Context, id string) (*entities.Campaign, error) {
	var campaign entities.Campaign
	if err := r.db.WithContext(ctx).
		Preload("Creator").
		Where("id = ?", id).
		First(&campaign).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) GetCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*entities.Campaign, int64, error) {
	var campaigns []*entities.Campaign
	var count int64
	offset := (filter.Page - 1) * filter.Limit

	query := r.db.WithContext(ctx).Model(&entities.Campaign{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ActiveOnly {
		query = query.Where("status = ? AND deadline > ?", domain.CampaignStatusActive, time.Now())
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := query.
		Preload("Creator").
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&campaigns).Error; err != nil {
		return nil, 0, err
	}
	return campaigns, count, nil
}

func (r *campaignRepository) GetCampaignsByCreator(ctx context.Context, creatorID string, page, limit int) ([]*entities.Campaign, int64, error) {
	var campaigns []*entities.Campaign
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Campaign{}).
		Where("creator_id = ?", creatorID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&campaigns).Error; err != nil {
		return nil, 0, err
	}
	return campaigns, count, nil
}

func (r *campaignRepository) UpdateCampaign(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.Campaign{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *campaignRepository) DeleteCampaign(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Campaign{}).Error
}

func (r *campaignRepository) RecordPledge(ctx context.Context, pledge *entities.CampaignPledge) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var campaign entities.Campaign
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", pledge.CampaignID).
			First(&campaign).Error; err != nil {
			return err
		}

		now := time.Now()
		if campaign.Status != domain.CampaignStatusActive ||
			now.Before(campaign.StartDate) || now.After(campaign.Deadline) {
			return domain.ErrCampaignNotActive
		}

		if err := tx.Create(pledge).Error; err != nil {
			return err
		}

		raised := campaign.RaisedAmount + pledge.Amount
		updates := map[string]interface{}{"raised_amount": raised}
		if raised >= campaign.GoalAmount {
			updates["status"] = domain.CampaignStatusCompleted
		}
		return tx.Model(&entities.Campaign{}).
			Where("id = ?", campaign.ID).
			Updates(updates).Error
	})
}

func (r *campaignRepository) GetPledgeByReference(ctx context.Context, reference string) (*entities.CampaignPledge, error) {
	var pledge entities.CampaignPledge
	if err := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		First(&pledge).Error; err != nil {
		return nil, err
	}
	return &pledge, nil
}
