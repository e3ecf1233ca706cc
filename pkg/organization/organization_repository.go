package organization

import (
	"context"

	"gorm.io/gorm"

	"github.com/IsaacJM03/Year-3-Capstone-Project/entities"
)

type (
	OrganizationRepository interface {
		CreateOrganization(ctx context.Context, org *entities.Organization) error
		GetOrganizationByID(ctx context.Context, id string) (*entities.Organization, error)
		GetOrganizations(ctx context.Context, orgType string, verified *bool, page, limit int) ([]*entities.Organization, int64, error)
		UpdateOrganization(ctx context.Context, id string, updates map[string]interface{}) error
	}

	organizationRepository struct {
		db *gorm.DB
	}
)

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) CreateOrganization(ctx context.Context, org *entities.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *organizationRepository) GetOrganizationByID(ctx context.Context, id string) (*entities.Organization, error) {
	var org entities.Organization
	if err := r.db.WithContext(ctx).
		Preload("Users").
		Where("id = ?", id).
		First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) GetOrganizations(ctx context.Context, orgType string, verified *bool, page, limit int) ([]*entities.Organization, int64, error) {
	var orgs []*entities.Organization
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Organization{})
	if orgType != "" {
		query = query.Where("type = ?", orgType)
	}
	if verified != nil {
		query = query.Where("verified = ?", *verified)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orgs).Error; err != nil {
		return nil, 0, err
	}
	return orgs, count, nil
}

func (r *organizationRepository) UpdateOrganization(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.Organization{}).
		Where("id = ?", id).
		Updates(updates).Error
}
