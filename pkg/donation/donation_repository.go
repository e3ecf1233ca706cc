package donation

import (
	"context"

	"gorm.io/gorm"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/entities"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		GetDonations(ctx context.Context, filter domain.DonationFilter) ([]*entities.Donation, int64, error)
		GetDonationsByDonor(ctx context.Context, donorID string, page, limit int) ([]*entities.Donation, int64, error)
		UpdateDonation(ctx context.Context, id string, updates map[string]interface{}) error
		DeleteDonation(ctx context.Context, id string) error
		GetNearbyDonations(ctx context.Context, lat, lng, radiusKm float64) ([]*domain.NearbyDonation, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Preload("Claims").
		Preload("Claims.Receiver").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetDonations(ctx context.Context, filter domain.DonationFilter) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64
	offset := (filter.Page - 1) * filter.Limit

	query := r.db.WithContext(ctx).Model(&entities.Donation{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category ILIKE ?", "%"+filter.Category+"%")
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := query.
		Preload("Donor").
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}
	return donations, count, nil
}

func (r *donationRepository) GetDonationsByDonor(ctx context.Context, donorID string, page, limit int) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("donor_id = ?", donorID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}
	return donations, count, nil
}

func (r *donationRepository) UpdateDonation(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *donationRepository) DeleteDonation(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Donation{}).Error
}

func (r *donationRepository) GetNearbyDonations(ctx context.Context, lat, lng, radiusKm float64) ([]*domain.NearbyDonation, error) {
	var donations []*domain.NearbyDonation

	// Haversine great-circle distance in km (acos form, R = 6371).
	query := `
		SELECT * FROM (
			SELECT id, donor_id, title, description, category, quantity, unit,
			       expiry_date, pickup_address, pickup_latitude, pickup_longitude,
			       status, image_url, created_at,
			       (6371 * acos(cos(radians(?))
			           * cos(radians(pickup_latitude))
			           * cos(radians(pickup_longitude) - radians(?))
			           + sin(radians(?))
			           * sin(radians(pickup_latitude)))) AS distance
			FROM donations
			WHERE status = 'available'
		) nearby
		WHERE distance <= ?
		ORDER BY distance ASC
	`

	if err := r.db.WithContext(ctx).
		Raw(query, lat, lng, lat, radiusKm).
		Scan(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}
