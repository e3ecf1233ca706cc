package report

import (
	"context"

	"gorm.io/gorm"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/entities"
)

type (
	ReportRepository interface {
		CountDonations(ctx context.Context, status string) (int64, error)
		SumDeliveredQuantity(ctx context.Context) (float64, error)
		CountDistinctDonors(ctx context.Context) (int64, error)
		CountDistinctReceivers(ctx context.Context) (int64, error)
		CountClaims(ctx context.Context, status string) (int64, error)
		CountUsersByRole(ctx context.Context) (map[string]int64, error)
		CountDonationsByStatus(ctx context.Context) (map[string]int64, error)
		CountClaimsByStatus(ctx context.Context) (map[string]int64, error)
		CountCampaignsByStatus(ctx context.Context) (map[string]int64, error)
		DonationsPerCategory(ctx context.Context) ([]*domain.CategoryCount, error)
		TopDonors(ctx context.Context, limit int) ([]*domain.TopUser, error)
		TopReceivers(ctx context.Context, limit int) ([]*domain.TopUser, error)
		DonationsOverTime(ctx context.Context, period string, buckets int) ([]*domain.PeriodCount, error)
		DonorBreakdown(ctx context.Context, donorID string) (map[string]int64, []*domain.RecentDonation, error)
		ReceiverBreakdown(ctx context.Context, receiverID string) (map[string]int64, []*domain.RecentClaim, error)
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CountDonations(ctx context.Context, status string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Donation{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	return count, query.Count(&count).Error
}

func (r *reportRepository) SumDeliveredQuantity(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("status = ?", domain.DonationStatusDelivered).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

func (r *reportRepository) CountDistinctDonors(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Distinct("donor_id").
		Count(&count).Error
	return count, err
}

func (r *reportRepository) CountDistinctReceivers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Claim{}).
		Distinct("receiver_id").
		Count(&count).Error
	return count, err
}

func (r *reportRepository) CountClaims(ctx context.Context, status string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Claim{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	return count, query.Count(&count).Error
}

type keyCount struct {
	Key   string
	Count int64
}

func (r *reportRepository) groupCount(ctx context.Context, model interface{}, column string) (map[string]int64, error) {
	var rows []keyCount
	if err := r.db.WithContext(ctx).
		Model(model).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Count
	}
	return result, nil
}

func (r *reportRepository) CountUsersByRole(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, &entities.User{}, "role")
}

func (r *reportRepository) CountDonationsByStatus(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, &entities.Donation{}, "status")
}

func (r *reportRepository) CountClaimsByStatus(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, &entities.Claim{}, "status")
}

func (r *reportRepository) CountCampaignsByStatus(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, &entities.Campaign{}, "status")
}

func (r *reportRepository) DonationsPerCategory(ctx context.Context) ([]*domain.CategoryCount, error) {
	var rows []*domain.CategoryCount
	err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Select("category, COUNT(*) AS count, COALESCE(SUM(quantity), 0) AS total_quantity").
		Group("category").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) TopDonors(ctx context.Context, limit int) ([]*domain.TopUser, error) {
	var rows []*domain.TopUser
	err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Select("users.id, users.name, users.email, COUNT(donations.id) AS total").
		Joins("JOIN donations ON donations.donor_id = users.id").
		Group("users.id, users.name, users.email").
		Order("total DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) TopReceivers(ctx context.Context, limit int) ([]*domain.TopUser, error) {
	var rows []*domain.TopUser
	err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Select("users.id, users.name, users.email, COUNT(claims.id) AS total").
		Joins("JOIN claims ON claims.receiver_id = users.id").
		Where("claims.status = ?", domain.ClaimStatusDelivered).
		Group("users.id, users.name, users.email").
		Order("total DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) DonationsOverTime(ctx context.Context, period string, buckets int) ([]*domain.PeriodCount, error) {
	var format string
	switch period {
	case "day":
		format = "YYYY-MM-DD"
	case "week":
		format = "IYYY-IW"
	case "year":
		format = "YYYY"
	default:
		format = "YYYY-MM"
	}

	var rows []*domain.PeriodCount
	err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Select("to_char(created_at, ?) AS period, COUNT(*) AS count", format).
		Group("period").
		Order("period DESC").
		Limit(buckets).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// Reverse into chronological order for charting.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

func (r *reportRepository) DonorBreakdown(ctx context.Context, donorID string) (map[string]int64, []*domain.RecentDonation, error) {
	var statuses []keyCount
	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Select("status AS key, COUNT(*) AS count").
		Where("donor_id = ?", donorID).
		Group("status").
		Scan(&statuses).Error; err != nil {
		return nil, nil, err
	}

	counts := make(map[string]int64, len(statuses))
	for _, row := range statuses {
		counts[row.Key] = row.Count
	}

	var recent []*domain.RecentDonation
	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Select("id, title, status, created_at").
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Limit(5).
		Scan(&recent).Error; err != nil {
		return nil, nil, err
	}
	return counts, recent, nil
}

func (r *reportRepository) ReceiverBreakdown(ctx context.Context, receiverID string) (map[string]int64, []*domain.RecentClaim, error) {
	var statuses []keyCount
	if err := r.db.WithContext(ctx).
		Model(&entities.Claim{}).
		Select("status AS key, COUNT(*) AS count").
		Where("receiver_id = ?", receiverID).
		Group("status").
		Scan(&statuses).Error; err != nil {
		return nil, nil, err
	}

	counts := make(map[string]int64, len(statuses))
	for _, row := range statuses {
		counts[row.Key] = row.Count
	}

	var recent []*domain.RecentClaim
	if err := r.db.WithContext(ctx).
		Model(&entities.Claim{}).
		Select("id, donation_id, status, created_at").
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Limit(5).
		Scan(&recent).Error; err != nil {
		return nil, nil, err
	}
	return counts, recent, nil
}
