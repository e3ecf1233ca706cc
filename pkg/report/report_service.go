package report

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/user"
)

const (
	defaultTopLimit    = 10
	defaultTimeBuckets = 12
)

type (
	ReportService interface {
		GetSummary(ctx context.Context) (*domain.Summary, error)
		GetStatistics(ctx context.Context) (*domain.Statistics, error)
		GetDonationsPerCategory(ctx context.Context) ([]*domain.CategoryCount, error)
		GetTopDonors(ctx context.Context, limit int) ([]*domain.TopUser, error)
		GetTopReceivers(ctx context.Context, limit int) ([]*domain.TopUser, error)
		GetDonationsOverTime(ctx context.Context, period string) ([]*domain.PeriodCount, error)
		GetUserReport(ctx context.Context, caller domain.Identity) (*domain.UserReport, error)
	}

	reportService struct {
		reportRepository ReportRepository
		userRepository   user.UserRepository
	}
)

func NewReportService(reportRepository ReportRepository, userRepository user.UserRepository) ReportService {
	return &reportService{
		reportRepository: reportRepository,
		userRepository:   userRepository,
	}
}

func (s *reportService) GetSummary(ctx context.Context) (*domain.Summary, error) {
	total, err := s.reportRepository.CountDonations(ctx, "")
	if err != nil {
		return nil, err
	}
	delivered, err := s.reportRepository.CountDonations(ctx, domain.DonationStatusDelivered)
	if err != nil {
		return nil, err
	}
	foodSaved, err := s.reportRepository.SumDeliveredQuantity(ctx)
	if err != nil {
		return nil, err
	}
	donors, err := s.reportRepository.CountDistinctDonors(ctx)
	if err != nil {
		return nil, err
	}
	receivers, err := s.reportRepository.CountDistinctReceivers(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.reportRepository.CountClaims(ctx, domain.ClaimStatusPending)
	if err != nil {
		return nil, err
	}

	return &domain.Summary{
		TotalDonations:     total,
		DeliveredDonations: delivered,
		FoodSavedUnits:     foodSaved,
		ActiveDonors:       donors,
		ActiveReceivers:    receivers,
		PendingClaims:      pending,
	}, nil
}

func (s *reportService) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	users, err := s.reportRepository.CountUsersByRole(ctx)
	if err != nil {
		return nil, err
	}
	donations, err := s.reportRepository.CountDonationsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	claims, err := s.reportRepository.CountClaimsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	campaigns, err := s.reportRepository.CountCampaignsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Statistics{
		Users:     users,
		Donations: donations,
		Claims:    claims,
		Campaigns: campaigns,
	}, nil
}

func (s *reportService) GetDonationsPerCategory(ctx context.Context) ([]*domain.CategoryCount, error) {
	return s.reportRepository.DonationsPerCategory(ctx)
}

func (s *reportService) GetTopDonors(ctx context.Context, limit int) ([]*domain.TopUser, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.reportRepository.TopDonors(ctx, limit)
}

func (s *reportService) GetTopReceivers(ctx context.Context, limit int) ([]*domain.TopUser, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.reportRepository.TopReceivers(ctx, limit)
}

func (s *reportService) GetDonationsOverTime(ctx context.Context, period string) ([]*domain.PeriodCount, error) {
	return s.reportRepository.DonationsOverTime(ctx, period, defaultTimeBuckets)
}

func (s *reportService) GetUserReport(ctx context.Context, caller domain.Identity) (*domain.UserReport, error) {
	account, err := s.userRepository.GetUserByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	report := &domain.UserReport{
		User: domain.UserResponse{
			ID:        account.ID.String(),
			Name:      account.Name,
			Email:     account.Email,
			Role:      account.Role,
			Verified:  account.Verified,
			CreatedAt: account.CreatedAt,
		},
	}

	switch {
	case caller.IsDonor():
		counts, recent, err := s.reportRepository.DonorBreakdown(ctx, caller.UserID)
		if err != nil {
			return nil, err
		}
		report.Donations = counts
		report.RecentDonations = recent
	case caller.IsReceiver():
		counts, recent, err := s.reportRepository.ReceiverBreakdown(ctx, caller.UserID)
		if err != nil {
			return nil, err
		}
		report.Claims = counts
		report.RecentClaims = recent
	case caller.IsAdmin():
		donations, err := s.reportRepository.CountDonationsByStatus(ctx)
		if err != nil {
			return nil, err
		}
		claims, err := s.reportRepository.CountClaimsByStatus(ctx)
		if err != nil {
			return nil, err
		}
		campaigns, err := s.reportRepository.CountCampaignsByStatus(ctx)
		if err != nil {
			return nil, err
		}
		report.Donations = donations
		report.Claims = claims
		report.Campaigns = campaigns
	}
	return report, nil
}
