package campaign

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/entities"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/payment"
)

// orderIDPrefix marks checkout orders issued by this service. The campaign
// and payer IDs ride inside the order ID so the webhook can settle without
// extra state: FS-<campaign uuid>-<user uuid>-<unix time>.
const orderIDPrefix = "FS-"

type (
	CampaignService interface {
		CreateCampaign(ctx context.Context, caller domain.Identity, req domain.CreateCampaignRequest) (*domain.CampaignResponse, error)
		GetCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*domain.CampaignResponse, int64, error)
		GetCampaignByID(ctx context.Context, id string) (*domain.CampaignResponse, error)
		GetMyCampaigns(ctx context.Context, caller domain.Identity, page, limit int) ([]*domain.CampaignResponse, int64, error)
		UpdateCampaign(ctx context.Context, caller domain.Identity, id string, req domain.UpdateCampaignRequest) (*domain.CampaignResponse, error)
		DeleteCampaign(ctx context.Context, caller domain.Identity, id string) error
		Pledge(ctx context.Context, caller domain.Identity, id string, req domain.PledgeRequest) (*domain.CampaignResponse, error)
		Checkout(ctx context.Context, caller domain.Identity, id string, req domain.CheckoutRequest) (*domain.CheckoutResponse, error)
		// HandlePaymentNotification settles a gateway webhook. The status is
		// re-checked against the gateway, never trusted from the payload, and
		// settled orders are applied to the ledger exactly once.
		HandlePaymentNotification(ctx context.Context, orderID string) error
	}

	campaignService struct {
		campaignRepository CampaignRepository
		gateway            payment.PaymentGateway
	}
)

func NewCampaignService(campaignRepository CampaignRepository, gateway payment.PaymentGateway) CampaignService {
	return &campaignService{
		campaignRepository: campaignRepository,
		gateway:            gateway,
	}
}

func (s *campaignService) CreateCampaign(ctx context.Context, caller domain.Identity, req domain.CreateCampaignRequest) (*domain.CampaignResponse, error) {
	creatorID, err := uuid.Parse(caller.UserID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	deadline, err := parseDate(req.Deadline)
	if err != nil {
		return nil, err
	}
	if !deadline.After(startDate) {
		return nil, domain.ErrDeadlineBeforeStart
	}

	status := req.Status
	if status == "" {
		status = domain.CampaignStatusDraft
	}

	campaign := &entities.Campaign{
		ID:          uuid.New(),
		CreatorID:   creatorID,
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
		StartDate:   startDate,
		Deadline:    deadline,
		Status:      status,
		ImageURL:    req.ImageURL,
	}

	if err := s.campaignRepository.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

func (s *campaignService) GetCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]*domain.CampaignResponse, int64, error) {
	campaigns, count, err := s.campaignRepository.GetCampaigns(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return toCampaignResponses(campaigns), count, nil
}

func (s *campaignService) GetCampaignByID(ctx context.Context, id string) (*domain.CampaignResponse, error) {
	campaign, err := s.campaignRepository.GetCampaignByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

func (s *campaignService) GetMyCampaigns(ctx context.Context, caller domain.Identity, page, limit int) ([]*domain.CampaignResponse, int64, error) {
	campaigns, count, err := s.campaignRepository.GetCampaignsByCreator(ctx, caller.UserID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toCampaignResponses(campaigns), count, nil
}

func (s *campaignService) UpdateCampaign(ctx context.Context, caller domain.Identity, id string, req domain.UpdateCampaignRequest) (*domain.CampaignResponse, error) {
	campaign, err := s.campaignRepository.GetCampaignByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}

	if campaign.CreatorID.String() != caller.UserID && !caller.IsAdmin() {
		return nil, domain.ErrUnauthorizedCampaignAccess
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.GoalAmount != nil {
		updates["goal_amount"] = *req.GoalAmount
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	startDate := campaign.StartDate
	deadline := campaign.Deadline
	if req.StartDate != nil {
		startDate, err = parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		updates["start_date"] = startDate
	}
	if req.Deadline != nil {
		deadline, err = parseDate(*req.Deadline)
		if err != nil {
			return nil, err
		}
		updates["deadline"] = deadline
	}
	if !deadline.After(startDate) {
		return nil, domain.ErrDeadlineBeforeStart
	}

	if len(updates) > 0 {
		if err := s.campaignRepository.UpdateCampaign(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.GetCampaignByID(ctx, id)
}

func (s *campaignService) DeleteCampaign(ctx context.Context, caller domain.Identity, id string) error {
	campaign, err := s.campaignRepository.GetCampaignByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCampaignNotFound
		}
		return err
	}

	if campaign.CreatorID.String() != caller.UserID && !caller.IsAdmin() {
		return domain.ErrUnauthorizedCampaignAccess
	}
	return s.campaignRepository.DeleteCampaign(ctx, id)
}

func (s *campaignService) Pledge(ctx context.Context, caller domain.Identity, id string, req domain.PledgeRequest) (*domain.CampaignResponse, error) {
	campaignID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	userID, err := uuid.Parse(caller.UserID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	pledge := &entities.CampaignPledge{
		ID:         uuid.New(),
		CampaignID: campaignID,
		UserID:     userID,
		Amount:     req.Amount,
		Source:     "direct",
	}

	if err := s.campaignRepository.RecordPledge(ctx, pledge); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}
	return s.GetCampaignByID(ctx, id)
}

func (s *campaignService) Checkout(ctx context.Context, caller domain.Identity, id string, req domain.CheckoutRequest) (*domain.CheckoutResponse, error) {
	campaign, err := s.campaignRepository.GetCampaignByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}
	if campaign.Status != domain.CampaignStatusActive {
		return nil, domain.ErrCampaignNotActive
	}

	orderID := fmt.Sprintf("%s%s-%s-%d", orderIDPrefix, campaign.ID, caller.UserID, time.Now().Unix())
	invoiceURL, err := s.gateway.CreateTransaction(orderID, int64(req.Amount), req.Email)
	if err != nil {
		return nil, err
	}

	return &domain.CheckoutResponse{
		OrderID:    orderID,
		InvoiceURL: invoiceURL,
	}, nil
}

func (s *campaignService) HandlePaymentNotification(ctx context.Context, orderID string) error {
	campaignID, userID, err := parseOrderID(orderID)
	if err != nil {
		return err
	}

	// Already settled orders are acknowledged without touching the ledger.
	if _, err := s.campaignRepository.GetPledgeByReference(ctx, orderID); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	status, err := s.gateway.CheckTransaction(orderID)
	if err != nil {
		return err
	}
	if status.Status != payment.StatusSettlement && status.Status != payment.StatusCapture {
		return nil
	}

	pledge := &entities.CampaignPledge{
		ID:         uuid.New(),
		CampaignID: campaignID,
		UserID:     userID,
		Amount:     status.GrossAmount,
		Source:     "midtrans",
		Reference:  orderID,
	}
	if err := s.campaignRepository.RecordPledge(ctx, pledge); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCampaignNotFound
		}
		return err
	}
	return nil
}

// parseOrderID recovers the campaign and payer from a checkout order ID.
// UUID strings are fixed width, so the fields sit at known offsets.
func parseOrderID(orderID string) (campaignID, userID uuid.UUID, err error) {
	rest, ok := strings.CutPrefix(orderID, orderIDPrefix)
	if !ok || len(rest) < 73 {
		return uuid.Nil, uuid.Nil, domain.ErrPaymentFailed
	}
	campaignID, err = uuid.Parse(rest[:36])
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrPaymentFailed
	}
	userID, err = uuid.Parse(rest[37:73])
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrPaymentFailed
	}
	return campaignID, userID, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func toCampaignResponses(campaigns []*entities.Campaign) []*domain.CampaignResponse {
	result := make([]*domain.CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		result = append(result, toCampaignResponse(campaign))
	}
	return result
}

func toCampaignResponse(campaign *entities.Campaign) *domain.CampaignResponse {
	resp := &domain.CampaignResponse{
		ID:           campaign.ID.String(),
		CreatorID:    campaign.CreatorID.String(),
		Title:        campaign.Title,
		Description:  campaign.Description,
		GoalAmount:   campaign.GoalAmount,
		RaisedAmount: campaign.RaisedAmount,
		StartDate:    campaign.StartDate,
		Deadline:     campaign.Deadline,
		Status:       campaign.Status,
		ImageURL:     campaign.ImageURL,
		CreatedAt:    campaign.CreatedAt,
	}
	if campaign.Creator != nil {
		resp.Creator = &domain.UserResponse{
			ID:        campaign.Creator.ID.String(),
			Name:      campaign.Creator.Name,
			Email:     campaign.Creator.Email,
			Role:      campaign.Creator.Role,
			Verified:  campaign.Creator.Verified,
			CreatedAt: campaign.Creator.CreatedAt,
		}
	}
	return resp
}
