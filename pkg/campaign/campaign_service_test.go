package campaign

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/entities"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/payment"
)

type fakeCampaignRepository struct {
	campaigns map[uuid.UUID]*entities.Campaign
	pledges   map[uuid.UUID]*entities.CampaignPledge
}

func newFakeCampaignRepository() *fakeCampaignRepository {
	return &fakeCampaignRepository{
		campaigns: map[uuid.UUID]*entities.Campaign{},
		pledges:   map[uuid.UUID]*entities.CampaignPledge{},
	}
}

func (f *fakeCampaignRepository) addCampaign(creatorID uuid.UUID, goal float64, status string) *entities.Campaign {
	campaign := &entities.Campaign{
		ID:         uuid.New(),
		CreatorID:  creatorID,
		Title:      "school lunches",
		GoalAmount: goal,
		StartDate:  time.Now().Add(-time.Hour),
		Deadline:   time.Now().Add(24 * time.Hour),
		Status:     status,
	}
	f.campaigns[campaign.ID] = campaign
	return campaign
}

func (f *fakeCampaignRepository) CreateCampaign(_ context.Context, campaign *entities.Campaign) error {
	f.campaigns[campaign.ID] = campaign
	return nil
}

func (f *fakeCampaignRepository) GetCampaignByID(_ context.Context, id string) (*entities.Campaign, error) {
	campaignID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	campaign, ok := f.campaigns[campaignID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return campaign, nil
}

func (f *fakeCampaignRepository) GetCampaigns(_ context.Context, filter domain.CampaignFilter) ([]*entities.Campaign, int64, error) {
	var result []*entities.Campaign
	for _, campaign := range f.campaigns {
		if filter.Status != "" && campaign.Status != filter.Status {
			continue
		}
		if filter.ActiveOnly && campaign.Status != domain.CampaignStatusActive {
			continue
		}
		result = append(result, campaign)
	}
	return result, int64(len(result)), nil
}

func (f *fakeCampaignRepository) GetCampaignsByCreator(_ context.Context, creatorID string, _, _ int) ([]*entities.Campaign, int64, error) {
	var result []*entities.Campaign
	for _, campaign := range f.campaigns {
		if campaign.CreatorID.String() == creatorID {
			result = append(result, campaign)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeCampaignRepository) UpdateCampaign(_ context.Context, id string, updates map[string]interface{}) error {
	campaign := f.campaigns[uuid.MustParse(id)]
	if campaign == nil {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["title"].(string); ok {
		campaign.Title = v
	}
	if v, ok := updates["goal_amount"].(float64); ok {
		campaign.GoalAmount = v
	}
	if v, ok := updates["status"].(string); ok {
		campaign.Status = v
	}
	if v, ok := updates["start_date"].(time.Time); ok {
		campaign.StartDate = v
	}
	if v, ok := updates["deadline"].(time.Time); ok {
		campaign.Deadline = v
	}
	return nil
}

func (f *fakeCampaignRepository) DeleteCampaign(_ context.Context, id string) error {
	delete(f.campaigns, uuid.MustParse(id))
	return nil
}

func (f *fakeCampaignRepository) RecordPledge(_ context.Context, pledge *entities.CampaignPledge) error {
	campaign, ok := f.campaigns[pledge.CampaignID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	if campaign.Status != domain.CampaignStatusActive || now.Before(campaign.StartDate) || now.After(campaign.Deadline) {
		return domain.ErrCampaignNotActive
	}
	f.pledges[pledge.ID] = pledge
	campaign.RaisedAmount += pledge.Amount
	if campaign.RaisedAmount >= campaign.GoalAmount {
		campaign.Status = domain.CampaignStatusCompleted
	}
	return nil
}

func (f *fakeCampaignRepository) GetPledgeByReference(_ context.Context, reference string) (*entities.CampaignPledge, error) {
	for _, pledge := range f.pledges {
		if pledge.Reference == reference {
			return pledge, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeGateway struct {
	status      string
	grossAmount float64
	created     []string
	checks      int
}

func (g *fakeGateway) CreateTransaction(orderID string, _ int64, _ string) (string, error) {
	g.created = append(g.created, orderID)
	return "https://pay.example.com/" + orderID, nil
}

func (g *fakeGateway) CheckTransaction(orderID string) (*payment.TransactionStatus, error) {
	g.checks++
	return &payment.TransactionStatus{
		OrderID:     orderID,
		Status:      g.status,
		GrossAmount: g.grossAmount,
	}, nil
}

func userIdentity() domain.Identity {
	return domain.Identity{UserID: uuid.NewString(), Role: domain.RoleDonor}
}

func TestCreateCampaignRejectsBadWindow(t *testing.T) {
	svc := NewCampaignService(newFakeCampaignRepository(), &fakeGateway{})

	_, err := svc.CreateCampaign(context.Background(), userIdentity(), domain.CreateCampaignRequest{
		Title:       "winter drive",
		Description: "meals",
		GoalAmount:  1000,
		StartDate:   "2026-02-01",
		Deadline:    "2026-01-01",
	})
	assert.ErrorIs(t, err, domain.ErrDeadlineBeforeStart)
}

func TestCreateCampaignDefaultsToDraft(t *testing.T) {
	svc := NewCampaignService(newFakeCampaignRepository(), &fakeGateway{})

	res, err := svc.CreateCampaign(context.Background(), userIdentity(), domain.CreateCampaignRequest{
		Title:       "winter drive",
		Description: "meals",
		GoalAmount:  1000,
		StartDate:   "2026-01-01",
		Deadline:    "2026-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusDraft, res.Status)
}

func TestPledgeAccumulatesAndCompletesAtGoal(t *testing.T) {
	repo := newFakeCampaignRepository()
	campaign := repo.addCampaign(uuid.New(), 100, domain.CampaignStatusActive)
	svc := NewCampaignService(repo, &fakeGateway{})

	res, err := svc.Pledge(context.Background(), userIdentity(), campaign.ID.String(), domain.PledgeRequest{Amount: 60})
	require.NoError(t, err)
	assert.Equal(t, 60.0, res.RaisedAmount)
	assert.Equal(t, domain.CampaignStatusActive, res.Status)

	res, err = svc.Pledge(context.Background(), userIdentity(), campaign.ID.String(), domain.PledgeRequest{Amount: 40})
	require.NoError(t, err)
	assert.Equal(t, 100.0, res.RaisedAmount)
	assert.Equal(t, domain.CampaignStatusCompleted, res.Status)
}

func TestPledgeOnInactiveCampaignConflicts(t *testing.T) {
	repo := newFakeCampaignRepository()
	campaign := repo.addCampaign(uuid.New(), 100, domain.CampaignStatusDraft)
	svc := NewCampaignService(repo, &fakeGateway{})

	_, err := svc.Pledge(context.Background(), userIdentity(), campaign.ID.String(), domain.PledgeRequest{Amount: 10})
	assert.ErrorIs(t, err, domain.ErrCampaignNotActive)
}

func TestCompletedCampaignRefusesFurtherPledges(t *testing.T) {
	repo := newFakeCampaignRepository()
	campaign := repo.addCampaign(uuid.New(), 50, domain.CampaignStatusActive)
	svc := NewCampaignService(repo, &fakeGateway{})

	_, err := svc.Pledge(context.Background(), userIdentity(), campaign.ID.String(), domain.PledgeRequest{Amount: 50})
	require.NoError(t, err)

	_, err = svc.Pledge(context.Background(), userIdentity(), campaign.ID.String(), domain.PledgeRequest{Amount: 1})
	assert.ErrorIs(t, err, domain.ErrCampaignNotActive)
}

func TestUpdateCampaignOnlyCreatorOrAdmin(t *testing.T) {
	repo := newFakeCampaignRepository()
	campaign := repo.addCampaign(uuid.New(), 100, domain.CampaignStatusDraft)
	svc := NewCampaignService(repo, &fakeGateway{})

	title := "renamed"
	_, err := svc.UpdateCampaign(context.Background(), userIdentity(), campaign.ID.String(), domain.UpdateCampaignRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrUnauthorizedCampaignAccess)

	admin := domain.Identity{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	res, err := svc.UpdateCampaign(context.Background(), admin, campaign.ID.String(), domain.UpdateCampaignRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed", res.Title)
}

func TestCheckoutRequiresActiveCampaign(t *testing.T) {
	repo := newFakeCampaignRepository()
	campaign := repo.addCampaign(uuid.New(), 100, domain.CampaignStatusDraft)
	svc := NewCampaignService(repo, &fakeGateway{})

	_, err := svc.Checkout(context.Background(), userIdentity(), campaign.ID.String(), domain.CheckoutRequest{
		Amount: 25,
		Email:  "payer@example.com",
	})
	assert.ErrorIs(t, err, domain.ErrCampaignNotActive)
}

func TestCheckoutAndWebhookSettlement(t *testing.T) {
	repo := newFakeCampaignRepository()
	campaign := repo.addCampaign(uuid.New(), 100, domain.CampaignStatusActive)
	gateway := &fakeGateway{status: payment.StatusSettlement, grossAmount: 25}
	svc := NewCampaignService(repo, gateway)
	payer := userIdentity()

	checkout, err := svc.Checkout(context.Background(), payer, campaign.ID.String(), domain.CheckoutRequest{
		Amount: 25,
		Email:  "payer@example.com",
	})
	require.NoError(t, err)
	assert.Contains(t, checkout.InvoiceURL, checkout.OrderID)

	require.NoError(t, svc.HandlePaymentNotification(context.Background(), checkout.OrderID))
	assert.Equal(t, 25.0, campaign.RaisedAmount)

	// Replayed notification must not double-apply.
	require.NoError(t, svc.HandlePaymentNotification(context.Background(), checkout.OrderID))
	assert.Equal(t, 25.0, campaign.RaisedAmount)
	assert.Equal(t, 1, gateway.checks)
}

func TestWebhookIgnoresUnsettledTransactions(t *testing.T) {
	repo := newFakeCampaignRepository()
	campaign := repo.addCampaign(uuid.New(), 100, domain.CampaignStatusActive)
	gateway := &fakeGateway{status: payment.StatusPending, grossAmount: 25}
	svc := NewCampaignService(repo, gateway)
	payer := userIdentity()

	checkout, err := svc.Checkout(context.Background(), payer, campaign.ID.String(), domain.CheckoutRequest{
		Amount: 25,
		Email:  "payer@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.HandlePaymentNotification(context.Background(), checkout.OrderID))
	assert.Equal(t, 0.0, campaign.RaisedAmount)
}

func TestWebhookRejectsForeignOrderIDs(t *testing.T) {
	svc := NewCampaignService(newFakeCampaignRepository(), &fakeGateway{})

	err := svc.HandlePaymentNotification(context.Background(), "someone-elses-order-123")
	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
}

func TestParseOrderIDRoundTrip(t *testing.T) {
	campaignID := uuid.New()
	userID := uuid.New()
	orderID := fmt.Sprintf("%s%s-%s-%d", orderIDPrefix, campaignID, userID, time.Now().Unix())

	gotCampaign, gotUser, err := parseOrderID(orderID)
	require.NoError(t, err)
	assert.Equal(t, campaignID, gotCampaign)
	assert.Equal(t, userID, gotUser)
}
