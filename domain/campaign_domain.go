package domain

import (
	"errors"
	"time"
)

const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
	CampaignStatusExpired   = "expired"
)

var (
	MessageSuccessCreateCampaign   = "campaign created successfully"
	MessageSuccessGetCampaigns     = "campaigns retrieved successfully"
	MessageSuccessGetCampaign      = "campaign retrieved successfully"
	MessageSuccessUpdateCampaign   = "campaign updated successfully"
	MessageSuccessDeleteCampaign   = "campaign deleted successfully"
	MessageSuccessPledge           = "donation to campaign successful"
	MessageSuccessCreateCheckout   = "campaign checkout created successfully"
	MessageSuccessProcessedWebhook = "payment notification processed"

	MessageFailedCreateCampaign = "failed to create campaign"
	MessageFailedGetCampaigns   = "failed to retrieve campaigns"
	MessageFailedUpdateCampaign = "failed to update campaign"
	MessageFailedDeleteCampaign = "failed to delete campaign"
	MessageFailedPledge         = "failed to donate to campaign"
	MessageFailedCreateCheckout = "failed to create campaign checkout"
	MessageFailedProcessWebhook = "failed to process payment notification"

	ErrCampaignNotFound           = errors.New("campaign not found")
	ErrCampaignNotActive          = errors.New("campaign is not active")
	ErrUnauthorizedCampaignAccess = errors.New("unauthorized access to campaign")
	ErrDeadlineBeforeStart        = errors.New("deadline must be after start date")
	ErrPaymentFailed              = errors.New("payment processing failed")
)

type (
	CreateCampaignRequest struct {
		Title       string  `json:"title" validate:"required,max=255"`
		Description string  `json:"description" validate:"required"`
		GoalAmount  float64 `json:"goal_amount" validate:"required,gt=0"`
		StartDate   string  `json:"start_date" validate:"required"`
		Deadline    string  `json:"deadline" validate:"required"`
		Status      string  `json:"status" validate:"omitempty,oneof=draft active"`
		ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	}

	// Completed is excluded: it is reached only through the pledge ledger.
	UpdateCampaignRequest struct {
		Title       *string  `json:"title" validate:"omitempty,max=255"`
		Description *string  `json:"description" validate:"omitempty"`
		GoalAmount  *float64 `json:"goal_amount" validate:"omitempty,gt=0"`
		StartDate   *string  `json:"start_date" validate:"omitempty"`
		Deadline    *string  `json:"deadline" validate:"omitempty"`
		Status      *string  `json:"status" validate:"omitempty,oneof=draft active cancelled"`
		ImageURL    *string  `json:"image_url" validate:"omitempty,url"`
	}

	PledgeRequest struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
	}

	CheckoutRequest struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
		Email  string  `json:"email" validate:"required,email"`
	}

	CheckoutResponse struct {
		OrderID    string `json:"order_id"`
		InvoiceURL string `json:"invoice_url"`
	}

	CampaignFilter struct {
		Status     string
		ActiveOnly bool
		Page       int
		Limit      int
	}

	CampaignResponse struct {
		ID           string        `json:"id"`
		CreatorID    string        `json:"creator_id"`
		Creator      *UserResponse `json:"creator,omitempty"`
		Title        string        `json:"title"`
		Description  string        `json:"description"`
		GoalAmount   float64       `json:"goal_amount"`
		RaisedAmount float64       `json:"raised_amount"`
		StartDate    time.Time     `json:"start_date"`
		Deadline     time.Time     `json:"deadline"`
		Status       string        `json:"status"`
		ImageURL     string        `json:"image_url,omitempty"`
		CreatedAt    time.Time     `json:"created_at"`
	}
)
