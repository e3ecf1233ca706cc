package domain

import (
	"errors"
	"time"
)

const (
	ClaimStatusPending   = "pending"
	ClaimStatusApproved  = "approved"
	ClaimStatusRejected  = "rejected"
	ClaimStatusDelivered = "delivered"
)

var (
	MessageSuccessCreateClaim  = "claim submitted successfully"
	MessageSuccessGetClaims    = "claims retrieved successfully"
	MessageSuccessGetClaim     = "claim retrieved successfully"
	MessageSuccessApproveClaim = "claim approved successfully"
	MessageSuccessRejectClaim  = "claim rejected successfully"
	MessageSuccessDeliverClaim = "claim marked as delivered successfully"
	MessageSuccessDeleteClaim  = "claim deleted successfully"

	MessageFailedCreateClaim  = "failed to submit claim"
	MessageFailedGetClaims    = "failed to retrieve claims"
	MessageFailedDecideClaim  = "failed to update claim"
	MessageFailedDeliverClaim = "failed to mark claim as delivered"
	MessageFailedDeleteClaim  = "failed to delete claim"

	ErrClaimNotFound           = errors.New("claim not found")
	ErrOnlyReceiversCanClaim   = errors.New("only receivers can claim donations")
	ErrDonationNotAvailable    = errors.New("donation is not available for claiming")
	ErrDuplicatePendingClaim   = errors.New("a pending claim for this donation already exists")
	ErrClaimNotPending         = errors.New("claim is not pending")
	ErrClaimNotApproved        = errors.New("claim is not approved")
	ErrDonationNotClaimed      = errors.New("donation is not in claimed state")
	ErrUnauthorizedClaimAccess = errors.New("unauthorized access to claim")
	ErrPickupTimeInPast        = errors.New("pickup time must be in the future")
	ErrInvalidClaimDecision    = errors.New("decision must be approved or rejected")
)

type (
	CreateClaimRequest struct {
		DonationID string `json:"donation_id" validate:"required,uuid"`
		PickupTime string `json:"pickup_time" validate:"omitempty"`
		Notes      string `json:"notes" validate:"omitempty"`
	}

	DecideClaimRequest struct {
		Status string `json:"status" validate:"required,oneof=approved rejected"`
	}

	ClaimFilter struct {
		Status string
		Page   int
		Limit  int
	}

	ClaimResponse struct {
		ID         string            `json:"id"`
		DonationID string            `json:"donation_id"`
		ReceiverID string            `json:"receiver_id"`
		Status     string            `json:"status"`
		PickupTime *time.Time        `json:"pickup_time,omitempty"`
		Notes      string            `json:"notes,omitempty"`
		Donation   *DonationResponse `json:"donation,omitempty"`
		Receiver   *UserResponse     `json:"receiver,omitempty"`
		CreatedAt  time.Time         `json:"created_at"`
		UpdatedAt  time.Time         `json:"updated_at"`
	}
)
