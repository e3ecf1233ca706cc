package handlers

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrDonationNotFound, fiber.StatusNotFound},
		{domain.ErrClaimNotFound, fiber.StatusNotFound},
		{domain.ErrCampaignNotFound, fiber.StatusNotFound},
		{domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{domain.ErrTokenRevoked, fiber.StatusUnauthorized},
		{domain.ErrOnlyDonorsCanDonate, fiber.StatusForbidden},
		{domain.ErrOnlyReceiversCanClaim, fiber.StatusForbidden},
		{domain.ErrUnauthorizedClaimAccess, fiber.StatusForbidden},
		{domain.ErrEmailAlreadyExists, fiber.StatusConflict},
		{domain.ErrDonationNotAvailable, fiber.StatusConflict},
		{domain.ErrDuplicatePendingClaim, fiber.StatusConflict},
		{domain.ErrClaimNotPending, fiber.StatusConflict},
		{domain.ErrCampaignNotActive, fiber.StatusConflict},
		{domain.ErrExpiryDateInPast, fiber.StatusBadRequest},
		{errors.New("anything else"), fiber.StatusBadRequest},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, statusForError(tc.err), tc.err.Error())
	}
}
