package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
)

func identityFromLocals(c *fiber.Ctx) domain.Identity {
	userID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	return domain.Identity{UserID: userID, Role: role}
}

func pageQuery(c *fiber.Ctx) (page, limit int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.Query("limit", strconv.Itoa(domain.DefaultPageSize)))
	if err != nil || limit < 1 {
		limit = domain.DefaultPageSize
	}
	return page, limit
}

func paginated(items interface{}, page, limit int, total int64) fiber.Map {
	return fiber.Map{
		"items":      items,
		"pagination": domain.NewPagination(page, limit, total),
	}
}

// statusForError translates domain errors into HTTP statuses: missing
// resources 404, policy denials 403, credential problems 401, state-machine
// conflicts 409, everything else 400.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrDonationNotFound),
		errors.Is(err, domain.ErrClaimNotFound),
		errors.Is(err, domain.ErrCampaignNotFound):
		return fiber.StatusNotFound

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenRevoked):
		return fiber.StatusUnauthorized

	case errors.Is(err, domain.ErrUserNotAllowed),
		errors.Is(err, domain.ErrOnlyDonorsCanDonate),
		errors.Is(err, domain.ErrOnlyReceiversCanClaim),
		errors.Is(err, domain.ErrUnauthorizedDonationAccess),
		errors.Is(err, domain.ErrUnauthorizedClaimAccess),
		errors.Is(err, domain.ErrUnauthorizedCampaignAccess):
		return fiber.StatusForbidden

	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrDonationNotAvailable),
		errors.Is(err, domain.ErrDuplicatePendingClaim),
		errors.Is(err, domain.ErrClaimNotPending),
		errors.Is(err, domain.ErrClaimNotApproved),
		errors.Is(err, domain.ErrDonationNotClaimed),
		errors.Is(err, domain.ErrCampaignNotActive):
		return fiber.StatusConflict

	default:
		return fiber.StatusBadRequest
	}
}
