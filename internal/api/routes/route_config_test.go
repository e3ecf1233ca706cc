package routes

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsaacJM03/Year-3-Capstone-Project/domain"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/middleware"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/jwt"
)

// stubHandlers satisfies every handler interface with a bare 200 so the test
// exercises only the route wiring and middleware chain.
type stubHandlers struct{}

func (stubHandlers) ok(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

func (s stubHandlers) Register(c *fiber.Ctx) error            { return s.ok(c) }
func (s stubHandlers) Login(c *fiber.Ctx) error               { return s.ok(c) }
func (s stubHandlers) Logout(c *fiber.Ctx) error              { return s.ok(c) }
func (s stubHandlers) Me(c *fiber.Ctx) error                  { return s.ok(c) }
func (s stubHandlers) UpdateProfile(c *fiber.Ctx) error       { return s.ok(c) }
func (s stubHandlers) GetOrganizations(c *fiber.Ctx) error    { return s.ok(c) }
func (s stubHandlers) GetOrganization(c *fiber.Ctx) error     { return s.ok(c) }
func (s stubHandlers) Verify(c *fiber.Ctx) error              { return s.ok(c) }
func (s stubHandlers) UploadDocument(c *fiber.Ctx) error      { return s.ok(c) }
func (s stubHandlers) CreateDonation(c *fiber.Ctx) error      { return s.ok(c) }
func (s stubHandlers) GetDonations(c *fiber.Ctx) error        { return s.ok(c) }
func (s stubHandlers) GetDonation(c *fiber.Ctx) error         { return s.ok(c) }
func (s stubHandlers) GetMyDonations(c *fiber.Ctx) error      { return s.ok(c) }
func (s stubHandlers) UpdateDonation(c *fiber.Ctx) error      { return s.ok(c) }
func (s stubHandlers) DeleteDonation(c *fiber.Ctx) error      { return s.ok(c) }
func (s stubHandlers) GetNearbyDonations(c *fiber.Ctx) error  { return s.ok(c) }
func (s stubHandlers) UploadDonationImage(c *fiber.Ctx) error { return s.ok(c) }
func (s stubHandlers) RequestClaim(c *fiber.Ctx) error        { return s.ok(c) }
func (s stubHandlers) GetClaims(c *fiber.Ctx) error           { return s.ok(c) }
func (s stubHandlers) GetClaim(c *fiber.Ctx) error            { return s.ok(c) }
func (s stubHandlers) ApproveClaim(c *fiber.Ctx) error        { return s.ok(c) }
func (s stubHandlers) RejectClaim(c *fiber.Ctx) error         { return s.ok(c) }
func (s stubHandlers) DeliverClaim(c *fiber.Ctx) error        { return s.ok(c) }
func (s stubHandlers) DeleteClaim(c *fiber.Ctx) error         { return s.ok(c) }
func (s stubHandlers) CreateCampaign(c *fiber.Ctx) error      { return s.ok(c) }
func (s stubHandlers) GetCampaigns(c *fiber.Ctx) error        { return s.ok(c) }
func (s stubHandlers) GetCampaign(c *fiber.Ctx) error         { return s.ok(c) }
func (s stubHandlers) GetMyCampaigns(c *fiber.Ctx) error      { return s.ok(c) }
func (s stubHandlers) UpdateCampaign(c *fiber.Ctx) error      { return s.ok(c) }
func (s stubHandlers) DeleteCampaign(c *fiber.Ctx) error      { return s.ok(c) }
func (s stubHandlers) Pledge(c *fiber.Ctx) error              { return s.ok(c) }
func (s stubHandlers) Checkout(c *fiber.Ctx) error            { return s.ok(c) }
func (s stubHandlers) PaymentNotification(c *fiber.Ctx) error { return s.ok(c) }
func (s stubHandlers) GetSummary(c *fiber.Ctx) error          { return s.ok(c) }
func (s stubHandlers) GetStatistics(c *fiber.Ctx) error       { return s.ok(c) }
func (s stubHandlers) GetDonationsPerCategory(c *fiber.Ctx) error {
	return s.ok(c)
}
func (s stubHandlers) GetTopDonors(c *fiber.Ctx) error         { return s.ok(c) }
func (s stubHandlers) GetTopReceivers(c *fiber.Ctx) error      { return s.ok(c) }
func (s stubHandlers) GetDonationsOverTime(c *fiber.Ctx) error { return s.ok(c) }
func (s stubHandlers) GetUserReport(c *fiber.Ctx) error        { return s.ok(c) }

// stubJWTService accepts a single well-known token.
type stubJWTService struct {
	role string
}

const testBearerToken = "valid-session-token"

func (s stubJWTService) GenerateTokenUser(userID, role string) (string, *jwt.UserClaims, error) {
	return testBearerToken, nil, nil
}

func (s stubJWTService) ValidateTokenUser(token string) (*jwt.UserClaims, error) {
	if token != testBearerToken {
		return nil, domain.ErrTokenInvalid
	}
	claims := &jwt.UserClaims{UserID: "11111111-1111-1111-1111-111111111111", Role: s.role}
	claims.ID = "session-jti"
	return claims, nil
}

type alwaysActiveSessions struct{}

func (alwaysActiveSessions) IsSessionActive(context.Context, string) (bool, error) {
	return true, nil
}

func newRoutesTestApp(role string) *fiber.App {
	app := fiber.New()
	h := stubHandlers{}
	cfg := &Config{
		App:                 app,
		UserHandler:         h,
		OrganizationHandler: h,
		DonationHandler:     h,
		ClaimHandler:        h,
		CampaignHandler:     h,
		ReportHandler:       h,
		Middleware:          middleware.NewMiddleware(),
		JWTService:          stubJWTService{role: role},
		Sessions:            alwaysActiveSessions{},
	}
	cfg.Setup()
	return app
}

func request(t *testing.T, app *fiber.App, method, target, token string) int {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestReadRoutesRequireAuthentication(t *testing.T) {
	app := newRoutesTestApp(domain.RoleDonor)

	protected := []struct {
		method string
		target string
	}{
		{"GET", "/api/v1/donations"},
		{"GET", "/api/v1/donations/nearby"},
		{"GET", "/api/v1/donations/some-id"},
		{"GET", "/api/v1/organizations"},
		{"GET", "/api/v1/organizations/some-id"},
		{"GET", "/api/v1/campaigns"},
		{"GET", "/api/v1/campaigns/some-id"},
		{"GET", "/api/v1/claims"},
		{"POST", "/api/v1/organizations"},
		{"GET", "/api/v1/users/me"},
		{"GET", "/api/v1/reports/user-report"},
	}

	for _, route := range protected {
		assert.Equal(t, fiber.StatusUnauthorized,
			request(t, app, route.method, route.target, ""),
			"%s %s without token", route.method, route.target)
		assert.Equal(t, fiber.StatusOK,
			request(t, app, route.method, route.target, testBearerToken),
			"%s %s with token", route.method, route.target)
	}
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	app := newRoutesTestApp(domain.RoleDonor)

	public := []struct {
		method string
		target string
	}{
		{"POST", "/api/v1/auth/register"},
		{"POST", "/api/v1/auth/login"},
		{"GET", "/api/ping"},
		{"POST", "/webhook/midtrans"},
	}

	for _, route := range public {
		assert.Equal(t, fiber.StatusOK,
			request(t, app, route.method, route.target, ""),
			"%s %s", route.method, route.target)
	}
}

func TestAdminReportsRejectNonAdmins(t *testing.T) {
	donorApp := newRoutesTestApp(domain.RoleDonor)
	assert.Equal(t, fiber.StatusForbidden,
		request(t, donorApp, "GET", "/api/v1/admin/reports/summary", testBearerToken))

	adminApp := newRoutesTestApp(domain.RoleAdmin)
	assert.Equal(t, fiber.StatusOK,
		request(t, adminApp, "GET", "/api/v1/admin/reports/summary", testBearerToken))
}

func TestOrganizationVerifyIsAdminOnly(t *testing.T) {
	donorApp := newRoutesTestApp(domain.RoleDonor)
	assert.Equal(t, fiber.StatusForbidden,
		request(t, donorApp, "PATCH", "/api/v1/organizations/some-id/verify", testBearerToken))

	adminApp := newRoutesTestApp(domain.RoleAdmin)
	assert.Equal(t, fiber.StatusOK,
		request(t, adminApp, "PATCH", "/api/v1/organizations/some-id/verify", testBearerToken))
}
