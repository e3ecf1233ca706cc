package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/api/handlers"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/middleware"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/jwt"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	OrganizationHandler handlers.OrganizationHandler
	DonationHandler     handlers.DonationHandler
	ClaimHandler        handlers.ClaimHandler
	CampaignHandler     handlers.CampaignHandler
	ReportHandler       handlers.ReportHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
	Sessions            middleware.SessionChecker
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Users()
	c.Organizations()
	c.Donations()
	c.Claims()
	c.Campaigns()
	c.Reports()
	c.GuestRoute()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService, c.Sessions)
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/logout", c.auth(), c.UserHandler.Logout)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users", c.auth())
	{
		users.Get("/me", c.UserHandler.Me)
		users.Patch("/me", c.UserHandler.UpdateProfile)
	}
}

func (c *Config) Organizations() {
	orgs := c.App.Group("/api/v1/organizations", c.auth())
	{
		orgs.Post("", c.OrganizationHandler.Register)
		orgs.Get("", c.OrganizationHandler.GetOrganizations)
		orgs.Get("/:id", c.OrganizationHandler.GetOrganization)
		orgs.Post("/:id/documents", c.OrganizationHandler.UploadDocument)
		orgs.Patch("/:id/verify", c.Middleware.OnlyAdmin, c.OrganizationHandler.Verify)
	}
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.auth())
	{
		donations.Get("", c.DonationHandler.GetDonations)
		donations.Get("/nearby", c.DonationHandler.GetNearbyDonations)
		donations.Get("/mine", c.DonationHandler.GetMyDonations)
		donations.Get("/:id", c.DonationHandler.GetDonation)
		donations.Post("", c.DonationHandler.CreateDonation)
		donations.Put("/:id", c.DonationHandler.UpdateDonation)
		donations.Delete("/:id", c.DonationHandler.DeleteDonation)
		donations.Post("/:id/image", c.DonationHandler.UploadDonationImage)
	}
}

func (c *Config) Claims() {
	claims := c.App.Group("/api/v1/claims", c.auth())
	{
		claims.Post("", c.ClaimHandler.RequestClaim)
		claims.Get("", c.ClaimHandler.GetClaims)
		claims.Get("/:id", c.ClaimHandler.GetClaim)
		claims.Patch("/:id/approve", c.ClaimHandler.ApproveClaim)
		claims.Patch("/:id/reject", c.ClaimHandler.RejectClaim)
		claims.Patch("/:id/deliver", c.ClaimHandler.DeliverClaim)
		claims.Delete("/:id", c.ClaimHandler.DeleteClaim)
	}
}

func (c *Config) Campaigns() {
	campaigns := c.App.Group("/api/v1/campaigns", c.auth())
	{
		campaigns.Get("", c.CampaignHandler.GetCampaigns)
		campaigns.Get("/mine", c.CampaignHandler.GetMyCampaigns)
		campaigns.Get("/:id", c.CampaignHandler.GetCampaign)
		campaigns.Post("", c.CampaignHandler.CreateCampaign)
		campaigns.Put("/:id", c.CampaignHandler.UpdateCampaign)
		campaigns.Delete("/:id", c.CampaignHandler.DeleteCampaign)
		campaigns.Post("/:id/donate", c.CampaignHandler.Pledge)
		campaigns.Post("/:id/checkout", c.CampaignHandler.Checkout)
	}
}

func (c *Config) Reports() {
	admin := c.App.Group("/api/v1/admin/reports", c.auth(), c.Middleware.OnlyAdmin)
	{
		admin.Get("/summary", c.ReportHandler.GetSummary)
		admin.Get("/statistics", c.ReportHandler.GetStatistics)
		admin.Get("/donations-per-category", c.ReportHandler.GetDonationsPerCategory)
		admin.Get("/top-donors", c.ReportHandler.GetTopDonors)
		admin.Get("/top-receivers", c.ReportHandler.GetTopReceivers)
		admin.Get("/donations-over-time", c.ReportHandler.GetDonationsOverTime)
	}

	c.App.Get("/api/v1/reports/user-report", c.auth(), c.ReportHandler.GetUserReport)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.CampaignHandler.PaymentNotification)
}
