package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/api/handlers"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/api/routes"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/middleware"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/utils"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/utils/storage"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/campaign"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/claim"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/donation"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/jwt"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/organization"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/payment"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/report"
	"github.com/IsaacJM03/Year-3-Capstone-Project/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Africa/Kampala",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	gateway := payment.NewMidtransGateway()

	// Repository
	userRepository := user.NewUserRepository(db)
	organizationRepository := organization.NewOrganizationRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	claimRepository := claim.NewClaimRepository(db)
	campaignRepository := campaign.NewCampaignRepository(db)
	reportRepository := report.NewReportRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	organizationService := organization.NewOrganizationService(organizationRepository, s3)
	donationService := donation.NewDonationService(donationRepository, s3)
	claimService := claim.NewClaimService(claimRepository)
	campaignService := campaign.NewCampaignService(campaignRepository, gateway)
	reportService := report.NewReportService(reportRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	organizationHandler := handlers.NewOrganizationHandler(organizationService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	claimHandler := handlers.NewClaimHandler(claimService, validator)
	campaignHandler := handlers.NewCampaignHandler(campaignService, validator)
	reportHandler := handlers.NewReportHandler(reportService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		OrganizationHandler: organizationHandler,
		DonationHandler:     donationHandler,
		ClaimHandler:        claimHandler,
		CampaignHandler:     campaignHandler,
		ReportHandler:       reportHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
		Sessions:            userService,
	}
	routesConfig.Setup()
	return app, nil
}
