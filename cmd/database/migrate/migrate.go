package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/IsaacJM03/Year-3-Capstone-Project/entities"
)

func Migrate(db *gorm.DB) error {
	// Setup PostgreSQL extensions for UUID defaults and geo queries
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"earthdistance\" CASCADE;")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"cube\";")

	models := []interface{}{
		&entities.User{},
		&entities.AuthSession{},
		&entities.Organization{},
		&entities.Donation{},
		&entities.Claim{},
		&entities.Campaign{},
		&entities.CampaignPledge{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
