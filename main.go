package main

import (
	"log"

	"github.com/IsaacJM03/Year-3-Capstone-Project/cmd/config"
	migration "github.com/IsaacJM03/Year-3-Capstone-Project/cmd/database/migrate"
	"github.com/IsaacJM03/Year-3-Capstone-Project/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
