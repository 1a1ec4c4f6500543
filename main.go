package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/auy1jlll/pizza-vx-sub010/configs"
	"github.com/auy1jlll/pizza-vx-sub010/entity"
	"github.com/auy1jlll/pizza-vx-sub010/middlewares"
	"github.com/auy1jlll/pizza-vx-sub010/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// join table (many2many MenuItem<->CustomizationGroup)
	if err := db.SetupJoinTable(&entity.MenuItem{}, "Groups", &entity.MenuItemGroup{}); err != nil {
		log.Fatalf("setup join table failed: %v", err)
	}

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedSettings(); err != nil {
		log.Fatalf("seed settings failed: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
