package main

import (
	"fmt"
	"log"

	"gofood/configs"
	"gofood/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedFromFile(db, cfg.SeedFile); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}
	if err := configs.SeedUser(db); err != nil {
		log.Fatalf("seed user failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
