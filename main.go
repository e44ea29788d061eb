package main

import (
	"log"

	"plateful/configs"
	"plateful/middlewares"
	"plateful/routes"
	"plateful/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	if err := configs.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	hub := ws.NewTrackHub()
	go hub.Run()

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.AdminHostRewrite(cfg.AdminHost))

	routes.SetupRoutes(r, db, cfg, hub)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
