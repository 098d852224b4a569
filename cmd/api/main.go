// cmd/api/main.go
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/unclebandit/crm-viewer/internal/config"
	"github.com/unclebandit/crm-viewer/internal/db"
	"github.com/unclebandit/crm-viewer/internal/handler"
	"github.com/unclebandit/crm-viewer/internal/server"
	"github.com/unclebandit/crm-viewer/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg, err := config.LoadAPI()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	log.Println("Database config:", cfg.DB.Target())

	dashboard := service.NewDashboardService(db.NewPostgres(cfg.DB))
	apiHandler := handler.NewAPIHandler(dashboard)

	site := handler.DetectStaticSite(cfg.StaticDir)
	handler.LogMode(site, cfg.StaticDir)

	addr := ":" + cfg.Port
	log.Println("🚀 CRM API running on", addr)
	if err := server.Run(addr, handler.NewRouter(apiHandler, site)); err != nil {
		log.Fatal(err)
	}
}
