// cmd/viewer/main.go
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/unclebandit/crm-viewer/internal/config"
	"github.com/unclebandit/crm-viewer/internal/controller"
	"github.com/unclebandit/crm-viewer/internal/db"
	"github.com/unclebandit/crm-viewer/internal/server"
	"github.com/unclebandit/crm-viewer/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg, err := config.LoadViewer()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	log.Println("Database config:", cfg.DB.Target())

	dashboard := service.NewDashboardService(db.NewPostgres(cfg.DB))
	viewerController := &controller.ViewerController{Service: dashboard}

	addr := ":" + cfg.Port
	log.Println("🚀 Customer viewer running on", addr)
	if err := server.Run(addr, controller.NewRouter(viewerController)); err != nil {
		log.Fatal(err)
	}
}
