package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/celtic-scaffold/audit-api/internal/handler"
	"github.com/celtic-scaffold/audit-api/internal/models"
	"github.com/celtic-scaffold/audit-api/internal/repository"
	"github.com/celtic-scaffold/audit-api/internal/service"
	"github.com/celtic-scaffold/audit-api/pkg/config"
	"github.com/celtic-scaffold/audit-api/pkg/logger"
	corsmiddleware "github.com/celtic-scaffold/audit-api/pkg/middleware/cors"
	reqidmiddleware "github.com/celtic-scaffold/audit-api/pkg/middleware/requestid"
	"github.com/celtic-scaffold/audit-api/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	exportsStore, err := storage.NewLocalStorage(cfg.State.ExportsDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare exports directory", "error", err)
	}

	catalog := models.DefaultCatalog()
	stateRepo := repository.NewFileStateRepository(cfg.State.Path, cfg.Audit.DefaultPIN, logr)
	metrics := service.NewMetricsService()

	audit := service.NewAuditService(catalog, stateRepo.Load(), stateRepo, metrics, logr)
	reports := service.NewReportService(catalog, audit)
	exports := service.NewExportService(catalog, audit, exportsStore, cfg.Brand, metrics, logr)

	auditHandler := handler.NewAuditHandler(audit)
	authHandler := handler.NewAuthHandler(audit)
	reportHandler := handler.NewReportHandler(reports, exports, audit)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(metrics.GinMiddleware())
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/catalog", auditHandler.GetCatalog)
		api.GET("/state", auditHandler.GetState)
		api.GET("/state/progress", auditHandler.GetProgress)

		api.PUT("/items/:index/answer", auditHandler.SetAnswer)
		api.PUT("/items/:index/notes", auditHandler.SetNotes)
		api.POST("/items/:index/photos", auditHandler.AddPhoto)
		api.DELETE("/items/:index/photos/:position", auditHandler.RemovePhoto)

		api.PUT("/session", auditHandler.UpdateSession)
		api.PUT("/session/pin", authHandler.SetPIN)

		api.POST("/auth/unlock", authHandler.Unlock)
		api.GET("/auth/status", authHandler.GetStatus)

		api.GET("/report", reportHandler.GetReport)
		api.GET("/export/json", reportHandler.ExportJSON)
		api.GET("/export/xlsx", reportHandler.ExportXLSX)
		api.GET("/export/csv", reportHandler.ExportCSV)
		api.GET("/export/pdf", reportHandler.ExportPDF)
		api.POST("/import", reportHandler.Import)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "state_path", cfg.State.Path)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
