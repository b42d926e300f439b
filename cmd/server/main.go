package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Vectra777/module-intervenants/config"
	"github.com/Vectra777/module-intervenants/internal/api/handler"
	"github.com/Vectra777/module-intervenants/internal/api/router"
	"github.com/Vectra777/module-intervenants/internal/repository"
	"github.com/Vectra777/module-intervenants/internal/service"
	"github.com/Vectra777/module-intervenants/pkg/database"
	applogger "github.com/Vectra777/module-intervenants/pkg/logger"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "chargement de la configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialisation du logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("démarrage de l'application",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Base de données
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("connexion à la base de données", zap.Error(err))
	}

	// 3.1 Migrations
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("récupération du sql.DB sous-jacent", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migration de la base de données", zap.Error(err))
	}

	// 4. Injection de dépendances : Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, logger)
	h := handler.NewHandler(svc)

	// 5. Routeur
	engine := router.Setup(cfg, h, logger)

	// 6. Serveur HTTP avec arrêt gracieux
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("serveur HTTP démarré", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("serveur HTTP", zap.Error(err))
		}
	}()

	// 7. Signaux système
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("signal reçu, arrêt en cours", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("arrêt du serveur", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}

	logger.Info("serveur arrêté")
}
