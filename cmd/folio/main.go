package main

import (
	"context"
	"log"

	"github.com/nbeaumont/folio/internal/config"
	"github.com/nbeaumont/folio/internal/db"
	"github.com/nbeaumont/folio/internal/logging"
	mediaS3 "github.com/nbeaumont/folio/internal/mediastore/s3"
	"github.com/nbeaumont/folio/internal/service"
	"github.com/nbeaumont/folio/internal/store"
	"github.com/nbeaumont/folio/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	media, err := mediaS3.New(context.Background(), mediaS3.Config{
		AccountID:       cfg.MediaAccountID,
		AccessKeyID:     cfg.MediaAccessKeyID,
		SecretAccessKey: cfg.MediaSecretAccessKey,
		Bucket:          cfg.MediaBucket,
		Folder:          cfg.MediaFolder,
		CDNDomain:       cfg.CDNDomain,
	})
	if err != nil {
		logger.Error("failed to initialize media store", "error", err)
		return
	}

	gallery := service.NewGalleryService(
		store.NewRenderStore(database),
		store.NewModelStore(database),
		store.NewMessageStore(database),
		media,
		logger,
	)

	server := web.NewServer(gallery, cfg.AdminPassword, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
