package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/sekolahku/internal/config"
	"github.com/sekolahku/internal/db"
	"github.com/sekolahku/internal/handler"
	"github.com/sekolahku/internal/router"
	"github.com/sekolahku/internal/storage"
)

func main() {
	// Missing .env is fine; production reads real environment variables.
	_ = godotenv.Load()

	cfg := config.Load()

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	store, err := buildStore(&cfg)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	api := handler.NewAPI(db.DB, store, cfg.JWTSecret)
	r := router.Setup(&cfg, api)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func buildStore(cfg *config.AppConfig) (storage.ObjectStore, error) {
	if cfg.StorageDriver == "oss" {
		return storage.NewOSSStore(storage.OSSConfig{
			Endpoint:        cfg.OSSEndpoint,
			AccessKeyID:     cfg.OSSAccessKeyID,
			AccessKeySecret: cfg.OSSAccessKeySecret,
			Bucket:          cfg.OSSBucket,
			PublicBaseURL:   cfg.OSSPublicBaseURL,
		})
	}
	return storage.NewLocalStore(cfg.UploadDir, cfg.UploadURLPath), nil
}
