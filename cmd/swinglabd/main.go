// Command swinglabd is the swinglab platform service.
// It serves the scoring API, swing ingestion backed by blob storage and
// Postgres, Prometheus metrics, and a health check.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/swinglab/swinglab/internal/api"
	"github.com/swinglab/swinglab/internal/ingestion"
	"github.com/swinglab/swinglab/internal/platform"
	"github.com/swinglab/swinglab/pkg/analysis"
	"github.com/swinglab/swinglab/pkg/config"
	"github.com/swinglab/swinglab/pkg/prescription"
	"github.com/swinglab/swinglab/pkg/scoring"
)

type daemonConfig struct {
	Port        string
	DatabaseURL string
	APIKey      string
	LogLevel    string
	Policy      scoring.Policy
	CatalogPath string
	Storage     config.StorageConfig
	S3AccessKey string
	S3SecretKey string
	CacheSize   int
	AutoMigrate bool
}

func loadConfig() daemonConfig {
	// File config supplies defaults; environment variables win.
	fileCfg := config.DefaultConfig()
	cfgPath := os.Getenv("SWINGLAB_CONFIG")
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			logrus.Fatalf("load config: %v", err)
		}
		fileCfg = loaded
	}

	cacheSize, _ := strconv.Atoi(os.Getenv("REPORT_CACHE_SIZE"))

	return daemonConfig{
		Port:        envOrDefault("PORT", fileCfg.Server.Port),
		DatabaseURL: envOrDefault("DATABASE_URL", fileCfg.Server.DatabaseURL),
		APIKey:      envOrDefault("API_KEY", fileCfg.Server.APIKey),
		LogLevel:    envOrDefault("LOG_LEVEL", fileCfg.Server.LogLevel),
		Policy:      fileCfg.Policy(),
		CatalogPath: envOrDefault("DRILL_CATALOG", fileCfg.Prescription.CatalogPath),
		Storage: config.StorageConfig{
			Backend:   envOrDefault("STORAGE_BACKEND", fileCfg.Storage.Backend),
			LocalPath: envOrDefault("LOCAL_STORAGE_PATH", fileCfg.Storage.LocalPath),
			Bucket:    envOrDefault("STORAGE_BUCKET", fileCfg.Storage.Bucket),
			Region:    envOrDefault("AWS_REGION", fileCfg.Storage.Region),
			Endpoint:  envOrDefault("S3_ENDPOINT", fileCfg.Storage.Endpoint),
		},
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		CacheSize:   cacheSize,
		AutoMigrate: os.Getenv("SKIP_MIGRATIONS") == "",
	}
}

func main() {
	// A local .env is optional; real environment variables take precedence.
	_ = godotenv.Load()
	cfg := loadConfig()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("invalid LOG_LEVEL %q: %v", cfg.LogLevel, err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	analyzer, err := buildAnalyzer(cfg)
	if err != nil {
		logrus.Fatalf("build analyzer: %v", err)
	}

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		logrus.Fatalf("init storage: %v", err)
	}

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = platform.OpenDB(ctx, cfg.DatabaseURL)
		if err != nil {
			logrus.Fatalf("database: %v", err)
		}
		defer db.Close()

		if cfg.AutoMigrate {
			if err := platform.AutoMigrate(db); err != nil {
				logrus.Fatalf("migrate: %v", err)
			}
		}
	} else {
		logrus.Warn("DATABASE_URL not set; scores are kept in blob storage only")
	}

	ingestionSvc := ingestion.NewService(db, storage, analyzer)
	handler := api.NewHandler(analyzer, ingestionSvc, api.NewReportCache(cfg.CacheSize), api.NewMetrics())

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.CORS(api.APIKeyAuth(cfg.APIKey)(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("starting swinglabd on :%s (storage=%s)", cfg.Port, cfg.Storage.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("shutdown error: %v", err)
	}
}

func buildAnalyzer(cfg daemonConfig) (*analysis.Analyzer, error) {
	var (
		drills []prescription.Drill
		err    error
	)
	if cfg.CatalogPath != "" {
		drills, err = prescription.LoadCatalog(cfg.CatalogPath)
	} else {
		drills, err = prescription.DefaultCatalog()
	}
	if err != nil {
		return nil, err
	}
	prescriber, err := prescription.NewEngine(drills)
	if err != nil {
		return nil, err
	}
	logrus.Infof("loaded %d drills", len(drills))

	return analysis.New(scoring.NewEngine(cfg.Policy), prescriber), nil
}

func newStorage(ctx context.Context, cfg daemonConfig) (ingestion.StorageClient, error) {
	switch cfg.Storage.Backend {
	case "", "local":
		return ingestion.NewLocalStorage(cfg.Storage.LocalPath), nil
	case "s3":
		return ingestion.NewS3Storage(ctx, ingestion.S3Config{
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	case "gcs":
		return ingestion.NewGCSStorage(ctx, cfg.Storage.Bucket)
	default:
		return nil, errors.New("unknown STORAGE_BACKEND " + strconv.Quote(cfg.Storage.Backend))
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
