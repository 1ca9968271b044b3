package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/ats"
	"ats-backend/internal/auth"
	"ats-backend/internal/interviews"
	"ats-backend/internal/oracle"
	"ats-backend/internal/oracle/gemini"
	"ats-backend/internal/oracle/openai"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/server/middleware"
	"ats-backend/internal/shared/storage/db"
)

const oracleRateGroup = "oracle"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				// Every POST costs at least two oracle calls.
				oracleRateGroup: {Rate: 0.5, Burst: 3},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost {
					return oracleRateGroup
				}
				return ""
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	client, err := newOracleClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("oracle client: %w", err)
	}

	pipeline := &ats.Service{
		Oracle:  client,
		Timeout: cfg.OracleTimeout,
		Mode:    ats.Mode(cfg.ATSMode),
	}
	ats.NewHandler(pipeline).RegisterRoutes(r)

	store := newStore(cfg)
	interviewSvc := &interviews.Service{Pipeline: pipeline, Store: store}
	interviews.NewHandler(interviewSvc, auth.JWTResolver{}).RegisterRoutes(r)

	return r, nil
}

// Addr formats the listen address for the configured port.
func Addr(port string) string {
	return ":" + port
}

func newOracleClient(cfg config.Config) (oracle.Client, error) {
	switch cfg.OracleProvider {
	case "openai":
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.OracleModel, cfg.OracleTimeout)
	default:
		return gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.OracleModel)
	}
}

// newStore returns the Postgres-backed store when a database is configured
// and reachable, falling back to an in-memory store otherwise.
func newStore(cfg config.Config) interviews.Store {
	if cfg.DatabaseURL == "" {
		return interviews.NewMemoryStore()
	}

	ctx := context.Background()
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return interviews.NewMemoryStore()
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		sqlDB.Close()
		return interviews.NewMemoryStore()
	}
	return &interviews.PGStore{DB: sqlDB}
}
