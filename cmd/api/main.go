package main

import (
	"context"
	"time"
	_ "time/tzdata"

	"github.com/carnicero52/CONTRATA2/internal/auth"
	"github.com/carnicero52/CONTRATA2/internal/cache"
	"github.com/carnicero52/CONTRATA2/internal/config"
	"github.com/carnicero52/CONTRATA2/internal/database"
	"github.com/carnicero52/CONTRATA2/internal/handler"
	"github.com/carnicero52/CONTRATA2/internal/logger"
	"github.com/carnicero52/CONTRATA2/internal/ratelimit"
	"github.com/carnicero52/CONTRATA2/internal/repository"
	"github.com/carnicero52/CONTRATA2/internal/service"
	"github.com/carnicero52/CONTRATA2/internal/session"
	"github.com/carnicero52/CONTRATA2/internal/validator"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	Service *service.Service
	Limiter ratelimit.Limiter
	Handler *handler.Handler
}

func newApplication(cfg *config.Config, log *zap.Logger, store repository.Store, sessions session.Store, limiter ratelimit.Limiter) *application {
	svc := service.New(store, sessions, log, service.WithExportLocation(cfg.ExportLocation()))

	return &application{
		Logger:  log,
		Config:  cfg,
		Service: svc,
		Limiter: limiter,
		Handler: &handler.Handler{
			Logger:           log,
			Service:          svc,
			TokenMaker:       auth.NewJWTMaker(cfg.JWT.Secret),
			TokenTTL:         cfg.JWT.AccessTokenTTL,
			Validator:        validator.New(),
			PublicBaseURL:    cfg.Intake.PublicBaseURL,
			MaxDocumentBytes: cfg.Intake.MaxDocumentBytes,
		},
	}
}

func main() {
	cfg := config.MustLoad()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	log, err := logger.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck
	sugar := log.Sugar()
	sugar.Infof("config loaded: %s", cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var store repository.Store
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns, cfg.DB.MaxConnLifetime)
		if err != nil {
			sugar.Fatal(err)
		}
		defer pool.Close()
		if err := database.Migrate(ctx, pool); err != nil {
			sugar.Fatal(err)
		}
		store = repository.NewRepository(pool)
	default:
		sugar.Warn("using in-memory store, data is lost on restart")
		store = repository.NewMemoryStore()
	}

	var rdb *redis.Client
	if cfg.UsesRedis() {
		rdb, err = cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			sugar.Fatal(err)
		}
		defer rdb.Close()
	}

	var sessions session.Store = session.NewMemoryStore()
	if rdb != nil {
		sessions = session.NewRedisStore(rdb, cfg.Session.Key)
	}

	var limiter ratelimit.Limiter = ratelimit.Noop{}
	switch {
	case !cfg.Limiter.Enabled:
	case rdb != nil:
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.Limiter.Burst, cfg.Limiter.Window)
	default:
		limiter = ratelimit.NewMemoryLimiter(cfg.Limiter.RPS, cfg.Limiter.Burst)
	}

	app := newApplication(cfg, log, store, sessions, limiter)
	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
