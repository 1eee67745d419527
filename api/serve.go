package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/storefront/internal/auth"
	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/config"
	"github.com/rogerio-castellano/storefront/internal/db"
	"github.com/rogerio-castellano/storefront/internal/http/ban"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	mw "github.com/rogerio-castellano/storefront/internal/http/middleware"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront/internal/http/router"
	"github.com/rogerio-castellano/storefront/internal/logging"
	"github.com/rogerio-castellano/storefront/internal/orders"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/seed"
	"github.com/rogerio-castellano/storefront/internal/session"
	"github.com/rogerio-castellano/storefront/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	sessionEvictInterval = time.Minute
	revocationPruneEvery = 30 * time.Minute
	shutdownTimeout      = 10 * time.Second
)

func newServeCmd(v *viper.Viper, load func() (config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	f := cmd.Flags()
	f.String("addr", ":8080", "listen address")
	f.String("storage", config.BackendMemory, "storage backend (memory, file, sqlite, redis, postgres)")
	f.String("seed", "", "seed fixtures file (default: embedded fixtures)")
	f.String("database-url", "", "PostgreSQL connection string")
	f.String("redis-addr", "localhost:6379", "Redis address")
	for key, name := range map[string]string{
		"addr":                 "addr",
		"storage.backend":      "storage",
		"seed_file":            "seed",
		"storage.database_url": "database-url",
		"storage.redis_addr":   "redis-addr",
	} {
		cobra.CheckErr(v.BindPFlag(key, f.Lookup(name)))
	}
	return cmd
}

// backend is everything that depends on the chosen storage.
type backend struct {
	slots    storage.Slots
	products repo.ProductRepository
	orders   repo.OrderRepository
	users    repo.UserRepository
	bans     ban.Log
	closers  []func() error
}

func (b *backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		_ = b.closers[i]()
	}
}

func openBackend(ctx context.Context, cfg config.Storage, data seed.Data) (*backend, error) {
	b := &backend{
		products: repo.NewInMemoryProductRepository(data.Products...),
		orders:   repo.NewInMemoryOrderRepository(data.Orders...),
		users:    repo.NewInMemoryUserRepository(data.Users...),
		bans:     ban.NewMemoryLog(),
	}

	switch cfg.Backend {
	case config.BackendMemory:
		b.slots = storage.NewMemoryStore()

	case config.BackendFile:
		fs, err := storage.NewFileStore(cfg.Dir)
		if err != nil {
			return nil, err
		}
		b.slots = fs

	case config.BackendSQLite:
		s, err := storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		b.slots = s
		b.closers = append(b.closers, s.Close)

	case config.BackendRedis:
		rdb, err := storage.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis: %w", err)
		}
		b.slots = storage.NewRedisStore(rdb, "storefront:", 0)
		b.bans = ban.NewRedisLog(rdb)
		b.closers = append(b.closers, rdb.Close)

	case config.BackendPostgres:
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, database.Close)
		if err := db.Migrate(ctx, database); err != nil {
			b.Close()
			return nil, err
		}
		b.slots = storage.NewPostgresStore(database)
		b.products = repo.NewPostgresProductRepository(database)
		b.orders = repo.NewPostgresOrderRepository(database)
		b.users = repo.NewPostgresUserRepository(database)
		if err := seedPostgres(b, data); err != nil {
			b.Close()
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	return b, nil
}

// seedPostgres loads the fixtures into empty tables only.
func seedPostgres(b *backend, data seed.Data) error {
	if existing, err := b.products.GetAll(); err != nil {
		return err
	} else if len(existing) == 0 {
		for _, p := range data.Products {
			if _, err := b.products.Create(p); err != nil && !errors.Is(err, repo.ErrDuplicatedValueUnique) {
				return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
			}
		}
	}
	if existing, err := b.users.GetAll(); err != nil {
		return err
	} else if len(existing) == 0 {
		for _, u := range data.Users {
			if _, err := b.users.Create(u); err != nil && !errors.Is(err, repo.ErrDuplicatedValueUnique) {
				return fmt.Errorf("failed to seed user %s: %w", u.ID, err)
			}
		}
	}
	if existing, err := b.orders.GetAll(); err != nil {
		return err
	} else if len(existing) == 0 {
		for _, o := range data.Orders {
			if _, err := b.orders.Create(o); err != nil && !errors.Is(err, repo.ErrDuplicatedValueUnique) {
				return fmt.Errorf("failed to seed order %s: %w", o.ID, err)
			}
		}
	}
	return nil
}

func serve(ctx context.Context, cfg config.Config) error {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	data, err := seed.LoadFile(cfg.SeedFile)
	if err != nil {
		return err
	}

	b, err := openBackend(ctx, cfg.Storage, data)
	if err != nil {
		return err
	}
	defer b.Close()
	logger.Info("storage ready", zap.String("backend", cfg.Storage.Backend))

	deals := repo.NewInMemoryDealRepository(data.Deals...)
	arrivals := repo.NewInMemoryNewArrivalRepository(data.NewArrivals...)
	metrics := repo.NewInMemoryMetricsRepository()
	metrics.SetRepositories(b.products, b.users, b.orders)

	authenticator, err := auth.NewAuthenticator(cfg.Auth.AdminEmail, cfg.Auth.AdminPassword, b.users)
	if err != nil {
		return err
	}
	authenticator.WithResetLatency(cfg.Auth.ResetLatency)
	revoked, err := auth.NewRevocations(ctx, b.slots, logger)
	if err != nil {
		return err
	}

	sessions := session.NewManager(b.slots, cfg.SessionIdleTTL, logger)

	limiter := rl.New(rl.Config{
		RPS:        cfg.RateLimit.RPS,
		Burst:      cfg.RateLimit.Burst,
		MaxStrikes: cfg.RateLimit.MaxStrikes,
		BanFor:     cfg.RateLimit.BanFor,
	})
	limiter.OnBan = mw.BanRecorder(b.bans, logger)

	s := &handlers.Server{
		Catalog:   catalog.New(data.Products, data.Categories),
		Sessions:  sessions,
		Orders:    orders.NewSimulatedService(b.orders, deals, cfg.CheckoutLatency, logger).WithTrackingLatency(cfg.TrackingLatency),
		Auth:      authenticator,
		Tokens:    auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Revoked:   revoked,
		Products:  b.products,
		OrderRepo: b.orders,
		Users:     b.users,
		Deals:     deals,
		Metrics:   metrics,
		Bans:      b.bans,
		Logger:    logger,

		NewArrivals: arrivals,
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router.NewRouter(s, router.Options{CORSOrigins: cfg.CORSOrigins, Limiter: limiter}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server running", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		sessions.Run(gctx, sessionEvictInterval)
		return nil
	})
	g.Go(func() error {
		limiter.StartVisitorCleanupLoop(gctx)
		return nil
	})
	g.Go(func() error {
		ticker := time.NewTicker(revocationPruneEvery)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case now := <-ticker.C:
				if n := revoked.Prune(gctx, now); n > 0 {
					logger.Debug("pruned revoked tokens", zap.Int("count", n))
				}
			}
		}
	})

	return g.Wait()
}
