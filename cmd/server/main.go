package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"freelancedesk/internal/auth"
	"freelancedesk/internal/config"
	"freelancedesk/internal/domain/repositories"
	"freelancedesk/internal/handler"
	"freelancedesk/internal/handler/sse"
	"freelancedesk/internal/middleware"
	"freelancedesk/internal/repository/graphql"
	"freelancedesk/internal/repository/memory"
	"freelancedesk/internal/repository/postgres"
	"freelancedesk/internal/seed"
	"freelancedesk/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

// sessionSweepInterval is how often expired sessions are deleted
const sessionSweepInterval = 10 * time.Minute

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logger, logCloser, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logging: %v", err)
	}
	defer logCloser.Close()
	slog.SetDefault(logger) // Set as default logger

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
		"link_strategy", cfg.LinkStrategy,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Token inspection (JWKS, shared secret, or unverified claims)
	inspector, err := auth.NewTokenInspector(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create token inspector: %v", err)
	}
	defer inspector.Close()

	// Session storage
	var (
		sessionRepo repositories.SessionRepository
		txManager   repositories.TransactionManager
	)
	if cfg.DatabaseURL != "" {
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to create connection pool: %v", err)
		}
		defer pool.Close()

		tables := postgres.NewTableNames(cfg.TablePrefix)
		if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}

		sessionRepo = postgres.NewSessionRepository(&postgres.RepositoryConfig{
			Pool:   pool,
			Tables: tables,
			Logger: logger,
		})
		txManager = postgres.NewTransactionManager(pool, logger)
		logger.Info("database connected", "sessions_table", tables.Sessions)
	} else {
		sessionRepo = memory.NewSessionRepository()
		txManager = memory.NewTransactionManager()
		logger.Warn("DATABASE_URL not set, sessions are kept in memory")
	}

	// API gateway
	var (
		gateways      repositories.GatewayFactory
		authenticator repositories.Authenticator
	)
	if cfg.InMemoryAPI() {
		if cfg.Environment == "prod" {
			log.Fatalf("GRAPHQL_URL is required in production")
		}
		store := memory.NewStore(cfg.PageSize)
		fixture, err := seed.Load(os.Getenv("SEED_FILE"))
		if err != nil {
			log.Fatalf("Failed to load seed fixture: %v", err)
		}
		if _, err := seed.NewSeeder(store.Gateway(), logger).Apply(ctx, fixture); err != nil {
			log.Fatalf("Failed to seed in-memory API: %v", err)
		}
		gateways = store.GatewayFactory()
		authenticator = memory.NewAuthenticator(map[string]string{cfg.DevUser: cfg.DevPassword})
		logger.Warn("DEV MODE: using the in-memory API (set GRAPHQL_URL for a real backend)", "user", cfg.DevUser)
	} else {
		clientCfg := &graphql.ClientConfig{
			Endpoint:  cfg.GraphQLURL,
			Timeout:   cfg.GraphQLTimeout,
			PageSize:  cfg.PageSize,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Logger:    logger,
		}
		gateways = graphql.NewGatewayFactory(clientCfg)
		authenticator = graphql.NewAuthenticator(clientCfg)
		logger.Info("graphql api configured", "endpoint", cfg.GraphQLURL)
	}

	// Services
	sessionService := service.NewSessionService(authenticator, sessionRepo, inspector, txManager, cfg.SessionTTL, logger)
	factory := service.NewFactory(&service.FactoryConfig{
		Gateways:     gateways,
		LinkStrategy: cfg.LinkStrategy,
		Logger:       logger,
	})
	feed := service.NewChangeFeed(cfg.PollInterval, logger)

	logger.Info("services initialized")

	// Handlers
	responder := handler.NewResponder(sessionService, cfg.SessionCookie, cfg.SecureCookies(), logger)
	mux := handler.NewRouter(&handler.Handlers{
		Session:     handler.NewSessionHandler(sessionService, responder, logger),
		Shell:       handler.NewShellHandler(cfg, responder, logger),
		Directory:   handler.NewDirectoryHandler(responder, logger),
		Panel:       handler.NewPanelHandler(responder, logger),
		Freelancers: handler.NewFreelancerHandler(responder, logger),
		Customers:   handler.NewCustomerHandler(responder, logger),
		Projects:    handler.NewProjectHandler(responder, logger),
		Tasks:       handler.NewTaskHandler(responder, logger),
		Links:       handler.NewLinkHandler(responder, logger),
		Events:      handler.NewEventsHandler(feed, sse.DefaultConfig(), responder, logger),
	})

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Logging → Recovery → Session → Routes
	h = middleware.RequireSession(&middleware.SessionConfig{
		Sessions:   sessionService,
		Factory:    factory,
		CookieName: cfg.SessionCookie,
		Secure:     cfg.SecureCookies(),
		Logger:     logger,
	})(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestLogger(logger)(h)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Last-Event-ID"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disabled to allow long-lived SSE streams
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		sweepSessions(gctx, sessionRepo, logger)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// sweepSessions deletes expired sessions until ctx is done
func sweepSessions(ctx context.Context, sessions repositories.SessionRepository, logger *slog.Logger) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := sessions.DeleteExpired(ctx, now)
			if err != nil {
				logger.Warn("session sweep failed", "error", err)
				continue
			}
			if n > 0 {
				logger.Info("expired sessions deleted", "count", n)
			}
		}
	}
}
