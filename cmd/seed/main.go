package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"freelancedesk/internal/auth"
	"freelancedesk/internal/config"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/repositories"
	"freelancedesk/internal/repository/graphql"
	"freelancedesk/internal/repository/memory"
	"freelancedesk/internal/repository/postgres"
	"freelancedesk/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	file := flag.String("file", "", "YAML fixture to load (default: embedded demo fixture)")
	identifier := flag.String("identifier", os.Getenv("SEED_IDENTIFIER"), "API login identifier")
	password := flag.String("password", os.Getenv("SEED_PASSWORD"), "API login password")
	token := flag.String("token", os.Getenv("SEED_TOKEN"), "API token (instead of identifier/password)")
	dryRun := flag.Bool("dry-run", false, "Apply the fixture to an in-memory API and report what would be created")
	schemaOnly := flag.Bool("schema-only", false, "Only create the session table in DATABASE_URL")
	clearSessions := flag.Bool("clear-sessions", false, "Delete all stored sessions")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *clearSessions {
		log.Fatalf("🚫 BLOCKED: Cannot run --clear-sessions in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *schemaOnly || *clearSessions {
		if err := prepareSessions(ctx, cfg, *clearSessions, logger); err != nil {
			log.Fatalf("Failed to prepare session storage: %v", err)
		}
		return
	}

	fixture, err := seed.Load(*file)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}

	var gw repositories.Gateway
	if *dryRun {
		log.Printf("🧪 Dry run against the in-memory API")
		gw = memory.NewStore(cfg.PageSize).Gateway()
	} else {
		if cfg.InMemoryAPI() {
			log.Fatalf("GRAPHQL_URL is not set; use --dry-run to check a fixture without an API")
		}
		log.Printf("🌱 Seeding %s (environment: %s)", cfg.GraphQLURL, cfg.Environment)
		gw, err = openGateway(ctx, cfg, *identifier, *password, *token, logger)
		if err != nil {
			log.Fatalf("Failed to open API session: %v", err)
		}
	}

	report, err := seed.NewSeeder(gw, logger).Apply(ctx, fixture)
	if err != nil {
		log.Fatalf("❌ Seeding stopped: %v (created so far: %+v)", err, *report)
	}

	log.Printf("🎉 Seeding complete: %d freelancers, %d customers, %d projects, %d tasks, %d links",
		report.Freelancers, report.Customers, report.Projects, report.Tasks, report.Links)
}

// openGateway logs in (or uses the given token) and returns a gateway acting as that user
func openGateway(ctx context.Context, cfg *config.Config, identifier, password, token string, logger *slog.Logger) (repositories.Gateway, error) {
	clientCfg := &graphql.ClientConfig{
		Endpoint: cfg.GraphQLURL,
		Timeout:  cfg.GraphQLTimeout,
		PageSize: cfg.PageSize,
		Logger:   logger,
	}

	session := &models.Session{Token: token}
	if token == "" {
		t, user, err := graphql.NewAuthenticator(clientCfg).Login(ctx, identifier, password)
		if err != nil {
			return nil, err
		}
		session.Token = t
		session.User = *user
	}

	inspector, err := auth.NewTokenInspector(cfg, logger)
	if err != nil {
		return nil, err
	}
	defer inspector.Close()
	if _, err := inspector.Inspect(session.Token); err != nil {
		return nil, err
	}

	return graphql.NewGatewayFactory(clientCfg)(session), nil
}

// prepareSessions ensures the session table and optionally empties it
func prepareSessions(ctx context.Context, cfg *config.Config, clear bool, logger *slog.Logger) error {
	if cfg.DatabaseURL == "" {
		log.Printf("DATABASE_URL is not set; sessions are kept in memory")
		return nil
	}

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)
	log.Println("📋 Ensuring session schema is up to date...")
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		return err
	}
	log.Println("✅ Schema ready")

	if clear {
		sessions := postgres.NewSessionRepository(&postgres.RepositoryConfig{Pool: pool, Tables: tables, Logger: logger})
		// Every session expires before the far future.
		n, err := sessions.DeleteExpired(ctx, time.Now().AddDate(100, 0, 0))
		if err != nil {
			return err
		}
		log.Printf("🧹 Deleted %d sessions", n)
	}
	return nil
}
