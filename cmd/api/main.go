package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/aryamhrt/internal-access-management-tools/internal/config"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/access"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/application"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
	appHTTP "github.com/aryamhrt/internal-access-management-tools/internal/handler/http"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/cache"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/database"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/jwt"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/oauth"
	"github.com/aryamhrt/internal-access-management-tools/internal/repository/notion"
	"github.com/aryamhrt/internal-access-management-tools/internal/repository/postgresql"
	"github.com/aryamhrt/internal-access-management-tools/internal/repository/sheets"
	accessService "github.com/aryamhrt/internal-access-management-tools/internal/service/access"
	applicationService "github.com/aryamhrt/internal-access-management-tools/internal/service/application"
	serviceAuth "github.com/aryamhrt/internal-access-management-tools/internal/service/auth"
	"github.com/aryamhrt/internal-access-management-tools/internal/service/authz"
	dashboardService "github.com/aryamhrt/internal-access-management-tools/internal/service/dashboard"
	userService "github.com/aryamhrt/internal-access-management-tools/internal/service/user"
	"github.com/redis/go-redis/v9"
)

// repositories bundles the four collections a backend must provide.
type repositories struct {
	users        user.Repository
	applications application.Repository
	requests     access.RequestRepository
	grants       access.GrantRepository
}

func buildRepositories(ctx context.Context, cfg *config.Config) (repositories, error) {
	switch cfg.Store.Backend {
	case "sheets":
		client := sheets.NewClient(cfg.Store.Sheets.BaseURL)
		return repositories{
			users:        sheets.NewUserRepository(client),
			applications: sheets.NewApplicationRepository(client),
			requests:     sheets.NewAccessRequestRepository(client),
			grants:       sheets.NewAccessRegistryRepository(client),
		}, nil
	case "notion":
		client := notion.NewClient(cfg.Store.Notion.APIKey)
		return repositories{
			users:        notion.NewUserRepository(client, cfg.Store.Notion.UsersDB),
			applications: notion.NewApplicationRepository(client, cfg.Store.Notion.ApplicationsDB),
			requests:     notion.NewAccessRequestRepository(client, cfg.Store.Notion.RequestsDB),
			grants:       notion.NewAccessRegistryRepository(client, cfg.Store.Notion.RegistryDB),
		}, nil
	case "postgres":
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.Store.Database.MaxConns, cfg.Store.Database.MinConns)
		if err != nil {
			return repositories{}, fmt.Errorf("connect to database: %w", err)
		}
		return repositories{
			users:        postgresql.NewUserRepository(db),
			applications: postgresql.NewApplicationRepository(db),
			requests:     postgresql.NewAccessRequestRepository(db),
			grants:       postgresql.NewAccessRegistryRepository(db),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported BACKEND_TYPE: %s", cfg.Store.Backend)
	}
}

func buildCache(cfg *config.Config) cache.Cache {
	if cfg.Cache.Driver == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		return cache.NewRedisCache(client, "iam")
	}
	return cache.NewMemoryCache()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	repos, err := buildRepositories(context.Background(), cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage backend: ", err)
	}
	readCache := buildCache(cfg)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	policy := authz.NewPolicy(repos.applications)
	authSvc := serviceAuth.NewAuthService(repos.users, JWTService, GoogleService)
	userSvc := userService.NewUserService(repos.users, readCache)
	applicationSvc := applicationService.NewApplicationService(repos.applications, readCache)
	accessSvc := accessService.NewAccessService(repos.requests, repos.grants, policy, readCache)
	dashboardSvc := dashboardService.NewDashboardService(repos.users, repos.applications, repos.requests, repos.grants, readCache)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, cfg.App.FrontendURL)
	userHandler := appHTTP.NewUserHandler(userSvc)
	applicationHandler := appHTTP.NewApplicationHandler(applicationSvc)
	accessRequestHandler := appHTTP.NewAccessRequestHandler(accessSvc)
	accessRegistryHandler := appHTTP.NewAccessRegistryHandler(accessSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		JWTService,
		authHandler,
		userHandler,
		applicationHandler,
		accessRequestHandler,
		accessRegistryHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
