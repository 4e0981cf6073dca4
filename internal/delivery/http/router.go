package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/rohithkumar4855/smartposBillingSystem/internal/config"
	analyticshandler "github.com/rohithkumar4855/smartposBillingSystem/internal/delivery/http/handler/analytics"
	authhandler "github.com/rohithkumar4855/smartposBillingSystem/internal/delivery/http/handler/auth"
	invoicehandler "github.com/rohithkumar4855/smartposBillingSystem/internal/delivery/http/handler/invoice"
	producthandler "github.com/rohithkumar4855/smartposBillingSystem/internal/delivery/http/handler/product"
	storehandler "github.com/rohithkumar4855/smartposBillingSystem/internal/delivery/http/handler/store"
	"github.com/rohithkumar4855/smartposBillingSystem/internal/delivery/middleware"
	analyticsrepo "github.com/rohithkumar4855/smartposBillingSystem/internal/repository/postgres/analytics"
	invoicerepo "github.com/rohithkumar4855/smartposBillingSystem/internal/repository/postgres/invoice"
	productrepo "github.com/rohithkumar4855/smartposBillingSystem/internal/repository/postgres/product"
	storerepo "github.com/rohithkumar4855/smartposBillingSystem/internal/repository/postgres/store"
	analyticsuc "github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/analytics"
	authuc "github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/auth"
	invoiceuc "github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/invoice"
	productuc "github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/product"
	storeuc "github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/store"
)

func RegisterRoutes(app *fiber.App, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	api := app.Group("/api")

	// Stores wiring
	stRepo := storerepo.NewStoreRepo(db)
	stDir := storerepo.NewStoreDirectoryAdapter(stRepo)
	stUC := storeuc.New(stDir)
	stH := storehandler.New(stUC)

	// Auth wiring
	finder := &storeFinderAdapter{repo: stRepo}
	aUC := authuc.New(finder, cfg.JWTSecret, cfg.JWTExpiresMinutes)
	aH := authhandler.New(aUC)

	// Products wiring
	pRepo := productrepo.NewProductRepo(db)
	pCatalog := productrepo.NewCatalogAdapter(pRepo)
	pUC := productuc.New(pCatalog)
	pH := producthandler.New(pUC)

	// Invoices wiring
	iRepo := invoicerepo.NewInvoiceRepo(db)
	iStore := invoicerepo.NewInvoiceStoreAdapter(iRepo)
	iUC := invoiceuc.New(iStore)
	iH := invoicehandler.New(iUC)

	// Analytics wiring
	anRepo := analyticsrepo.NewAnalyticsRepo(db)
	anUC := analyticsuc.New(anRepo)
	anH := analyticshandler.New(anUC)

	// Auth routes (OTP endpoints rate limited)
	limited := middleware.RateLimiter(rdb)
	api.Post("/auth/register", stH.Register)
	api.Post("/auth/verify-phone", limited, aH.VerifyPhone)
	api.Post("/auth/login", limited, aH.Login)

	// Session probe for the JWT issued at login
	storeJWT := middleware.RequireStoreJWT(middleware.JWTConfig{Secret: cfg.JWTSecret})
	api.Get("/auth/me", storeJWT, stH.Me)

	// Store management (platform admin)
	admin := middleware.RequireAdminToken(cfg.AdminToken)
	api.Post("/stores/register", stH.Register)
	api.Get("/stores/getall", admin, stH.List)
	api.Get("/stores/:storeId/invoices", iH.ListByStore)
	api.Get("/stores/:storeId", admin, stH.GetByID)
	api.Put("/stores/:storeId", admin, stH.Update)
	api.Delete("/stores/:storeId", admin, stH.Delete)

	// Product catalog (store API key)
	apiKey := middleware.RequireAPIKey(stRepo)
	api.Post("/products", apiKey, pH.Create)
	api.Get("/products/item/:productId", apiKey, pH.GetByID)
	api.Patch("/products/stock/:productId", apiKey, pH.AdjustStock)
	api.Get("/products/:storeId", apiKey, pH.ListByStore)
	api.Put("/products/:productId", apiKey, pH.Update)
	api.Delete("/products/:id", apiKey, pH.Delete)

	// Invoices
	api.Post("/invoices", iH.Create)
	api.Get("/invoices/:invoiceId", iH.GetByID)
	api.Patch("/invoices/:invoiceId/status", iH.UpdateStatus)

	// Customer analytics
	api.Get("/customers", anH.ListCustomers)
	api.Get("/customers/repeat", anH.RepeatCustomers)
	api.Get("/customers/new", anH.NewCustomers)
	api.Get("/invoice/average-value", anH.AverageInvoiceValue)
	api.Get("/customers/spending-trends", anH.SpendingTrends)
	api.Get("/customers/top-spenders", anH.TopCustomers)
	api.Get("/customers/loyalty-insights", anH.LoyaltyInsights)
	api.Get("/customers/details/:customerCode", anH.CustomerDetails)
	api.Get("/analytics/exports", anH.Export)
}

type storeFinderAdapter struct {
	repo *storerepo.StoreRepo
}

func (a *storeFinderAdapter) FindByPhone(ctx context.Context, phone string) (*authuc.StoreRef, error) {
	row, err := a.repo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, authuc.ErrStoreNotFound
		}
		return nil, err
	}
	return &authuc.StoreRef{ID: row.ID, StoreName: row.StoreName}, nil
}
