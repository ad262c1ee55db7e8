package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	cartserver "github.com/sushikitos/cart-api/server"

	cartcatalog "github.com/sushikitos/cart-api/internal/domains/cart/adapters/catalog"
	cartmemory "github.com/sushikitos/cart-api/internal/domains/cart/adapters/memory"
	cartnotification "github.com/sushikitos/cart-api/internal/domains/cart/adapters/notification"
	cartobs "github.com/sushikitos/cart-api/internal/domains/cart/adapters/observability"
	cartfile "github.com/sushikitos/cart-api/internal/domains/cart/adapters/persistence/file"
	cartapp "github.com/sushikitos/cart-api/internal/domains/cart/application"
	cartports "github.com/sushikitos/cart-api/internal/domains/cart/ports"
	platformobservability "github.com/sushikitos/cart-api/internal/platform/observability"

	catalogfile "github.com/sushikitos/cart-api/internal/domains/catalog/adapters/file"
	catalogmemory "github.com/sushikitos/cart-api/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/sushikitos/cart-api/internal/domains/catalog/application"

	shippinglocator "github.com/sushikitos/cart-api/internal/domains/shipping/adapters/locator"
	shippingapp "github.com/sushikitos/cart-api/internal/domains/shipping/application"
	shippingports "github.com/sushikitos/cart-api/internal/domains/shipping/ports"

	orderswhatsapp "github.com/sushikitos/cart-api/internal/domains/orders/adapters/whatsapp"
	ordersapp "github.com/sushikitos/cart-api/internal/domains/orders/application"
)

// Run boots the cart HTTP API with observability, repositories, and the
// startup location probe wired.
func Run(ctx context.Context) error {
	const serviceName = "cart-api"
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	catalogService := catalogapp.NewService(buildCatalogRepository(cfg, logger))

	shippingService, err := shippingapp.NewService(cfg.ShippingPolicy, cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("failed to build shipping service: %w", err)
	}
	probe := shippingapp.NewProbe(buildLocator(cfg, logger), shippingService, logger)

	coreCartService := cartapp.NewService(
		buildCartRepository(cfg, logger),
		cartcatalog.NewLookup(catalogService),
		shippingService,
		cartapp.WithNotifier(cartnotification.NewLogNotifier(logger)),
	)
	if err := coreCartService.Restore(ctx); err != nil {
		logger.Warn("stored cart state discarded, starting empty", slog.String("error", err.Error()))
	}
	cartService := cartobs.New(
		coreCartService,
		cartobs.WithLogger(logger),
		cartobs.WithTracer(instruments.Tracer("internal.cart.application")),
		cartobs.WithMeter(instruments.Meter("internal.cart.application")),
	)

	orderService := ordersapp.NewService(cartService, orderswhatsapp.NewDeepLink(cfg.WhatsAppRecipient), cfg.VendorName)

	probe.Start(ctx)

	handlers := cartserver.ApiHandleFunctions{
		CartAPI:     cartserver.NewCartAPI(cartService),
		CatalogAPI:  cartserver.NewCatalogAPI(catalogService),
		ShippingAPI: cartserver.NewShippingAPI(shippingService),
		OrderAPI:    cartserver.NewOrderAPI(orderService),
	}

	router := cartserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("cart API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("cart API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildCartRepository(cfg Config, logger *slog.Logger) cartports.Repository {
	if cfg.PersistenceDisabled {
		logger.Warn("cart persistence disabled, state will not survive restarts")
		return cartmemory.NewRepository()
	}
	logger.Info("cart repository configured with file storage", slog.String("path", cfg.CartStatePath))
	return cartfile.NewRepository(cfg.CartStatePath)
}

func buildCatalogRepository(cfg Config, logger *slog.Logger) *catalogmemory.Repository {
	if cfg.CatalogPath == "" {
		logger.Warn("CATALOG_PATH not set, falling back to the built-in menu")
		return catalogmemory.NewSeededRepository()
	}
	products, err := catalogfile.LoadProducts(cfg.CatalogPath)
	if err != nil {
		logger.Warn("failed to load catalog file, falling back to the built-in menu", slog.String("error", err.Error()))
		return catalogmemory.NewSeededRepository()
	}
	logger.Info("catalog loaded", slog.String("path", cfg.CatalogPath), slog.Int("products", len(products)))
	return catalogmemory.NewRepository(products...)
}

func buildLocator(cfg Config, logger *slog.Logger) shippingports.Locator {
	if cfg.ClientLocation == nil {
		return nil
	}
	logger.Info("static client location configured for the startup probe")
	return shippinglocator.Static{Coordinate: *cfg.ClientLocation}
}
