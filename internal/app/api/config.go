package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sushikitos/cart-api/internal/domains/shipping/domain"
	"github.com/sushikitos/cart-api/internal/platform/geo"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port                string
	CartStatePath       string
	PersistenceDisabled bool
	CatalogPath         string
	VendorName          string
	WhatsAppRecipient   string
	Store               geo.Coordinate
	ShippingPolicy      domain.Policy
	ClientLocation      *geo.Coordinate
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:                envDefault("PORT", "8080"),
		CartStatePath:       envDefault("CART_STATE_PATH", "data/cart.json"),
		PersistenceDisabled: isTruthy(os.Getenv("CART_PERSISTENCE_DISABLED")),
		CatalogPath:         strings.TrimSpace(os.Getenv("CATALOG_PATH")),
		VendorName:          envDefault("VENDOR_NAME", "Sushikitos"),
		WhatsAppRecipient:   envDefault("WHATSAPP_RECIPIENT", "5218110729156"),
		ShippingPolicy:      domain.DefaultPolicy(),
	}

	var err error
	if cfg.Store.Latitude, err = floatEnv("STORE_LATITUDE", 25.9135505); err != nil {
		return Config{}, err
	}
	if cfg.Store.Longitude, err = floatEnv("STORE_LONGITUDE", -100.2418437); err != nil {
		return Config{}, err
	}
	if cfg.ShippingPolicy.NearRadiusKm, err = floatEnv("SHIPPING_NEAR_RADIUS_KM", cfg.ShippingPolicy.NearRadiusKm); err != nil {
		return Config{}, err
	}
	if cfg.ShippingPolicy.NearCost, err = decimalEnv("SHIPPING_NEAR_COST", cfg.ShippingPolicy.NearCost); err != nil {
		return Config{}, err
	}
	if cfg.ShippingPolicy.StandardCost, err = decimalEnv("SHIPPING_STANDARD_COST", cfg.ShippingPolicy.StandardCost); err != nil {
		return Config{}, err
	}
	if err := cfg.ShippingPolicy.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid shipping policy: %w", err)
	}

	cfg.ClientLocation, err = optionalCoordinate("CLIENT_LATITUDE", "CLIENT_LONGITUDE")
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}

func floatEnv(key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return value, nil
}

func decimalEnv(key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s must be a decimal amount: %w", key, err)
	}
	return value, nil
}

// optionalCoordinate reads a lat/lng pair; both must be present or both absent.
func optionalCoordinate(latKey, lngKey string) (*geo.Coordinate, error) {
	latRaw := strings.TrimSpace(os.Getenv(latKey))
	lngRaw := strings.TrimSpace(os.Getenv(lngKey))
	if latRaw == "" && lngRaw == "" {
		return nil, nil
	}
	if latRaw == "" || lngRaw == "" {
		return nil, fmt.Errorf("%s and %s must be set together", latKey, lngKey)
	}
	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number: %w", latKey, err)
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number: %w", lngKey, err)
	}
	return &geo.Coordinate{Latitude: lat, Longitude: lng}, nil
}
