package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	SourceRemote   = "remote"
	SourceFixtures = "fixtures"

	ProposalStoreSQL    = "sql"
	ProposalStoreDynamo = "dynamodb"
)

var (
	ErrMissingStoreURL      = errors.New("missing CATALOG_STORE_URL")
	ErrMissingStoreKey      = errors.New("missing CATALOG_STORE_KEY")
	ErrInvalidCatalogSource = errors.New("invalid CATALOG_SOURCE")
	ErrInvalidProposalStore = errors.New("invalid PROPOSAL_STORE")
	ErrInvalidPort          = errors.New("invalid PORT")
)

// Config is read once at startup from the process environment. A .env file
// is loaded first by godotenv/autoload in main.
type Config struct {
	Port           int
	CatalogSource  string
	StoreURL       string
	StoreKey       string
	ProposalStore  string
	ProposalsTable string
	DBDebug        bool
}

// Load reads the environment. For a remote-backed deployment the store URL
// and access key are mandatory and their absence is returned as an error.
func Load() (Config, error) {
	cfg := Config{
		CatalogSource:  strings.ToLower(getEnv("CATALOG_SOURCE", SourceRemote)),
		StoreURL:       strings.TrimSpace(os.Getenv("CATALOG_STORE_URL")),
		StoreKey:       strings.TrimSpace(os.Getenv("CATALOG_STORE_KEY")),
		ProposalStore:  strings.ToLower(getEnv("PROPOSAL_STORE", ProposalStoreSQL)),
		ProposalsTable: getEnv("PROPOSALS_TABLE", "proposals"),
		DBDebug:        ParseBool("DB_DEBUG", false),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidPort, os.Getenv("PORT"))
	}
	cfg.Port = port

	switch cfg.CatalogSource {
	case SourceRemote:
		if cfg.StoreURL == "" {
			return Config{}, ErrMissingStoreURL
		}
		if cfg.StoreKey == "" {
			return Config{}, ErrMissingStoreKey
		}
	case SourceFixtures:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidCatalogSource, cfg.CatalogSource)
	}

	switch cfg.ProposalStore {
	case ProposalStoreSQL, ProposalStoreDynamo:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidProposalStore, cfg.ProposalStore)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("[config] invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
