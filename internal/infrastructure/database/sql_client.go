package database

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"proposal_catalog/internal/adapter/persistence/repository"
	"proposal_catalog/internal/config"
)

const (
	fixturesDSN    = "file:catalog_fixtures?mode=memory&cache=shared"
	connectRetries = 5
	retryDelay     = 2 * time.Second
)

var (
	ErrInvalidStoreURL = errors.New("invalid catalog store url")
	// ErrEphemeralStore is returned by setup commands pointed at the fixtures
	// store, which only lives inside a serving process.
	ErrEphemeralStore = errors.New("the fixtures catalog lives in memory and is migrated and seeded by serve")
)

// ConnectCatalogStore opens the gorm connection selected by cfg.CatalogSource.
// The remote store is retried a few times before giving up; the fixtures
// store is an in-memory SQLite database.
func ConnectCatalogStore(cfg config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel(cfg.DBDebug))}

	if cfg.CatalogSource == config.SourceFixtures {
		db, err := gorm.Open(sqlite.Open(fixturesDSN), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open fixtures store: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// the shared in-memory database lives as long as one connection does
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		log.Printf("[database] using fixtures store")
		return db, nil
	}

	dsn, err := PostgresDSN(cfg.StoreURL, cfg.StoreKey)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	for i := 0; i < connectRetries; i++ {
		db, err = gorm.Open(postgres.Open(dsn), gcfg)
		if err == nil {
			break
		}
		log.Printf("[database] connect attempt=%d failed: %v", i+1, err)
		time.Sleep(retryDelay)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect catalog store after retries: %w", err)
	}
	if err := db.Exec("SELECT 1").Error; err != nil {
		return nil, fmt.Errorf("catalog store ping failed: %w", err)
	}

	log.Printf("[database] using catalog store %s", MaskDSN(dsn))
	return db, nil
}

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) error {
	for _, m := range repository.Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	for _, table := range []string{"cities", "clients", "products", "add_ons"} {
		if !db.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}

// MigrateHosted prepares a remote catalog store. The catalog tables belong
// to the hosted schema and are only created when missing; existing ones are
// left untouched. The proposals table is migrated when withProposals is set.
func MigrateHosted(db *gorm.DB, withProposals bool) error {
	for _, m := range repository.CatalogModels() {
		if db.Migrator().HasTable(m) {
			continue
		}
		log.Printf("[database] creating missing catalog table for %T", m)
		if err := db.Migrator().CreateTable(m); err != nil {
			return fmt.Errorf("create %T: %w", m, err)
		}
	}
	if withProposals {
		if err := db.AutoMigrate(repository.ProposalModel()); err != nil {
			return fmt.Errorf("automigrate proposals: %w", err)
		}
	}
	return nil
}

// PostgresDSN combines the store URL with the access key, which becomes the
// connection password. A URL without a user connects as postgres.
func PostgresDSN(storeURL, key string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(storeURL))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidStoreURL, err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidStoreURL, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidStoreURL)
	}

	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, key)

	q := u.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "require")
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// MaskDSN hides the password of a URL-form DSN for logging.
func MaskDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxx")
	}
	return u.String()
}

func logLevel(debug bool) logger.LogLevel {
	if debug {
		return logger.Info
	}
	return logger.Silent
}
