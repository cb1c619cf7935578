package main

import (
	"errors"
	"testing"

	"proposal_catalog/internal/infrastructure/database"
)

func TestRootCommand(t *testing.T) {
	cmd := rootCmd()
	for _, name := range []string{"serve", "migrate", "seed"} {
		sub, _, err := cmd.Find([]string{name})
		if err != nil || sub.Name() != name {
			t.Fatalf("expected %s subcommand, got %v %v", name, sub, err)
		}
	}
}

func TestSeed_MissingConfigurationIsFatal(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "remote")
	t.Setenv("CATALOG_STORE_URL", "")
	t.Setenv("CATALOG_STORE_KEY", "")

	cmd := rootCmd()
	cmd.SetArgs([]string{"seed"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected configuration error")
	}
}

func TestSetupCommands_RejectFixturesSource(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "fixtures")
	t.Setenv("PROPOSAL_STORE", "sql")
	t.Setenv("PORT", "8080")

	for _, name := range []string{"seed", "migrate"} {
		t.Run(name, func(t *testing.T) {
			cmd := rootCmd()
			cmd.SetArgs([]string{name})
			if err := cmd.Execute(); !errors.Is(err, database.ErrEphemeralStore) {
				t.Fatalf("expected ErrEphemeralStore, got %v", err)
			}
		})
	}
}
