package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jgoulah/rentaldash/internal/config"
)

func TestListHonorsDotEnvDBPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	// registers a restore of the variable, then leaves it unset for .env to fill
	t.Setenv(config.EnvDB, "unused")
	os.Unsetenv(config.EnvDB)

	want := filepath.Join(dir, "from-dotenv.db")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(config.EnvDB+"="+want+"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfgFile = filepath.Join(dir, "config.yaml")
	dbPath = ""
	t.Cleanup(func() { cfgFile = "" })

	if err := runList(listCmd, nil); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected database at %s: %v", want, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "rentals.db")); err == nil {
		t.Error("default database path should not be used when .env sets one")
	}
}
