package testsupport

import (
	"testing"

	"curator/internal/config"
	"curator/internal/model"
)

// MustOpenStore opens the state store for the given config and registers its
// cleanup with the test.
func MustOpenStore(t testing.TB, cfg *config.Config) *model.Store {
	t.Helper()

	store, err := model.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}
