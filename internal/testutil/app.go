// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/thenoetrevino/sage/internal/app"
	"github.com/thenoetrevino/sage/internal/database"
	"github.com/thenoetrevino/sage/internal/logging"
	"github.com/thenoetrevino/sage/internal/store"
	"github.com/thenoetrevino/sage/internal/types"
)

// SequentialIDs returns a generator producing id-1, id-2, ...
func SequentialIDs() types.IDGenerator {
	n := 0
	return types.IDGeneratorFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

// NewApp creates an App over kv, or over a fresh memory store when kv is
// nil. It is closed when the test ends.
func NewApp(t *testing.T, kv database.KeyValueStore, opts ...app.Option) *app.App {
	t.Helper()
	if kv == nil {
		kv = database.NewMemoryStore()
	}

	ids := SequentialIDs()
	opts = append([]app.Option{app.WithIDGenerator(ids), app.WithLogger(logging.Discard())}, opts...)
	a, err := app.New(context.Background(), store.New(kv, ids), opts...)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}
