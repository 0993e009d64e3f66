package mongo

import (
	"context"
	"testing"
	"time"
)

func TestConnectCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Connect(ctx, Config{
		URI:      "mongodb://127.0.0.1:1",
		Database: "propchase_test",
	})
	if err == nil {
		t.Fatal("expected connect to fail with a canceled context")
	}
}

func TestDefaultTimeoutBoundsOperations(t *testing.T) {
	if defaultTimeout < time.Second {
		t.Fatalf("operation timeout too small to be usable: %v", defaultTimeout)
	}
}
