package main

import (
	"context"
	"errors"
	"testing"

	"gassist/config"
	"gassist/provider/testutil"
)

func TestCheckConnectivityDebugOnly(t *testing.T) {
	orig := config.Debug
	t.Cleanup(func() { config.Debug = orig })

	mock := testutil.NewMockProvider("mock-model")
	pings := 0
	mock.PingFunc = func(ctx context.Context) error {
		pings++
		return nil
	}

	config.Debug = false
	checkConnectivity(context.Background(), mock)
	if pings != 0 {
		t.Errorf("ping called %d times with debug off, want 0", pings)
	}

	config.Debug = true
	checkConnectivity(context.Background(), mock)
	if pings != 1 {
		t.Errorf("ping called %d times with debug on, want 1", pings)
	}
}

func TestCheckConnectivityFailureIsNonFatal(t *testing.T) {
	orig := config.Debug
	t.Cleanup(func() { config.Debug = orig })
	config.Debug = true

	mock := testutil.NewMockProvider("mock-model")
	mock.PingFunc = func(ctx context.Context) error {
		return errors.New("connection refused")
	}

	// Must return normally; a dead provider only produces a warning.
	checkConnectivity(context.Background(), mock)
}
