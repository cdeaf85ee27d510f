package repository

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"podcastflow-backend/internal/testutils"
)

// TestMain ensures the shared Postgres container is purged when the
// repository tests finish or are interrupted
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
