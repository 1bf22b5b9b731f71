package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	dormalloc "github.com/javdevA/SmartDormCapstonePro"
	"github.com/javdevA/SmartDormCapstonePro/internal/logger"
)

func TestRun(t *testing.T) {
	t.Run("prints a comparison and simulation", func(t *testing.T) {
		cfg := dormalloc.TestConfig()
		var out bytes.Buffer

		err := run(context.Background(), &cfg, logger.NewTest(t), &out, 20, 5, false)

		require.NoError(t, err)
		require.Contains(t, out.String(), "Smart Greedy")
		require.Contains(t, out.String(), "Random")
		require.Contains(t, out.String(), "Priority-first")
		require.Contains(t, out.String(), "Simulation (5 trials)")
	})

	t.Run("serves metrics when enabled", func(t *testing.T) {
		cfg := dormalloc.TestConfig()
		cfg.Metrics.Enabled = true
		cfg.Metrics.Addr = "127.0.0.1:0"
		var out bytes.Buffer

		err := run(context.Background(), &cfg, logger.NewTest(t), &out, 10, 2, false)

		require.NoError(t, err)
	})
}
