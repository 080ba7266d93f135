package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)
}

func TestRunProducesReport(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)
	cfg.Duration = 50 * time.Millisecond
	cfg.Entities = 200
	cfg.ChurnRate = 0.1
	cfg.LogLevel = "error"
	cfg.LogFormat = "json"
	require.NoError(t, cfg.validate())

	report, err := simulate(context.Background(), cfg)
	require.NoError(t, err)

	assert.Positive(t, report.TotalUpdates)
	require.NotNil(t, report.Scene)
	assert.Equal(t, componentKinds, report.Components)
	assert.Equal(t, 5, report.Systems)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	assert.Contains(t, buf.String(), "# ECS Stress Test Report")
	assert.Contains(t, buf.String(), "MovementSystem")
	assert.Contains(t, buf.String(), "main.Position")
}
