package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensorplex-labs/cutoff/internal/threshold"
)

func TestResolveStrategies(t *testing.T) {
	got, err := resolveStrategies("", "")
	require.NoError(t, err)
	assert.Equal(t, threshold.Strategies, got)

	got, err = resolveStrategies("", "ALL")
	require.NoError(t, err)
	assert.Equal(t, threshold.Strategies, got)

	got, err = resolveStrategies("youden-j", "gmean")
	require.NoError(t, err)
	assert.Equal(t, []threshold.Strategy{threshold.YoudenJ}, got)

	got, err = resolveStrategies("", "f-score-grid")
	require.NoError(t, err)
	assert.Equal(t, []threshold.Strategy{threshold.FScoreGrid}, got)

	_, err = resolveStrategies("precision", "")
	assert.ErrorIs(t, err, threshold.ErrUnknownStrategy)
}

func TestTopIgnored(t *testing.T) {
	assert.False(t, topIgnored("", 5))
	assert.False(t, topIgnored("http://localhost:8890", 0))
	assert.True(t, topIgnored("http://localhost:8890", 5))
}
