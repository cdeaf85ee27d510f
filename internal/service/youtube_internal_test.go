package service

import (
	"context"
	"testing"

	"podcastflow-backend/internal/config"
	apperrors "podcastflow-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseCount(t *testing.T) {
	assert.Equal(t, int64(0), parseCount(""))
	assert.Equal(t, int64(0), parseCount("not a number"))
	assert.Equal(t, int64(0), parseCount("0"))
	assert.Equal(t, int64(12345), parseCount("12345"))
	assert.Equal(t, int64(9876543210), parseCount("9876543210"))
	// The API never sends negatives but a malformed value must not panic
	assert.Equal(t, int64(-1), parseCount("-1"))
}

func TestGetVideoStatsWithoutAPIKey(t *testing.T) {
	svc := NewYouTubeService(&config.Config{})

	stats, err := svc.GetVideoStats(context.Background(), []string{"dQw4w9WgXcQ"})

	assert.ErrorIs(t, err, apperrors.ErrYouTubeNotConfigured)
	assert.Nil(t, stats)
}
