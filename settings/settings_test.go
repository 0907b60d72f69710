package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentWithoutDatabaseReturnsDefaults(t *testing.T) {
	svc := NewService(nil, Seo{
		GA4MeasurementID:       "G-TEST123",
		GoogleSiteVerification: "google-token",
	}, nil)

	seo := svc.Current(context.Background())

	assert.Equal(t, "G-TEST123", seo.GA4MeasurementID)
	assert.Equal(t, "google-token", seo.GoogleSiteVerification)
	assert.True(t, seo.AIOptimizationEnabled, "toggles default to on")
	assert.True(t, seo.AllowAITraining, "toggles default to on")
	assert.Empty(t, seo.FacebookPixelID)
}

func TestCurrentQueryErrorReturnsDefaults(t *testing.T) {
	// A closed pool makes every query fail without touching the network.
	db, err := sqlx.Open("postgres", "postgres://localhost/none?sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	svc := NewService(db, Seo{GA4MeasurementID: "G-TEST123"}, nil)
	seo := svc.Current(context.Background())

	assert.Equal(t, "G-TEST123", seo.GA4MeasurementID)
	assert.True(t, seo.AIOptimizationEnabled)
	assert.True(t, seo.AllowAITraining)
}

func TestNewServiceForcesDefaultToggles(t *testing.T) {
	svc := NewService(nil, Seo{AIOptimizationEnabled: false, AllowAITraining: false}, nil)
	d := svc.Defaults()
	assert.True(t, d.AIOptimizationEnabled)
	assert.True(t, d.AllowAITraining)
}

func TestUpdateWithoutDatabaseFails(t *testing.T) {
	svc := NewService(nil, Seo{}, nil)
	err := svc.Update(context.Background(), Seo{GA4MeasurementID: "G-NEW"})
	assert.True(t, errors.Is(err, ErrUnavailable))
}
