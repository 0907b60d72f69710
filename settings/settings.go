// Package settings resolves the SEO and tracking-pixel configuration stored
// in the hosted site_settings table. Every request gets an independently
// resolved snapshot; there is no global mutable state.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrUnavailable is returned from writes when no database is configured.
var ErrUnavailable = errors.New("settings: database not configured")

// settingsRowID is the fixed primary key of the single settings row.
const settingsRowID = "00000000-0000-0000-0000-000000000001"

// lookupTimeout bounds the per-request settings read so a slow database
// cannot hang a page render.
const lookupTimeout = 5 * time.Second

// Seo holds the site-wide SEO and tracking configuration.
type Seo struct {
	GA4MeasurementID         string
	GoogleSiteVerification   string
	BingSiteVerification     string
	AIOptimizationEnabled    bool
	AllowAITraining          bool
	GTMContainerID           string
	FacebookPixelID          string
	TikTokPixelID            string
	GoogleAdsConversionID    string
	GoogleAdsConversionLabel string
	MetaTitleOverride        string
	MetaDescriptionOverride  string
}

// Service reads and writes the settings row. db may be nil, in which case
// reads return the defaults and writes fail with ErrUnavailable.
type Service struct {
	db       *sqlx.DB
	defaults Seo
	log      *slog.Logger
}

// NewService builds a Service. defaults should carry env-seeded values
// (verification IDs, GA4 ID) so the site works without a database.
func NewService(db *sqlx.DB, defaults Seo, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	defaults.AIOptimizationEnabled = true
	defaults.AllowAITraining = true
	return &Service{db: db, defaults: defaults, log: log}
}

// Defaults returns the static fallback snapshot.
func (s *Service) Defaults() Seo {
	return s.defaults
}

type seoRow struct {
	GA4MeasurementID         sql.NullString `db:"ga4_measurement_id"`
	GoogleSiteVerification   sql.NullString `db:"google_site_verification"`
	BingSiteVerification     sql.NullString `db:"bing_site_verification"`
	AIOptimizationEnabled    sql.NullBool   `db:"ai_optimization_enabled"`
	AllowAITraining          sql.NullBool   `db:"allow_ai_training"`
	GTMContainerID           sql.NullString `db:"gtm_container_id"`
	FacebookPixelID          sql.NullString `db:"facebook_pixel_id"`
	TikTokPixelID            sql.NullString `db:"tiktok_pixel_id"`
	GoogleAdsConversionID    sql.NullString `db:"google_ads_conversion_id"`
	GoogleAdsConversionLabel sql.NullString `db:"google_ads_conversion_label"`
	MetaTitleOverride        sql.NullString `db:"meta_title_override"`
	MetaDescriptionOverride  sql.NullString `db:"meta_description_override"`
}

// Current fetches the settings row with a bounded timeout. Any failure
// (unconfigured database, timeout, query error, missing row) yields the
// defaults; pages never fail because tracking configuration is unreachable.
func (s *Service) Current(ctx context.Context) Seo {
	if s.db == nil {
		return s.defaults
	}
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	var row seoRow
	err := s.db.GetContext(ctx, &row, `
		SELECT ga4_measurement_id, google_site_verification, bing_site_verification,
		       ai_optimization_enabled, allow_ai_training, gtm_container_id,
		       facebook_pixel_id, tiktok_pixel_id, google_ads_conversion_id,
		       google_ads_conversion_label, meta_title_override, meta_description_override
		FROM site_settings WHERE id = $1`, settingsRowID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Warn("settings lookup failed, using defaults", "err", err)
		}
		return s.defaults
	}

	seo := Seo{
		GA4MeasurementID:         row.GA4MeasurementID.String,
		GoogleSiteVerification:   row.GoogleSiteVerification.String,
		BingSiteVerification:     row.BingSiteVerification.String,
		AIOptimizationEnabled:    true,
		AllowAITraining:          true,
		GTMContainerID:           row.GTMContainerID.String,
		FacebookPixelID:          row.FacebookPixelID.String,
		TikTokPixelID:            row.TikTokPixelID.String,
		GoogleAdsConversionID:    row.GoogleAdsConversionID.String,
		GoogleAdsConversionLabel: row.GoogleAdsConversionLabel.String,
		MetaTitleOverride:        row.MetaTitleOverride.String,
		MetaDescriptionOverride:  row.MetaDescriptionOverride.String,
	}
	// The toggles default to on; only an explicit false disables them.
	if row.AIOptimizationEnabled.Valid {
		seo.AIOptimizationEnabled = row.AIOptimizationEnabled.Bool
	}
	if row.AllowAITraining.Valid {
		seo.AllowAITraining = row.AllowAITraining.Bool
	}
	if seo.GoogleSiteVerification == "" {
		seo.GoogleSiteVerification = s.defaults.GoogleSiteVerification
	}
	if seo.BingSiteVerification == "" {
		seo.BingSiteVerification = s.defaults.BingSiteVerification
	}
	return seo
}

// Update upserts the settings row. Requires a configured database.
func (s *Service) Update(ctx context.Context, seo Seo) error {
	if s.db == nil {
		return ErrUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO site_settings (
			id, ga4_measurement_id, google_site_verification, bing_site_verification,
			ai_optimization_enabled, allow_ai_training, gtm_container_id,
			facebook_pixel_id, tiktok_pixel_id, google_ads_conversion_id,
			google_ads_conversion_label, meta_title_override, meta_description_override, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		ON CONFLICT (id) DO UPDATE SET
			ga4_measurement_id = EXCLUDED.ga4_measurement_id,
			google_site_verification = EXCLUDED.google_site_verification,
			bing_site_verification = EXCLUDED.bing_site_verification,
			ai_optimization_enabled = EXCLUDED.ai_optimization_enabled,
			allow_ai_training = EXCLUDED.allow_ai_training,
			gtm_container_id = EXCLUDED.gtm_container_id,
			facebook_pixel_id = EXCLUDED.facebook_pixel_id,
			tiktok_pixel_id = EXCLUDED.tiktok_pixel_id,
			google_ads_conversion_id = EXCLUDED.google_ads_conversion_id,
			google_ads_conversion_label = EXCLUDED.google_ads_conversion_label,
			meta_title_override = EXCLUDED.meta_title_override,
			meta_description_override = EXCLUDED.meta_description_override,
			updated_at = NOW()`,
		settingsRowID,
		seo.GA4MeasurementID, seo.GoogleSiteVerification, seo.BingSiteVerification,
		seo.AIOptimizationEnabled, seo.AllowAITraining, seo.GTMContainerID,
		seo.FacebookPixelID, seo.TikTokPixelID, seo.GoogleAdsConversionID,
		seo.GoogleAdsConversionLabel, seo.MetaTitleOverride, seo.MetaDescriptionOverride)
	return err
}
