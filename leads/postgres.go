package leads

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresStore writes submissions to the hosted database.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore wraps an open connection pool.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) SaveBuyer(ctx context.Context, b BuyerSubmission) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO buyer_form_submissions (
			full_name, email, linkedin, how_can_we_help, primary_asset,
			primary_asset_other, target_budget, deal_url, how_found, stage, service_needed
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		b.FullName, b.Email, b.LinkedIn, b.HowCanWeHelp, b.PrimaryAsset,
		b.PrimaryAssetOther, b.TargetBudget, b.DealURL, b.HowFound, b.Stage, b.ServiceNeeded)
	return err
}

func (s *PostgresStore) SaveSeller(ctx context.Context, sub SellerSubmission) error {
	var helpWith interface{}
	if len(sub.HelpWith) > 0 {
		helpWith = pq.Array(sub.HelpWith)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO seller_form_submissions (
			full_name, email, linkedin, asset_url, primary_asset, primary_asset_other,
			project_age, avg_monthly_profit, planning_to_sell, help_with, additional_details
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		sub.FullName, sub.Email, sub.LinkedIn, sub.AssetURL, sub.PrimaryAsset, sub.PrimaryAssetOther,
		sub.ProjectAge, sub.AvgMonthlyProfit, sub.PlanningToSell, helpWith, sub.AdditionalDetails)
	return err
}
