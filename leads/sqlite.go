package leads

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps submissions in a local database file. It backs demo mode,
// where no hosted database is configured but form submissions should still
// survive a restart.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path, ensures the data
// directory exists, and creates the submission tables.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the request handlers write while reads are in flight; the busy
	// timeout makes writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &SQLiteStore{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS buyer_form_submissions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    full_name TEXT,
    email TEXT,
    linkedin TEXT,
    how_can_we_help TEXT,
    primary_asset TEXT,
    primary_asset_other TEXT,
    target_budget TEXT,
    deal_url TEXT,
    how_found TEXT,
    stage TEXT,
    service_needed TEXT,
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);
CREATE TABLE IF NOT EXISTS seller_form_submissions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    full_name TEXT,
    email TEXT,
    linkedin TEXT,
    asset_url TEXT,
    primary_asset TEXT,
    primary_asset_other TEXT,
    project_age TEXT,
    avg_monthly_profit TEXT,
    planning_to_sell TEXT,
    help_with TEXT,
    additional_details TEXT,
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`)
	return err
}

func (s *SQLiteStore) SaveBuyer(ctx context.Context, b BuyerSubmission) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO buyer_form_submissions (
			full_name, email, linkedin, how_can_we_help, primary_asset,
			primary_asset_other, target_budget, deal_url, how_found, stage, service_needed
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.FullName, b.Email, b.LinkedIn, b.HowCanWeHelp, b.PrimaryAsset,
		b.PrimaryAssetOther, b.TargetBudget, b.DealURL, b.HowFound, b.Stage, b.ServiceNeeded)
	return err
}

func (s *SQLiteStore) SaveSeller(ctx context.Context, sub SellerSubmission) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO seller_form_submissions (
			full_name, email, linkedin, asset_url, primary_asset, primary_asset_other,
			project_age, avg_monthly_profit, planning_to_sell, help_with, additional_details
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.FullName, sub.Email, sub.LinkedIn, sub.AssetURL, sub.PrimaryAsset, sub.PrimaryAssetOther,
		sub.ProjectAge, sub.AvgMonthlyProfit, sub.PlanningToSell, strings.Join(sub.HelpWith, ", "), sub.AdditionalDetails)
	return err
}
