package leads

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "data", "leads.db"))
	require.NoError(t, err, "store should open and create its data directory")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreSaveBuyer(t *testing.T) {
	s := setupTestStore(t)

	err := s.SaveBuyer(context.Background(), BuyerSubmission{
		FullName:     "Ada Example",
		Email:        "ada@example.com",
		PrimaryAsset: "Content Website",
		TargetBudget: "$100k",
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM buyer_form_submissions`).Scan(&count))
	assert.Equal(t, 1, count)

	var email string
	require.NoError(t, s.db.QueryRow(`SELECT email FROM buyer_form_submissions`).Scan(&email))
	assert.Equal(t, "ada@example.com", email)
}

func TestSQLiteStoreSaveSeller(t *testing.T) {
	s := setupTestStore(t)

	err := s.SaveSeller(context.Background(), SellerSubmission{
		FullName: "Sam Example",
		Email:    "sam@example.com",
		AssetURL: "https://example.com",
		HelpWith: []string{"Valuation", "Exit preparation"},
	})
	require.NoError(t, err)

	var helpWith string
	require.NoError(t, s.db.QueryRow(`SELECT help_with FROM seller_form_submissions`).Scan(&helpWith))
	assert.Equal(t, "Valuation, Exit preparation", helpWith)
}
