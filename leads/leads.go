// Package leads handles buyer and seller intake submissions: best-effort
// persistence plus a transactional email to the advisory inbox.
package leads

import "context"

// BuyerSubmission is the buyer-form payload.
type BuyerSubmission struct {
	FullName          string
	Email             string
	LinkedIn          string
	HowCanWeHelp      string
	PrimaryAsset      string
	PrimaryAssetOther string
	TargetBudget      string
	DealURL           string
	HowFound          string
	Stage             string
	ServiceNeeded     string
}

// SellerSubmission is the seller-form payload.
type SellerSubmission struct {
	FullName          string
	Email             string
	LinkedIn          string
	AssetURL          string
	PrimaryAsset      string
	PrimaryAssetOther string
	ProjectAge        string
	AvgMonthlyProfit  string
	PlanningToSell    string
	HelpWith          []string
	AdditionalDetails string
}

// PrimaryAssetDisplay resolves the "Other" free-text variant.
func (s BuyerSubmission) PrimaryAssetDisplay() string {
	return assetDisplay(s.PrimaryAsset, s.PrimaryAssetOther)
}

// PrimaryAssetDisplay resolves the "Other" free-text variant.
func (s SellerSubmission) PrimaryAssetDisplay() string {
	return assetDisplay(s.PrimaryAsset, s.PrimaryAssetOther)
}

func assetDisplay(primary, other string) string {
	if primary == "Other" && other != "" {
		return other
	}
	return primary
}

// Store persists submissions. Persistence is best-effort: callers log store
// failures and still send the notification email.
type Store interface {
	SaveBuyer(ctx context.Context, s BuyerSubmission) error
	SaveSeller(ctx context.Context, s SellerSubmission) error
}
