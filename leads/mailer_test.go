package leads

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResendMailerRejectsPlaceholderKeys(t *testing.T) {
	for _, key := range []string{"", "re_xxxxxxxx", "your-api-key"} {
		_, err := NewResendMailer(key)
		assert.True(t, errors.Is(err, ErrMailNotConfigured), "key %q should be rejected", key)
	}
}

func TestNewResendMailerAcceptsRealKey(t *testing.T) {
	m, err := NewResendMailer("re_live_abc123")
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestBuyerEmailHTML(t *testing.T) {
	body := BuyerEmailHTML(BuyerSubmission{
		FullName:     "Ada Example",
		Email:        "ada@example.com",
		HowCanWeHelp: "Line one\nLine two",
		PrimaryAsset: "Other",
		PrimaryAssetOther: "Mobile app",
		TargetBudget: "$50k",
	})

	assert.Contains(t, body, "New Buyer Form Submission")
	assert.Contains(t, body, "Ada Example")
	assert.Contains(t, body, "Line one<br>Line two")
	assert.Contains(t, body, "Mobile app", "other asset class resolves to the free-text detail")
	assert.Contains(t, body, "&mdash;", "empty fields render a dash")
}

func TestSellerEmailHTML(t *testing.T) {
	body := SellerEmailHTML(SellerSubmission{
		FullName: "Sam Example",
		Email:    "sam@example.com",
		AssetURL: "https://example.com",
		HelpWith: []string{"Valuation", "Finding a buyer"},
	})

	assert.Contains(t, body, "New Seller Form Submission")
	assert.Contains(t, body, "Valuation, Finding a buyer")
	assert.Contains(t, body, "https://example.com")
}

func TestEmailHTMLEscapesInput(t *testing.T) {
	body := BuyerEmailHTML(BuyerSubmission{
		FullName: `<script>alert("x")</script>`,
		Email:    "x@example.com",
	})
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestPrimaryAssetDisplay(t *testing.T) {
	assert.Equal(t, "SaaS / Webapp", BuyerSubmission{PrimaryAsset: "SaaS / Webapp"}.PrimaryAssetDisplay())
	assert.Equal(t, "Podcast", SellerSubmission{PrimaryAsset: "Other", PrimaryAssetOther: "Podcast"}.PrimaryAssetDisplay())
	assert.Equal(t, "Other", BuyerSubmission{PrimaryAsset: "Other"}.PrimaryAssetDisplay())
}
