package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acquiretoscale/website/content"
)

type stubLister struct {
	posts []content.BlogPost
	err   error
}

func (s *stubLister) All(context.Context) ([]content.BlogPost, error) {
	return s.posts, s.err
}

func testIndex() *Index {
	return &Index{
		Pages: []Page{
			{Href: "/", Title: "Home", Description: "Acquire To Scale – due diligence for small deals."},
			{Href: "/due-diligence", Title: "Due Diligence", Description: "Operator-led due diligence by asset type."},
			{Href: "/clarity-call", Title: "Clarity Call", Description: "A high-level discussion for buyers or sellers."},
		},
		Files: &stubLister{posts: []content.BlogPost{
			{Slug: "first-diligence-checklist", Title: "Your First Due Diligence Checklist", Description: "Where buyers go wrong."},
			{Slug: "cafe-economics", Title: "Café Economics", Description: "Margins in small business."},
		}},
		DB: &stubLister{posts: []content.BlogPost{
			{Slug: "pricing-your-deal", Title: "Pricing Your Deal", Description: "Multiples and due diligence discounts."},
		}},
	}
}

func TestSearchRejectsShortQueries(t *testing.T) {
	ix := testIndex()
	assert.Nil(t, ix.Search(context.Background(), ""))
	assert.Nil(t, ix.Search(context.Background(), "a"))
	assert.Nil(t, ix.Search(context.Background(), "  a  "), "trimming happens before the length check")
	assert.NotEmpty(t, ix.Search(context.Background(), "du"), "two characters pass the guard")
}

func TestSearchRequiresAllTerms(t *testing.T) {
	ix := testIndex()
	results := ix.Search(context.Background(), "due diligence")

	var hrefs []string
	for _, r := range results {
		hrefs = append(hrefs, r.Href)
	}
	assert.Contains(t, hrefs, "/due-diligence")
	assert.Contains(t, hrefs, "/blog/first-diligence-checklist")
	assert.Contains(t, hrefs, "/blog/pricing-your-deal")
	assert.NotContains(t, hrefs, "/clarity-call")
}

func TestSearchOrderIsPagesThenFilesThenDB(t *testing.T) {
	ix := testIndex()
	results := ix.Search(context.Background(), "due diligence")

	// Home and the due-diligence page both match, in page order.
	require.Len(t, results, 4)
	assert.Equal(t, TypePage, results[0].Type)
	assert.Equal(t, "/", results[0].Href)
	assert.Equal(t, "/due-diligence", results[1].Href)
	assert.Equal(t, "/blog/first-diligence-checklist", results[2].Href)
	assert.Equal(t, "/blog/pricing-your-deal", results[3].Href)
}

func TestSearchIgnoresDiacritics(t *testing.T) {
	ix := testIndex()

	results := ix.Search(context.Background(), "cafe")
	require.Len(t, results, 1)
	assert.Equal(t, "/blog/cafe-economics", results[0].Href)

	results = ix.Search(context.Background(), "CAFÉ")
	require.Len(t, results, 1)
	assert.Equal(t, "/blog/cafe-economics", results[0].Href)
}

func TestSearchDedupesByHref(t *testing.T) {
	ix := testIndex()
	// Same slug in both sources produces the same href.
	ix.DB = &stubLister{posts: []content.BlogPost{
		{Slug: "cafe-economics", Title: "Café Economics (DB)", Description: "Margins."},
	}}

	results := ix.Search(context.Background(), "cafe")
	require.Len(t, results, 1)
	assert.Equal(t, "Café Economics", results[0].Title, "first occurrence wins")
}

func TestSearchSurvivesSourceFailure(t *testing.T) {
	ix := testIndex()
	ix.DB = &stubLister{err: errors.New("connection refused")}

	results := ix.Search(context.Background(), "due diligence")
	require.Len(t, results, 3, "page and file hits survive a database failure")
	for _, r := range results {
		assert.NotEqual(t, "/blog/pricing-your-deal", r.Href)
	}
}

func TestSearchWithoutDatabase(t *testing.T) {
	ix := testIndex()
	ix.DB = nil

	results := ix.Search(context.Background(), "pricing")
	assert.Empty(t, results)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "cafe", Normalize("  Café "))
	assert.Equal(t, "uber deal", Normalize("Über Deal"))
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("Due Diligence for SaaS", "saas due"))
	assert.False(t, Matches("Due Diligence for SaaS", "saas newsletter"))
	assert.True(t, Matches("anything", ""), "zero terms match everything")
}
