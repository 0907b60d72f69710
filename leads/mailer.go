package leads

import (
	"context"
	"errors"
	"html"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ErrMailNotConfigured is returned when the Resend API key is missing or a
// placeholder left over from the env template.
var ErrMailNotConfigured = errors.New("leads: RESEND_API_KEY is missing or placeholder")

// Email is one outbound notification.
type Email struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Mailer sends notification emails.
type Mailer interface {
	Send(ctx context.Context, e Email) error
}

// ResendMailer sends via the Resend transactional email API.
type ResendMailer struct {
	client *resend.Client
}

// NewResendMailer validates the API key and builds a client.
func NewResendMailer(apiKey string) (*ResendMailer, error) {
	if apiKey == "" || strings.HasPrefix(apiKey, "re_xxxx") || apiKey == "your-api-key" {
		return nil, ErrMailNotConfigured
	}
	return &ResendMailer{client: resend.NewClient(apiKey)}, nil
}

func (m *ResendMailer) Send(ctx context.Context, e Email) error {
	params := &resend.SendEmailRequest{
		From:    e.From,
		To:      []string{e.To},
		Subject: e.Subject,
		Html:    e.HTML,
	}
	if e.ReplyTo != "" {
		params.ReplyTo = e.ReplyTo
	}
	_, err := m.client.Emails.SendWithContext(ctx, params)
	return err
}

// BuyerEmailHTML renders the notification body for a buyer submission.
func BuyerEmailHTML(b BuyerSubmission) string {
	var sb strings.Builder
	sb.WriteString("<h2>New Buyer Form Submission</h2>")
	field(&sb, "Full Name", b.FullName)
	field(&sb, "Professional Email", b.Email)
	field(&sb, "LinkedIn Profile", b.LinkedIn)
	section(&sb, "How can we help you today?", multiline(b.HowCanWeHelp))
	section(&sb, "Primary Asset Class", esc(b.PrimaryAssetDisplay()))
	section(&sb, "Target Budget", esc(b.TargetBudget))
	sb.WriteString("<h3>Deal Details</h3>")
	field(&sb, "Deal URL", b.DealURL)
	field(&sb, "How did you find it?", b.HowFound)
	field(&sb, "Stage", b.Stage)
	section(&sb, "Service Needed", esc(b.ServiceNeeded))
	sb.WriteString("<hr><p><em>Submitted from Acquire To Scale buyer form</em></p>")
	return sb.String()
}

// SellerEmailHTML renders the notification body for a seller submission.
func SellerEmailHTML(s SellerSubmission) string {
	var sb strings.Builder
	sb.WriteString("<h2>New Seller Form Submission</h2>")
	field(&sb, "Full Name", s.FullName)
	field(&sb, "Email", s.Email)
	field(&sb, "LinkedIn Profile", s.LinkedIn)
	field(&sb, "Digital asset URL", s.AssetURL)
	section(&sb, "Primary Asset Class", esc(s.PrimaryAssetDisplay()))
	section(&sb, "Project age", esc(s.ProjectAge))
	section(&sb, "Avg. Monthly Profit", esc(s.AvgMonthlyProfit))
	section(&sb, "Planning to sell?", esc(s.PlanningToSell))
	section(&sb, "What do you need help with?", esc(strings.Join(s.HelpWith, ", ")))
	section(&sb, "Additional details", multiline(s.AdditionalDetails))
	sb.WriteString("<hr><p><em>Submitted from Acquire To Scale seller form</em></p>")
	return sb.String()
}

func field(sb *strings.Builder, label, value string) {
	sb.WriteString("<p><strong>" + label + ":</strong> " + esc(value) + "</p>")
}

func section(sb *strings.Builder, heading, body string) {
	if body == "" {
		body = "&mdash;"
	}
	sb.WriteString("<h3>" + heading + "</h3><p>" + body + "</p>")
}

func esc(s string) string {
	if s == "" {
		return "&mdash;"
	}
	return html.EscapeString(s)
}

func multiline(s string) string {
	if s == "" {
		return ""
	}
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}
