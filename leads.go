package website

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/acquiretoscale/website/leads"
)

// buyerFormRequest binds both the HTML form post and the JSON body the
// landing pages send.
type buyerFormRequest struct {
	FullName          string `json:"fullName" form:"fullName"`
	Email             string `json:"email" form:"email"`
	LinkedIn          string `json:"linkedIn" form:"linkedIn"`
	HowCanWeHelp      string `json:"howCanWeHelp" form:"howCanWeHelp"`
	PrimaryAsset      string `json:"primaryAsset" form:"primaryAsset"`
	PrimaryAssetOther string `json:"primaryAssetOther" form:"primaryAssetOther"`
	TargetBudget      string `json:"targetBudget" form:"targetBudget"`
	DealURL           string `json:"dealUrl" form:"dealUrl"`
	HowFound          string `json:"howFound" form:"howFound"`
	Stage             string `json:"stage" form:"stage"`
	ServiceNeeded     string `json:"serviceNeeded" form:"serviceNeeded"`
}

type sellerFormRequest struct {
	FullName          string   `json:"fullName" form:"fullName"`
	Email             string   `json:"email" form:"email"`
	LinkedIn          string   `json:"linkedIn" form:"linkedIn"`
	AssetURL          string   `json:"assetUrl" form:"assetUrl"`
	PrimaryAsset      string   `json:"primaryAsset" form:"primaryAsset"`
	PrimaryAssetOther string   `json:"primaryAssetOther" form:"primaryAssetOther"`
	ProjectAge        string   `json:"projectAge" form:"projectAge"`
	AvgMonthlyProfit  string   `json:"avgMonthlyProfit" form:"avgMonthlyProfit"`
	PlanningToSell    string   `json:"planningToSell" form:"planningToSell"`
	HelpWith          []string `json:"helpWith" form:"helpWith"`
	AdditionalDetails string   `json:"additionalDetails" form:"additionalDetails"`
}

func (a *App) handleBuyerSubmit(c echo.Context) error {
	var req buyerFormRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.FullName == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "fullName and email are required"})
	}

	sub := leads.BuyerSubmission{
		FullName:          req.FullName,
		Email:             req.Email,
		LinkedIn:          req.LinkedIn,
		HowCanWeHelp:      req.HowCanWeHelp,
		PrimaryAsset:      req.PrimaryAsset,
		PrimaryAssetOther: req.PrimaryAssetOther,
		TargetBudget:      req.TargetBudget,
		DealURL:           req.DealURL,
		HowFound:          req.HowFound,
		Stage:             req.Stage,
		ServiceNeeded:     req.ServiceNeeded,
	}

	ctx := c.Request().Context()
	if err := a.Leads.SaveBuyer(ctx, sub); err != nil {
		// Losing the notification email too would lose the lead
		// entirely, so a store failure does not abort the request.
		a.Log.Error("save buyer submission", "err", err)
	}
	if err := a.notify(c, leads.Email{
		From:    a.Config.ResendFrom,
		To:      a.Config.LeadsToEmail,
		ReplyTo: sub.Email,
		Subject: "New buyer enquiry from " + sub.FullName,
		HTML:    leads.BuyerEmailHTML(sub),
	}); err != nil {
		return a.notifyError(c, err)
	}

	return a.submissionReply(c, "/buyer-form/thank-you/")
}

func (a *App) handleSellerSubmit(c echo.Context) error {
	var req sellerFormRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.FullName == "" || req.Email == "" || req.AssetURL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "fullName, email and assetUrl are required"})
	}

	sub := leads.SellerSubmission{
		FullName:          req.FullName,
		Email:             req.Email,
		LinkedIn:          req.LinkedIn,
		AssetURL:          req.AssetURL,
		PrimaryAsset:      req.PrimaryAsset,
		PrimaryAssetOther: req.PrimaryAssetOther,
		ProjectAge:        req.ProjectAge,
		AvgMonthlyProfit:  req.AvgMonthlyProfit,
		PlanningToSell:    req.PlanningToSell,
		HelpWith:          FilterEmpty(req.HelpWith),
		AdditionalDetails: req.AdditionalDetails,
	}

	ctx := c.Request().Context()
	if err := a.Leads.SaveSeller(ctx, sub); err != nil {
		a.Log.Error("save seller submission", "err", err)
	}
	if err := a.notify(c, leads.Email{
		From:    a.Config.ResendFrom,
		To:      a.Config.LeadsToEmail,
		ReplyTo: sub.Email,
		Subject: "New seller submission from " + sub.FullName,
		HTML:    leads.SellerEmailHTML(sub),
	}); err != nil {
		return a.notifyError(c, err)
	}

	return a.submissionReply(c, "/seller-form/thank-you/")
}

func (a *App) notify(c echo.Context, e leads.Email) error {
	if a.Mailer == nil {
		return leads.ErrMailNotConfigured
	}
	return a.Mailer.Send(c.Request().Context(), e)
}

func (a *App) notifyError(c echo.Context, err error) error {
	if errors.Is(err, leads.ErrMailNotConfigured) {
		a.Log.Error("lead email not sent", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Email service is not configured. Set RESEND_API_KEY.",
		})
	}
	a.Log.Error("send lead email", "err", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to send message."})
}

// submissionReply answers JSON clients with a success payload and plain
// form posts with a redirect to the thank-you page.
func (a *App) submissionReply(c echo.Context, thanksPath string) error {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	wantsJSON := c.Request().Header.Get("X-Requested-With") == "XMLHttpRequest" ||
		(accept != "" && !strings.Contains(accept, echo.MIMETextHTML)) ||
		strings.Contains(ctype, echo.MIMEApplicationJSON)
	if wantsJSON {
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	}
	return c.Redirect(http.StatusSeeOther, thanksPath)
}
