package handlers

import (
	"context"
	"errors"
	"net/http"

	"travelplanner/config"
	"travelplanner/middleware"
	"travelplanner/models"
	"travelplanner/services/budget"
	"travelplanner/services/planner"
	"travelplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgInFlight         = "A plan is already being generated. Please wait for it to finish."
	msgInvalidBody      = "Invalid request body."
	msgInternal         = "Something went wrong. Please try again."
	msgCoinsUnavailable = "Could not load cryptocurrencies."
)

// PlannerService runs submissions for a browser session.
type PlannerService interface {
	Submit(ctx context.Context, sessionID string, form models.PlanForm) (*models.PlanOutcome, error)
	Status(ctx context.Context, sessionID string) (models.SessionStatus, error)
}

// PlannerHandler serves the planner page and its JSON API.
type PlannerHandler struct {
	planner PlannerService
}

func NewPlannerHandler(p PlannerService) *PlannerHandler {
	return &PlannerHandler{planner: p}
}

// PageData feeds templates/index.html.
type PageData struct {
	Form              models.PlanForm
	SelectedCurrency  string
	SelectedInterests map[string]bool
	Interests         []string
	FiatCurrencies    []string
	Status            models.SessionStatus
	Outcome           *models.PlanOutcome
}

func newPageData(form models.PlanForm, status models.SessionStatus, outcome *models.PlanOutcome) PageData {
	selected := make(map[string]bool, len(form.Interests))
	for _, interest := range form.Interests {
		selected[interest] = true
	}
	currency := form.FiatCurrency
	if currency == "" {
		currency = budget.DefaultCurrency
	}
	return PageData{
		Form:              form,
		SelectedCurrency:  currency,
		SelectedInterests: selected,
		Interests:         config.Interests,
		FiatCurrencies:    config.FiatCurrencies,
		Status:            status,
		Outcome:           outcome,
	}
}

// PageHandler renders the empty planner form.
func (h *PlannerHandler) PageHandler(c *gin.Context) {
	status := h.status(c)
	c.HTML(http.StatusOK, "index.html", newPageData(models.PlanForm{BudgetType: string(models.BudgetFiat)}, status, nil))
}

// SubmitFormHandler handles the non-script form post and re-renders the page
// with the outcome.
func (h *PlannerHandler) SubmitFormHandler(c *gin.Context) {
	logger := getLogger(c)

	var form models.PlanForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("Invalid planner form", zap.Error(err))
		c.HTML(http.StatusBadRequest, "index.html", newPageData(form, h.status(c), &models.PlanOutcome{FormError: msgInvalidBody}))
		return
	}

	outcome, err := h.planner.Submit(c.Request.Context(), middleware.SessionIDFrom(c), form)
	if err != nil {
		status, outcome := submitErrorOutcome(logger, err)
		c.HTML(status, "index.html", newPageData(form, h.status(c), outcome))
		return
	}
	c.HTML(outcomeStatus(outcome), "index.html", newPageData(form, h.status(c), outcome))
}

// SubmitPlanHandler is the JSON form of SubmitFormHandler.
func (h *PlannerHandler) SubmitPlanHandler(c *gin.Context) {
	logger := getLogger(c)

	var form models.PlanForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, msgInvalidBody, err)
		return
	}

	outcome, err := h.planner.Submit(c.Request.Context(), middleware.SessionIDFrom(c), form)
	if err != nil {
		status, outcome := submitErrorOutcome(logger, err)
		c.JSON(status, outcome)
		return
	}
	c.JSON(outcomeStatus(outcome), outcome)
}

// PlanStatusHandler reports whether the session has a submission in flight.
func (h *PlannerHandler) PlanStatusHandler(c *gin.Context) {
	status, err := h.planner.Status(c.Request.Context(), middleware.SessionIDFrom(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, msgInternal, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// OptionsHandler returns the interest and currency catalogs.
func (h *PlannerHandler) OptionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"interests":       config.Interests,
		"fiatCurrencies":  config.FiatCurrencies,
		"defaultCurrency": budget.DefaultCurrency,
	})
}

// status falls back to idle when the store cannot be read; the page still renders.
func (h *PlannerHandler) status(c *gin.Context) models.SessionStatus {
	status, err := h.planner.Status(c.Request.Context(), middleware.SessionIDFrom(c))
	if err != nil {
		getLogger(c).Error("Failed to read session status", zap.Error(err))
		return models.SessionStatus{State: models.StateIdle, Label: models.StateIdle.Label()}
	}
	return status
}

func submitErrorOutcome(logger *zap.Logger, err error) (int, *models.PlanOutcome) {
	if errors.Is(err, planner.ErrSubmissionInFlight) {
		return http.StatusConflict, &models.PlanOutcome{State: models.StateGeneratingPlan, FormError: msgInFlight}
	}
	logger.Error("Plan submission failed", zap.Error(err))
	return http.StatusInternalServerError, &models.PlanOutcome{State: models.StateFailed, PlanError: msgInternal}
}

func outcomeStatus(outcome *models.PlanOutcome) int {
	switch {
	case outcome.State == models.StateDone:
		return http.StatusOK
	case outcome.State == models.StateIdle:
		return http.StatusBadRequest
	case outcome.FormError != "":
		// Price lookup failed.
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
