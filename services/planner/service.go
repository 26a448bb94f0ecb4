package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"travelplanner/models"
	"travelplanner/services/budget"
	"travelplanner/services/coingecko"
	"travelplanner/services/intelligence"
	"travelplanner/services/render"

	"go.uber.org/zap"
)

// User-facing messages. Service error detail is logged, never shown.
const (
	msgMissingDestination = "Please fill out the destination."
	msgMissingDuration    = "Please fill out the duration."
	msgInvalidDuration    = "Please enter a valid trip duration."
	msgPriceUnavailable   = "Could not verify the cryptocurrency price. Please try again."
	msgPlanFailed         = "Failed to generate itinerary. Please check your inputs or credentials and try again."
)

// BudgetDescriber turns a budget into the phrase handed to the prompt.
type BudgetDescriber interface {
	Format(ctx context.Context, spec models.BudgetSpec) (string, error)
}

// ItineraryRequester produces an itinerary for a validated request.
type ItineraryRequester interface {
	RequestItinerary(ctx context.Context, req models.ItineraryRequest) (*models.ItineraryResult, error)
}

// CoinLookup finds a coin in the already loaded directory.
type CoinLookup interface {
	Lookup(id string) (models.Coin, bool)
}

// Service runs one submission per session at a time.
type Service struct {
	store       StateStore
	budgets     BudgetDescriber
	itineraries ItineraryRequester
	coins       CoinLookup
	logger      *zap.Logger
}

func NewService(store StateStore, budgets BudgetDescriber, itineraries ItineraryRequester, coins CoinLookup, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:       store,
		budgets:     budgets,
		itineraries: itineraries,
		coins:       coins,
		logger:      logger,
	}
}

// Submit validates the form and, when it is valid, resolves the budget and
// requests the itinerary. Validation and service failures are reported in the
// outcome; the returned error is reserved for ErrSubmissionInFlight and store
// failures.
func (s *Service) Submit(ctx context.Context, sessionID string, form models.PlanForm) (*models.PlanOutcome, error) {
	spec, err := validate(form)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return &models.PlanOutcome{State: models.StateIdle, FormError: verr.Message}, nil
		}
		return nil, err
	}
	s.completeCoin(&spec)

	sub := &submission{id: sessionID, store: s.store, state: models.StateIdle}
	first := models.StateGeneratingPlan
	if spec.Kind == models.BudgetCrypto {
		first = models.StateResolvingPrice
	}
	if err := sub.begin(ctx, first); err != nil {
		return nil, err
	}

	final := models.StateFailed
	defer func() {
		// The request context may already be cancelled; the session must still be freed.
		if err := sub.finish(context.WithoutCancel(ctx), final); err != nil {
			s.logger.Error("Failed to record submission state",
				zap.String("session", sessionID), zap.String("state", string(final)), zap.Error(err))
		}
	}()

	description, err := s.budgets.Format(ctx, spec)
	if err != nil {
		s.logger.Warn("Budget could not be resolved", zap.String("session", sessionID), zap.Error(err))
		return &models.PlanOutcome{State: models.StateFailed, FormError: budgetMessage(spec, err)}, nil
	}

	if sub.state != models.StateGeneratingPlan {
		if err := sub.advance(ctx, models.StateGeneratingPlan); err != nil {
			return nil, err
		}
	}

	result, err := s.itineraries.RequestItinerary(ctx, models.ItineraryRequest{
		Destination:       strings.TrimSpace(form.Destination),
		BudgetDescription: description,
		Interests:         form.Interests,
		DurationDays:      strings.TrimSpace(form.Duration),
	})
	if err != nil {
		s.logger.Error("Itinerary generation failed", zap.String("session", sessionID), zap.Error(err))
		return &models.PlanOutcome{
			State:             models.StateFailed,
			BudgetDescription: description,
			PlanError:         msgPlanFailed,
		}, nil
	}

	final = models.StateDone
	return &models.PlanOutcome{
		State:             models.StateDone,
		BudgetDescription: description,
		Result:            result,
		Blocks:            render.Render(result.Text),
	}, nil
}

// Status reports the session's current state for the busy indicator.
func (s *Service) Status(ctx context.Context, sessionID string) (models.SessionStatus, error) {
	state, err := s.store.State(ctx, sessionID)
	if err != nil {
		return models.SessionStatus{}, err
	}
	return models.SessionStatus{State: state, Busy: state.Busy(), Label: state.Label()}, nil
}

func validate(form models.PlanForm) (models.BudgetSpec, error) {
	if strings.TrimSpace(form.Destination) == "" {
		return models.BudgetSpec{}, models.NewValidationError("destination", msgMissingDestination)
	}
	duration := strings.TrimSpace(form.Duration)
	if duration == "" {
		return models.BudgetSpec{}, models.NewValidationError("duration", msgMissingDuration)
	}
	if _, ok := intelligence.ParseDurationDays(duration); !ok {
		return models.BudgetSpec{}, models.NewValidationError("duration", msgInvalidDuration)
	}
	return budget.Parse(form)
}

// completeCoin fills in symbol and name from the directory when the form
// only carried the coin id.
func (s *Service) completeCoin(spec *models.BudgetSpec) {
	if spec.Coin == nil || s.coins == nil || spec.Coin.Name != "" {
		return
	}
	if coin, ok := s.coins.Lookup(spec.Coin.ID); ok {
		spec.Coin.Name = coin.Name
		if spec.Coin.Symbol == "" {
			spec.Coin.Symbol = coin.Symbol
		}
	}
}

func budgetMessage(spec models.BudgetSpec, err error) string {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, coingecko.ErrUnknownCoin):
		id := ""
		if spec.Coin != nil {
			id = spec.Coin.ID
		}
		return fmt.Sprintf("Invalid crypto ID: %q. Please choose a listed cryptocurrency.", id)
	default:
		return msgPriceUnavailable
	}
}
