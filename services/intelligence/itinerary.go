package intelligence

import (
	"context"
	"fmt"
	"strings"

	"travelplanner/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Generator performs one grounded completion call.
type Generator interface {
	GenerateGrounded(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error)
}

// ItineraryService turns trip inputs into an itinerary and its cited sources.
type ItineraryService struct {
	gen    Generator
	logger *zap.Logger
}

func NewItineraryService(gen Generator, logger *zap.Logger) *ItineraryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItineraryService{gen: gen, logger: logger}
}

// ParseDurationDays accepts a positive plain decimal number of days, such as
// "3" or "2.5". Hex floats, digit separators and NaN/Inf are rejected.
func ParseDurationDays(s string) (float64, bool) {
	days, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !days.IsPositive() {
		return 0, false
	}
	return days.InexactFloat64(), true
}

// RequestItinerary calls the completion service exactly once. It does not retry.
func (s *ItineraryService) RequestItinerary(ctx context.Context, req models.ItineraryRequest) (*models.ItineraryResult, error) {
	destination := strings.TrimSpace(req.Destination)
	budget := strings.TrimSpace(req.BudgetDescription)
	duration := strings.TrimSpace(req.DurationDays)
	if destination == "" || budget == "" {
		return nil, fmt.Errorf("%w: destination and budget are required", ErrInvalidRequest)
	}
	if _, ok := ParseDurationDays(duration); !ok {
		return nil, fmt.Errorf("%w: duration %q is not a positive number", ErrInvalidRequest, req.DurationDays)
	}

	prompt := BuildPrompt(destination, budget, uniqueInterests(req.Interests), duration)

	resp, err := s.gen.GenerateGrounded(ctx, prompt)
	if err != nil {
		s.logger.Error("Error calling completion service", zap.String("destination", destination), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	text := ExtractText(resp)
	if strings.TrimSpace(text) == "" {
		s.logger.Warn("Completion service returned no text", zap.String("destination", destination))
		return nil, ErrEmptyCompletion
	}

	sources := ExtractSources(resp)
	s.logger.Info("Itinerary generated",
		zap.String("destination", destination),
		zap.Int("chars", len(text)),
		zap.Int("sources", len(sources)),
	)
	return &models.ItineraryResult{Text: text, Sources: sources}, nil
}

// ExtractText concatenates the text parts of the first candidate, skipping
// model thoughts.
func ExtractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// ExtractSources keeps grounding chunks that carry both a URI and a title,
// in the order the service returned them. Malformed chunks are dropped.
func ExtractSources(resp *genai.GenerateContentResponse) []models.ItinerarySource {
	sources := []models.ItinerarySource{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return sources
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return sources
	}

	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		if chunk.Web.URI == "" || chunk.Web.Title == "" {
			continue
		}
		sources = append(sources, models.ItinerarySource{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return sources
}
