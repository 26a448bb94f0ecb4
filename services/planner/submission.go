package planner

import (
	"context"
	"fmt"

	"travelplanner/models"
)

// transitions lists the states each state may move to.
var transitions = map[models.SubmissionState][]models.SubmissionState{
	models.StateIdle:           {models.StateResolvingPrice, models.StateGeneratingPlan},
	models.StateDone:           {models.StateResolvingPrice, models.StateGeneratingPlan},
	models.StateFailed:         {models.StateResolvingPrice, models.StateGeneratingPlan},
	models.StateResolvingPrice: {models.StateGeneratingPlan, models.StateFailed},
	models.StateGeneratingPlan: {models.StateDone, models.StateFailed},
}

func canTransition(from, to models.SubmissionState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// submission tracks one attempt through the state machine and mirrors each
// step into the store.
type submission struct {
	id    string
	store StateStore
	state models.SubmissionState
}

func (s *submission) begin(ctx context.Context, first models.SubmissionState) error {
	if !canTransition(s.state, first) {
		return fmt.Errorf("invalid transition %s -> %s", s.state, first)
	}
	if err := s.store.Begin(ctx, s.id, first); err != nil {
		return err
	}
	s.state = first
	return nil
}

func (s *submission) advance(ctx context.Context, next models.SubmissionState) error {
	if !canTransition(s.state, next) {
		return fmt.Errorf("invalid transition %s -> %s", s.state, next)
	}
	if err := s.store.SetState(ctx, s.id, next); err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *submission) finish(ctx context.Context, final models.SubmissionState) error {
	if !canTransition(s.state, final) {
		final = models.StateFailed
	}
	if err := s.store.Finish(ctx, s.id, final); err != nil {
		return err
	}
	s.state = final
	return nil
}
