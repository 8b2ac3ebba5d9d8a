package replication

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/legaltech-workflows/internal"
)

const statusCompleted = "completed"

type Service struct {
	delay  time.Duration
	logger *slog.Logger
	now    func() time.Time
}

func NewService(cfg internal.ReplicationConfig, logger *slog.Logger) *Service {
	return &Service{
		delay:  cfg.ProcessingDelay,
		logger: logger,
		now:    time.Now,
	}
}

// Replicate validates the request, waits out the simulated processing
// delay and synthesizes one result per requested state that has a display
// name wired in. States outside the name table are silently dropped from
// the results rather than reported as errors.
func (s *Service) Replicate(ctx context.Context, req Request) (*Response, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	var results []Result
	for _, state := range req.TargetStates {
		name, ok := stateNames[state]
		if !ok {
			continue
		}
		results = append(results, Result{
			State:       state,
			StateName:   name,
			Status:      statusCompleted,
			AgreementID: uuid.NewString(),
			Modifications: []string{
				fmt.Sprintf("Added %s specific termination notice requirements", name),
				fmt.Sprintf("Incorporated %s franchise law disclosures", name),
				fmt.Sprintf("Updated territory definitions for %s compliance", name),
			},
			DownloadURL: "/api/download-replicated-agreement/" + state,
		})
	}

	s.logger.Info("agreement replicated",
		"filename", req.Filename,
		"requested_states", len(req.TargetStates),
		"produced_results", len(results))

	return &Response{
		Success:          true,
		Message:          fmt.Sprintf("Successfully replicated agreement for %d state(s)", len(req.TargetStates)),
		Results:          results,
		OriginalFilename: req.Filename,
		ProductCategory:  req.CategoryName,
	}, nil
}

func validate(req Request) error {
	if req.Filename == "" {
		return internal.ErrNoFileSelected
	}
	if len(req.TargetStates) == 0 {
		return internal.ErrNoStatesSelected
	}
	if req.OriginState == "" {
		return internal.ErrNoOriginState
	}
	for _, state := range req.TargetStates {
		if state == req.OriginState {
			return internal.ErrOriginInTargets
		}
	}
	return nil
}

// Document synthesizes the plain-text body served for a replicated
// agreement download. No actual document ever exists.
func (s *Service) Document(state string) string {
	return fmt.Sprintf(`
DISTRIBUTION AGREEMENT - %s VERSION

This is a mock replicated agreement for %s.

Key modifications made:
1. Added state-specific termination requirements
2. Incorporated franchise law disclosures
3. Updated territory definitions for compliance

Generated on: %s
`, state, state, s.now().Format("2006-01-02 15:04:05"))
}
