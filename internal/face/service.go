package face

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tapwallet/walletd/internal/domain"
)

type api interface {
	Register(ctx context.Context, name string, image []byte) error
	Verify(ctx context.Context, image []byte) (bool, error)
}

// Service guards the register/verify flows: inputs are validated before
// any bytes leave the process, and only one request runs at a time, the
// same single-flight discipline the capture screen enforces.
type Service struct {
	client api
	logger *slog.Logger

	mu   sync.Mutex
	busy bool
}

func NewService(client api, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger}
}

func (s *Service) Register(ctx context.Context, name string, image []byte) error {
	if name == "" {
		return fmt.Errorf("face.Register: %w", domain.ErrFaceNameRequired)
	}
	if len(image) == 0 {
		return fmt.Errorf("face.Register: %w", domain.ErrFaceImageEmpty)
	}
	if err := s.acquire(); err != nil {
		return fmt.Errorf("face.Register: %w", err)
	}
	defer s.release()

	if err := s.client.Register(ctx, name, image); err != nil {
		s.logger.Error("face registration failed", "name", name, "error", err)
		return fmt.Errorf("face.Register: %w", domain.ErrFaceUnavailable)
	}

	s.logger.Info("face registered", "name", name)
	return nil
}

func (s *Service) Verify(ctx context.Context, image []byte) (bool, error) {
	if len(image) == 0 {
		return false, fmt.Errorf("face.Verify: %w", domain.ErrFaceImageEmpty)
	}
	if err := s.acquire(); err != nil {
		return false, fmt.Errorf("face.Verify: %w", err)
	}
	defer s.release()

	match, err := s.client.Verify(ctx, image)
	if err != nil {
		s.logger.Error("face verification failed", "error", err)
		return false, fmt.Errorf("face.Verify: %w", domain.ErrFaceUnavailable)
	}
	return match, nil
}

func (s *Service) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return domain.ErrFaceInFlight
	}
	s.busy = true
	return nil
}

func (s *Service) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}
