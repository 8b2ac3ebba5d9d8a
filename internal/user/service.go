package user

import (
	"log/slog"

	"github.com/frahmantamala/legaltech-workflows/internal"
)

type Service struct {
	dir    *Directory
	logger *slog.Logger
}

func NewService(dir *Directory, logger *slog.Logger) *Service {
	return &Service{
		dir:    dir,
		logger: logger,
	}
}

func (s *Service) GetByID(id string) (*User, error) {
	u, ok := s.dir.ByID(id)
	if !ok {
		s.logger.Warn("user lookup by id missed", "user_id", id)
		return nil, internal.ErrUserNotFound
	}
	return &u, nil
}

func (s *Service) GetByEmail(email string) (*User, error) {
	u, ok := s.dir.ByEmail(email)
	if !ok {
		return nil, internal.ErrUserNotFound
	}
	return &u, nil
}

func (s *Service) All() []User {
	return s.dir.All()
}
