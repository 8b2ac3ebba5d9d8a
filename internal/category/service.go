package category

import (
	"log/slog"

	"github.com/frahmantamala/legaltech-workflows/internal"
)

type Service struct {
	store  *Store
	logger *slog.Logger
}

func NewService(store *Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

func (s *Service) GetAll() []Category {
	return s.store.All()
}

func (s *Service) GetByID(id string) (*Category, error) {
	c, ok := s.store.ByID(id)
	if !ok {
		return nil, internal.ErrUnknownCategory
	}
	return &c, nil
}

func (s *Service) IsValid(id string) bool {
	_, ok := s.store.ByID(id)
	return ok
}
