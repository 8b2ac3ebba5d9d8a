package auth

import (
	"log/slog"

	"github.com/frahmantamala/legaltech-workflows/internal"
	"github.com/frahmantamala/legaltech-workflows/internal/user"
)

type UserLookup interface {
	GetByID(id string) (*user.User, error)
	GetByEmail(email string) (*user.User, error)
}

type Service struct {
	users  UserLookup
	logger *slog.Logger
}

func NewService(users UserLookup, logger *slog.Logger) *Service {
	return &Service{
		users:  users,
		logger: logger,
	}
}

// AuthenticateEmail resolves the demo identity for an email address. Any
// address outside the fixed user table fails authentication.
func (s *Service) AuthenticateEmail(dto LoginDTO) (*user.User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(dto.Email)
	if err != nil {
		s.logger.Warn("login failed: unknown email", "email", dto.Email)
		return nil, internal.ErrInvalidEmail
	}

	return u, nil
}

// CurrentUser loads the user attached to a session's user id.
func (s *Service) CurrentUser(userID string) (*user.User, error) {
	if userID == "" {
		return nil, internal.ErrNotAuthenticated
	}
	return s.users.GetByID(userID)
}
