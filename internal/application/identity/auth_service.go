package identity

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/storetrack/backend/internal/domain/identity"
	"github.com/storetrack/backend/internal/domain/shared"
)

var validate = validator.New()

// ErrInvalidCredentials is returned for any failed sign-in attempt.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller.
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")

// AuthService verifies credentials and hands back the principal a
// successful sign-in acts with.
type AuthService struct {
	userRepo     identity.UserRepository
	principalSvc *PrincipalService
	logger       *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, principalSvc *PrincipalService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		principalSvc: principalSvc,
		logger:       logger,
	}
}

// Authenticate checks the credentials and resolves the principal
func (s *AuthService) Authenticate(ctx context.Context, req LoginRequest) (identity.Principal, error) {
	if err := validate.Struct(req); err != nil {
		return identity.Unauthorized(), ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return identity.Unauthorized(), ErrInvalidCredentials
		}
		return identity.Unauthorized(), err
	}

	if !user.Active || !user.CheckPassword(req.Password) {
		s.logger.Info("failed sign-in attempt", zap.String("username", req.Username))
		return identity.Unauthorized(), ErrInvalidCredentials
	}

	return s.principalSvc.Resolve(ctx, user.ID)
}
