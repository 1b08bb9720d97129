// Package account implements sign-in, sign-up and sign-out against a session store.
package account

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/forms"
	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

// API is the part of the SDK client that issues credentials.
type API interface {
	Login(ctx context.Context, input sdk.LoginInput) (sdk.Credential, error)
	Register(ctx context.Context, input sdk.RegisterInput) error
}

// Service ties the auth endpoints to the session store.
type Service struct {
	api    API
	store  sdk.SessionStore
	logger *zap.Logger
}

// NewService creates an account service.
func NewService(api API, store sdk.SessionStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, store: store, logger: logger}
}

// Login validates form, exchanges it for a credential and stores it.
func (s *Service) Login(ctx context.Context, form forms.Login) (sdk.AuthorizationState, error) {
	input, err := form.Validate()
	if err != nil {
		return sdk.AuthorizationState{}, err
	}
	token, err := s.api.Login(ctx, input)
	if err != nil {
		return sdk.AuthorizationState{}, err
	}
	if err := s.store.Set(token); err != nil {
		return sdk.AuthorizationState{}, fmt.Errorf("failed to save credential: %w", err)
	}

	state := sdk.DeriveAuthorization(s.store)
	s.logger.Info("signed in", zap.String("email", input.Email), zap.String("role", state.Role))
	return state, nil
}

// Register creates the account and then signs in with the same credentials.
func (s *Service) Register(ctx context.Context, form forms.Register) (sdk.AuthorizationState, error) {
	input, err := form.Validate()
	if err != nil {
		return sdk.AuthorizationState{}, err
	}
	if err := s.api.Register(ctx, input); err != nil {
		return sdk.AuthorizationState{}, err
	}
	s.logger.Info("account registered", zap.String("email", input.Email))

	return s.Login(ctx, forms.Login{Email: input.Email, Password: input.Password})
}

// Logout forgets the credential.
func (s *Service) Logout() error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	s.logger.Info("signed out")
	return nil
}

// State derives the current authorization state.
func (s *Service) State() sdk.AuthorizationState {
	return sdk.DeriveAuthorization(s.store)
}
