package auth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"miswa/internal/pkg/jwt"
)

type Service struct {
	repo   *Repository
	tokens *jwt.Service
	log    *zap.Logger
}

func NewService(repo *Repository, tokens *jwt.Service, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, tokens: tokens, log: log}
}

// Login checks the credentials and issues an access token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if admin == nil {
		VerifyPassword(password, dummyHash)
		return "", ErrInvalidCredentials
	}
	if !VerifyPassword(password, admin.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(admin.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Authenticate resolves a bearer token to the admin it names. Every failure,
// including an admin deleted after the token was issued, is ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, token string) (*Identity, error) {
	subject, err := s.tokens.VerifyToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	admin, err := s.repo.FindByUsername(ctx, subject)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, fmt.Errorf("%w: admin %q no longer exists", ErrUnauthorized, subject)
	}
	return admin.Identity(), nil
}

// SetPassword creates the admin if needed, otherwise rotates its password.
func (s *Service) SetPassword(ctx context.Context, username, password string) (created bool, err error) {
	if len(password) < MinPasswordLength {
		return false, ErrWeakPassword
	}
	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing == nil {
		if _, err := s.repo.Create(ctx, username, password); err != nil {
			return false, err
		}
		s.log.Info("admin created", zap.String("username", username))
		return true, nil
	}
	if err := s.repo.UpdatePassword(ctx, username, password); err != nil {
		return false, err
	}
	s.log.Info("admin password rotated", zap.String("username", username))
	return false, nil
}

func (s *Service) DeleteAdmin(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}
	s.log.Info("admin deleted", zap.String("username", username))
	return nil
}
