package seller

import (
	"context"

	"lapak-be/internal/auth"
	"lapak-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, username, email, password string) (*Seller, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetByUsername(ctx context.Context, username string) (*Seller, error)
}

type service struct {
	repo   Repository
	tokens *auth.TokenManager
}

func NewService(repo Repository, tokens *auth.TokenManager) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, username, email, password string) (*Seller, error) {
	log := logger.FromCtx(ctx)

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Create(ctx, username, email, hashed)
	if err != nil {
		log.Error("failed to create seller", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	log.Info("seller registered",
		zap.String("seller_id", created.ID.String()),
		zap.String("username", username),
	)

	return created, nil
}

// Login resolves the email to a seller, checks the password and mints a
// token whose subject is the seller's username.
func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromCtx(ctx)

	found, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Warn("login: email not found", zap.String("email", email))
		return "", err
	}

	if !auth.CheckPasswordHash(password, found.Password) {
		log.Warn("login: password mismatch", zap.String("email", email))
		return "", ErrInvalidPassword
	}

	return s.tokens.Issue(found.Username)
}

func (s *service) GetByUsername(ctx context.Context, username string) (*Seller, error) {
	return s.repo.FindByUsername(ctx, username)
}
