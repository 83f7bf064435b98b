package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bibliophile/internal/auth"
	"bibliophile/internal/entity"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStore is the slice of the record store the provider needs.
type UserStore interface {
	CreateUser(ctx context.Context, email, name, passwordHash string) (entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (entity.User, error)
}

// JWTProvider implements Provider on the local account table plus HS256
// tokens, standing in for the hosted identity service.
type JWTProvider struct {
	users    UserStore
	secret   string
	tokenTTL time.Duration
}

func NewJWTProvider(users UserStore, secret string, tokenTTL time.Duration) *JWTProvider {
	return &JWTProvider{users: users, secret: secret, tokenTTL: tokenTTL}
}

func (p *JWTProvider) SignIn(ctx context.Context, email, password string) (*Identity, string, error) {
	u, err := p.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !auth.VerifyPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(p.secret, u.ID, u.Email, p.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return &Identity{ID: u.ID, Email: u.Email, Name: u.Name}, token, nil
}

func (p *JWTProvider) SignUp(ctx context.Context, email, password, name string) (*Identity, string, error) {
	if err := auth.ValidatePasswordStrength(password); err != nil {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	u, err := p.users.CreateUser(ctx, email, name, hash)
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := auth.GenerateToken(p.secret, u.ID, u.Email, p.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return &Identity{ID: u.ID, Email: u.Email, Name: u.Name}, token, nil
}
