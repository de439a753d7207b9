package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

type Options struct {
	// EnforceRoles rejects roles other than nurse and patient at registration.
	EnforceRoles bool
	// HashCost overrides DefaultHashCost.
	HashCost int
}

// Service is the single authentication flow shared by the GraphQL and REST surfaces.
type Service struct {
	store        Store
	hasher       *Hasher
	tokens       *TokenService
	logger       *slog.Logger
	enforceRoles bool
	now          func() time.Time
}

func NewService(store Store, tokens *TokenService, logger *slog.Logger, opts Options) *Service {
	cost := opts.HashCost
	if cost == 0 {
		cost = DefaultHashCost
	}
	return &Service{
		store:        store,
		hasher:       NewHasher(cost),
		tokens:       tokens,
		logger:       logger,
		enforceRoles: opts.EnforceRoles,
		now:          time.Now,
	}
}

func (s *Service) Tokens() *TokenService {
	return s.tokens
}

func (s *Service) Register(ctx context.Context, username, password string, role Role) (*Session, error) {
	if username == "" || password == "" || role == "" {
		return nil, ErrMissingFields
	}
	if s.enforceRoles && !role.Known() {
		return nil, ErrInvalidRole
	}
	if _, err := s.store.FindByUsername(ctx, username); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.Insert(ctx, user); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	s.logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return s.session(user)
}

func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, ErrMissingLogin
	}
	user, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return s.session(user)
}

func (s *Service) session(user *User) (*Session, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	user.PasswordHash = ""
	return &Session{User: user, Token: token}, nil
}

// ListUsers returns every user, or only those with role when it is not empty.
func (s *Service) ListUsers(ctx context.Context, role Role) ([]User, error) {
	users, err := s.store.List(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// Identify resolves a bearer token to the stored user.
func (s *Service) Identify(ctx context.Context, token string) (*User, error) {
	id, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
