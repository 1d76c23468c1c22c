package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
	"github.com/familyhub/calendar-hub/internal/pkg/metrics"
)

// SessionService implements joining the household and switching the active
// member. Both issue a signed token naming the member.
type SessionService struct {
	roster         *RosterStore
	jwtSecret      string
	tokenTTL       time.Duration
	passphraseHash string
	logger         zerolog.Logger
}

// NewSessionService returns a SessionService. When passphraseHash (bcrypt) is
// empty, joining and switching are open.
func NewSessionService(roster *RosterStore, jwtSecret string, tokenTTL time.Duration, passphraseHash string, logger zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{
		roster:         roster,
		jwtSecret:      jwtSecret,
		tokenTTL:       tokenTTL,
		passphraseHash: passphraseHash,
		logger:         logger,
	}
}

// Join adds a new member with the user role and a random avatar colour, makes
// it active and returns a session for it.
func (s *SessionService) Join(ctx context.Context, name, passphrase string) (*ports.Session, error) {
	if err := s.checkPassphrase(passphrase); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	user := domain.User{
		ID:          uuid.NewString(),
		Name:        name,
		Role:        domain.RoleUser,
		AvatarColor: domain.RandomAvatarColor(),
	}
	if err := s.roster.AddUser(ctx, user); err != nil {
		return nil, fmt.Errorf("join: %w", err)
	}
	if err := s.roster.SetActiveUser(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("join: %w", err)
	}

	sess, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("join: %w", err)
	}

	metrics.SessionsTotal.WithLabelValues("join").Inc()
	s.logger.Info().Str("user_id", user.ID).Str("name", user.Name).Msg("member joined")
	return sess, nil
}

// Switch makes userID the active member and returns a session for it.
func (s *SessionService) Switch(ctx context.Context, userID, passphrase string) (*ports.Session, error) {
	if err := s.checkPassphrase(passphrase); err != nil {
		return nil, err
	}

	user, ok := s.roster.Get(userID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if err := s.roster.SetActiveUser(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("switch: %w", err)
	}

	sess, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("switch: %w", err)
	}

	metrics.SessionsTotal.WithLabelValues("switch").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("active member switched")
	return sess, nil
}

func (s *SessionService) checkPassphrase(passphrase string) error {
	if s.passphraseHash == "" {
		return nil
	}
	if bcrypt.CompareHashAndPassword([]byte(s.passphraseHash), []byte(passphrase)) != nil {
		return domain.ErrInvalidPassphrase
	}
	return nil
}

func (s *SessionService) issue(user domain.User) (*ports.Session, error) {
	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"role": string(user.Role),
		"exp":  expiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}
	return &ports.Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
