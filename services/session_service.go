package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"mongolshop/auth"
	"mongolshop/domain"
	"mongolshop/errors"
	"mongolshop/repositories"
)

// AdminEmail is the single reserved administrator address.
const AdminEmail = "admin@shop.mn"

// adminUser is the fixed administrator identity returned for AdminEmail.
var adminUser = domain.User{
	ID:     "admin",
	Name:   "Admin User",
	Email:  AdminEmail,
	Role:   domain.RoleAdmin,
	Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Admin",
}

type loginRequest struct {
	Email string `validate:"required,email"`
}

type ISessionService interface {
	Login(email string) (domain.User, string, error)
	Logout() error
	Current() (domain.User, bool, error)
}

// SessionService owns the single current-user slot. This is a mock
// identity model: no credential is ever checked, identities are looked
// up or synthesized from the email alone.
type SessionService struct {
	repository    repositories.ISessionRepository
	tokenDuration time.Duration
	log           *slog.Logger
}

func NewSessionService(repository repositories.ISessionRepository, tokenDuration time.Duration, log *slog.Logger) *SessionService {
	return &SessionService{repository: repository, tokenDuration: tokenDuration, log: log}
}

// Login resolves the identity for an email and persists it as the
// current user. The reserved admin address maps to the fixed admin
// identity; any other email deterministically yields a standard one
// (name from the local part, avatar seeded by the email). A signed
// session token accompanies the identity for callers that need one.
func (s *SessionService) Login(email string) (domain.User, string, error) {
	if err := validate.Struct(loginRequest{Email: email}); err != nil {
		return domain.User{}, "", fmt.Errorf("%w: %v", errors.ErrInvalidEmail, err)
	}

	user := adminUser
	if email != AdminEmail {
		user = domain.User{
			ID:     uuid.New().String(),
			Name:   strings.SplitN(email, "@", 2)[0],
			Email:  email,
			Role:   domain.RoleStandard,
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + email,
		}
	}

	if err := s.repository.Save(user); err != nil {
		return domain.User{}, "", err
	}

	token, err := auth.GenerateToken(user, s.tokenDuration)
	if err != nil {
		return domain.User{}, "", errors.ErrTokenGeneration
	}

	s.log.Info("User logged in", "email", email, "role", user.Role)
	return user, token, nil
}

// Logout clears the current-user slot unconditionally.
func (s *SessionService) Logout() error {
	return s.repository.Clear()
}

// Current returns the persisted identity, or ok=false when no user is
// logged in.
func (s *SessionService) Current() (domain.User, bool, error) {
	return s.repository.Current()
}
