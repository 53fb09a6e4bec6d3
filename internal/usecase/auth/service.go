package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "kairo/backend/internal/domain/auth"
)

// dummyHash is a well-formed bcrypt hash compared against on the
// unknown-user login path, so that path costs the same as a real
// verification and response timing does not enumerate usernames.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service coordinates authentication workflows between domain and
// infrastructure.
type Service struct {
	users   domain.UserRepository
	hasher  PasswordHasher
	tokens  TokenManager
	nowFunc func() time.Time
}

// NewService constructs an auth service.
func NewService(users domain.UserRepository, hasher PasswordHasher, tokens TokenManager) *Service {
	return &Service{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		nowFunc: time.Now,
	}
}

// Register creates a new unverified user and returns the persisted entity
// without its password hash. The role is fixed here for the account's
// lifetime.
func (s *Service) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	password = strings.TrimSpace(password)
	if username == "" {
		return nil, errors.New("username is required")
	}
	if password == "" {
		return nil, errors.New("password is required")
	}

	userRole, err := ensureRole(role)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := s.nowFunc().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Role:         userRole,
		Verified:     false,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return sanitizeUser(user), nil
}

// Login validates credentials and returns a session token plus the user.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (string, *domain.User, error) {
	username := strings.TrimSpace(strings.ToLower(creds.Username))
	password := strings.TrimSpace(creds.Password)
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.Verify(password, dummyHash)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, sanitizeUser(user), nil
}

// VerifyToken validates a session token and returns the role it carries.
// Any validation failure collapses into ErrTokenInvalid.
func (s *Service) VerifyToken(token string) (domain.Role, error) {
	role, err := s.tokens.Validate(token)
	if err != nil {
		return "", domain.ErrTokenInvalid
	}
	return role, nil
}

// VerifyAccount marks the identified user as verified. Verifying an
// already-verified account succeeds with no observable change.
func (s *Service) VerifyAccount(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrUserNotFound
	}

	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}

	return s.users.SetVerified(ctx, id, true, s.nowFunc().UTC())
}

// ListUsers returns registered users, optionally filtered by verification
// state, without password hashes.
func (s *Service) ListUsers(ctx context.Context, verified *bool) ([]*domain.User, error) {
	users, err := s.users.List(ctx, domain.UserFilter{Verified: verified})
	if err != nil {
		return nil, err
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, sanitizeUser(u))
	}
	return out, nil
}

func ensureRole(raw string) (domain.Role, error) {
	role := domain.Role(strings.TrimSpace(strings.ToLower(raw)))
	if role == "" {
		return domain.RoleStaff, nil
	}
	switch role {
	case domain.RoleStaff, domain.RoleAdmin:
		return role, nil
	default:
		return "", domain.ErrInvalidRole
	}
}

func sanitizeUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	copy := *u
	copy.PasswordHash = ""
	return &copy
}
