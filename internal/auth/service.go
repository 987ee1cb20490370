package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ehfoto/backoffice/internal/staff"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type Repository interface {
	SaveSession(ctx context.Context, s *Session, ttl time.Duration) error
	GetSession(ctx context.Context, id string) (*Session, error)
	DeleteSession(ctx context.Context, id string) error
}

type StaffFinder interface {
	GetByCode(ctx context.Context, code string) (*staff.Staff, error)
}

// AdminCredentials is the single static administrator login.
type AdminCredentials struct {
	Username string
	Password string
}

type Service struct {
	sessions Repository
	staff    StaffFinder
	tokens   *TokenManager
	admin    AdminCredentials
	now      func() time.Time
}

func NewService(sessions Repository, staff StaffFinder, tokens *TokenManager, admin AdminCredentials) *Service {
	return &Service{sessions: sessions, staff: staff, tokens: tokens, admin: admin, now: time.Now}
}

func (s *Service) isAdmin(identifier, password string) bool {
	if s.admin.Username == "" || !strings.EqualFold(identifier, s.admin.Username) {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
}

// Login checks the admin credential first, then staff code and password.
// It returns a signed token and the session it refers to.
func (s *Service) Login(ctx context.Context, identifier, password string) (string, *Session, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	now := s.now()
	sess := &Session{ID: uuid.NewString(), CreatedAt: now}

	if s.isAdmin(identifier, password) {
		sess.Kind = KindAdmin
	} else {
		st, err := s.staff.GetByCode(ctx, identifier)
		if err != nil {
			if errors.Is(err, staff.ErrNotFound) {
				return "", nil, ErrInvalidCredentials
			}

			return "", nil, fmt.Errorf("looking up staff: %w", err)
		}

		if !st.CheckPassword(password) {
			return "", nil, ErrInvalidCredentials
		}

		sess.Kind = KindStaff
		sess.StaffID = st.ID
		sess.StaffCode = st.Code
		sess.StaffName = st.Name
		sess.Position = st.Position
	}

	token, expiresAt, err := s.tokens.GenerateToken(sess.ID, sess.Kind, now)
	if err != nil {
		return "", nil, fmt.Errorf("signing token: %w", err)
	}

	sess.ExpiresAt = expiresAt

	if err := s.sessions.SaveSession(ctx, sess, s.tokens.TTL()); err != nil {
		return "", nil, fmt.Errorf("saving session: %w", err)
	}

	return token, sess, nil
}

// Authenticate resolves a bearer token to its live session.
func (s *Service) Authenticate(ctx context.Context, token string) (*Session, error) {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	return s.sessions.GetSession(ctx, claims.ID)
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.DeleteSession(ctx, sessionID)
}
