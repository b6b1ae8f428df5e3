package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	pkgcrypto "github.com/gaoqi7/familyCalendar/internal/crypto"
	"github.com/gaoqi7/familyCalendar/internal/errs"
	"github.com/gaoqi7/familyCalendar/internal/limiter"
	"github.com/gaoqi7/familyCalendar/internal/model"
	"github.com/gaoqi7/familyCalendar/internal/repository"
)

// AuthService defines household registration and authentication.
type AuthService interface {
	// Register bootstraps a new household with login credentials.
	Register(ctx context.Context, name, username, password, language string) (householdID int64, err error)
	// LoginWithIP applies rate-limiting and authenticates the household.
	LoginWithIP(ctx context.Context, username, password, ip string) (model.Tokens, model.Household, error)
}

type AuthServiceImpl struct {
	households repository.HouseholdRepository
	signKey    []byte
	accessTTL  time.Duration
	lim        limiter.Limiter
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(households repository.HouseholdRepository, signKey []byte, accessTTL time.Duration, lim limiter.Limiter) *AuthServiceImpl {
	return &AuthServiceImpl{households: households, signKey: signKey, accessTTL: accessTTL, lim: lim}
}

// Register creates a new household record with a per-tenant auth salt.
func (s *AuthServiceImpl) Register(ctx context.Context, name, username, password, language string) (int64, error) {
	if name == "" || username == "" || password == "" {
		return 0, fmt.Errorf("%w: name/username/password required", errs.ErrValidation)
	}
	if language == "" {
		language = "en"
	}
	saltAuth, err := pkgcrypto.RandBytes(pkgcrypto.SaltLen)
	if err != nil {
		return 0, err
	}
	h := &model.Household{
		Name:            name,
		DefaultLanguage: language,
		Username:        username,
		PwdHash:         pkgcrypto.HashPassword([]byte(password), saltAuth),
		SaltAuth:        saltAuth,
	}
	return s.households.Create(ctx, h)
}

// LoginWithIP authenticates with rate limiting by (username, ip).
func (s *AuthServiceImpl) LoginWithIP(ctx context.Context, username, password, ip string) (model.Tokens, model.Household, error) {
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, username, ipHash)
	if err != nil {
		return model.Tokens{}, model.Household{}, err
	}
	if !allowed {
		return model.Tokens{}, model.Household{}, errs.ErrRateLimited
	}

	h, err := s.households.GetByUsername(ctx, username)
	if err != nil || !pkgcrypto.VerifyPassword([]byte(password), h.SaltAuth, h.PwdHash) {
		if blocked, _, ferr := s.lim.Failure(ctx, username, ipHash); ferr == nil && blocked {
			return model.Tokens{}, model.Household{}, errs.ErrRateLimited
		}
		// lookup failure and wrong password look identical to the caller
		return model.Tokens{}, model.Household{}, errs.ErrUnauthorized
	}

	// Success: reset counters (best-effort).
	_ = s.lim.Success(ctx, username, ipHash)

	access, exp, err := s.issueAccessToken(h.ID)
	if err != nil {
		return model.Tokens{}, model.Household{}, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, *h, nil
}

// issueAccessToken creates a signed HS256 JWT with the household id as subject.
func (s *AuthServiceImpl) issueAccessToken(householdID int64) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.accessTTL)
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", householdID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	return signed, exp, err
}
