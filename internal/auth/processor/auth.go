package processor

import (
	"errors"
	"time"

	"guild-bot/internal/observability"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "guild-bot"

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrParseJWTToken   = errors.New("failed to parse jwt token")
	ErrExpiredToken    = errors.New("token expired")
	ErrFailedSignIn    = errors.New("failed to sign token")
)

// AuthProcessor issues and validates admin API bearer tokens
type AuthProcessor struct {
	jwtSecret string
	tokenTTL  time.Duration
	logger    *observability.Logger
	now       func() time.Time
}

func New(jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		jwtSecret: jwtSecret,
		tokenTTL:  24 * time.Hour,
		logger:    logger,
		now:       time.Now,
	}
}

// OperatorClaims identifies the operator behind an admin API call.
type OperatorClaims struct {
	jwt.RegisteredClaims
}
