package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// IssueToken signs a token for an operator. The subject is recorded as the actor of
// adjustments made through the admin API.
func (p *AuthProcessor) IssueToken(ctx context.Context, subject string) (string, error) {
	now := p.now()
	claims := OperatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{issuer},
			ExpiresAt: jwt.NewNumericDate(now.Add(p.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(p.jwtSecret))
	if err != nil {
		p.logger.Error(ctx, "failed to sign operator token", err)
		return "", ErrFailedSignIn
	}
	return token, nil
}

// ValidateJWTToken checks signature, issuer, audience and expiry and returns the operator claims.
func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (OperatorClaims, error) {
	var claims OperatorClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, p.signingKey,
		jwt.WithIssuer(issuer),
		jwt.WithAudience(issuer),
		jwt.WithTimeFunc(p.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		p.logger.WarnWithError(ctx, "operator token expired", err)
		return OperatorClaims{}, ErrExpiredToken
	case err != nil:
		p.logger.WarnWithError(ctx, "failed to parse operator token", err)
		return OperatorClaims{}, ErrParseJWTToken
	case !parsed.Valid, claims.Subject == "":
		return OperatorClaims{}, ErrInvalidJWTToken
	}
	return claims, nil
}

func (p *AuthProcessor) signingKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(p.jwtSecret), nil
}
