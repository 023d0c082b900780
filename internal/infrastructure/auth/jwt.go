package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"

	"github.com/gearguard/gearguard/internal/domain/user"
)

// Claims carries the already-authenticated identity issued by the identity provider.
type Claims struct {
	UserID uint      `json:"user_id"`
	Role   user.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 bearer tokens. Tokens are issued elsewhere.
type JWTVerifier struct {
	secret []byte
	issuer string
	clock  clockwork.Clock
}

func NewJWTVerifier(secret, issuer string, clock clockwork.Clock) *JWTVerifier {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &JWTVerifier{
		secret: []byte(secret),
		issuer: issuer,
		clock:  clock,
	}
}

func (v *JWTVerifier) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.clock.Now),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == 0 {
		return nil, fmt.Errorf("token has no user id")
	}
	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("token has invalid role: %s", claims.Role)
	}
	return claims, nil
}
