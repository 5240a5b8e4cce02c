package middleware

import (
	"classroom/config"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	LocalUserID = "userId"
	LocalRole   = "role"
)

// Claims is the token payload: the user id and the role claim.
type Claims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller as seen by controllers.
type Identity struct {
	UserID uint
	Role   string
}

// GenerateJWT issues an access token for the user, valid for the configured TTL.
func GenerateJWT(userID uint, role string) (string, error) {
	cfg := config.AppConfig
	return signToken(cfg.JWTKey, cfg.JWTAlgorithm, userID, role, cfg.AccessTokenTTL)
}

// ParseJWT verifies signature, algorithm and expiry and returns the embedded claims.
func ParseJWT(tokenString string) (*Claims, error) {
	cfg := config.AppConfig
	return parseToken(cfg.JWTKey, cfg.JWTAlgorithm, tokenString)
}

func signingMethod(alg string) (*jwt.SigningMethodHMAC, error) {
	switch alg {
	case "", "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	}
	return nil, fmt.Errorf("unsupported JWT_ALGORITHM %q", alg)
}

func signToken(secret, alg string, userID uint, role string, ttl time.Duration) (string, error) {
	method, err := signingMethod(alg)
	if err != nil {
		return "", err
	}

	issuedAt := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(secret))
}

func parseToken(secret, alg, tokenString string) (*Claims, error) {
	method, err := signingMethod(alg)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Only the configured HMAC variant is accepted
		if token.Method.Alg() != method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, AuthError("Invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Role == "" || claims.ExpiresAt == nil {
		return nil, AuthError("Invalid token payload")
	}
	return claims, nil
}

// bearerToken pulls the token out of "Authorization: Bearer <token>".
func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", AuthError("Missing or invalid Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", AuthError("Invalid Authorization header format")
	}
	return strings.TrimSpace(parts[1]), nil
}

// authenticate verifies the bearer token and stores the identity in the request locals.
func authenticate(c *fiber.Ctx) (*Identity, error) {
	tokenString, err := bearerToken(c)
	if err != nil {
		return nil, err
	}

	claims, err := ParseJWT(tokenString)
	if err != nil {
		return nil, err
	}

	c.Locals(LocalUserID, claims.UserID)
	c.Locals(LocalRole, claims.Role)
	return &Identity{UserID: claims.UserID, Role: claims.Role}, nil
}

// CurrentIdentity returns the identity stored by the authorization gate.
func CurrentIdentity(c *fiber.Ctx) (Identity, error) {
	userID, ok := c.Locals(LocalUserID).(uint)
	if !ok {
		return Identity{}, AuthError("Unauthorized!")
	}
	role, _ := c.Locals(LocalRole).(string)
	return Identity{UserID: userID, Role: role}, nil
}
