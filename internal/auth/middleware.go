// Package auth verifies the access tokens issued by the hosted identity
// provider and exposes the caller's user id to handlers. Sign-up, login and
// session refresh happen at the provider and are not handled here.
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const localsUserID = "user_id"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify checks an HS256 token and returns the user id held in "sub".
func (v *Verifier) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", ErrInvalidToken
	}
	return id.String(), nil
}

// Middleware rejects requests without a valid bearer token.
func Middleware(v *Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(fiber.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(raw, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "unauthorized",
				"message": ErrMissingToken.Error(),
			})
		}

		userID, err := v.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "unauthorized",
				"message": err.Error(),
			})
		}

		c.Locals(localsUserID, userID)
		return c.Next()
	}
}

// UserID returns the authenticated user id, or "" outside the middleware.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsUserID).(string)
	return id
}

// WithUserID pins the user id without token checks. Handler tests mount it
// in place of Middleware.
func WithUserID(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localsUserID, userID)
		return c.Next()
	}
}
