package httpserver

import (
	"errors"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// householdIDKey is the locals key carrying the authenticated tenant id.
const householdIDKey = "householdID"

// RequestLogger returns middleware that logs one structured line per request.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe := new(fiber.Error); errors.As(err, &fe) {
				status = fe.Code
			}
		}
		// metadata only, no payloads
		log.Info("http",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("dur", time.Since(start)),
			zap.String("peer", c.IP()),
		)
		return err
	}
}

// Recover returns middleware that recovers from handler panics.
func Recover(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic",
					zap.Any("reason", r),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", c.Path()),
				)
				err = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal"})
			}
		}()
		return c.Next()
	}
}

// AuthRequired verifies the bearer token and stores the household id in locals.
func AuthRequired(signKey []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := householdFromToken(tokenFromRequest(c), signKey)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		c.Locals(householdIDKey, id)
		return c.Next()
	}
}

// householdID returns the authenticated tenant id set by AuthRequired.
func householdID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(householdIDKey).(int64)
	return id
}

// tokenFromRequest extracts the JWT from the Authorization header, falling
// back to the access_token cookie.
func tokenFromRequest(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(auth) >= 7 && strings.EqualFold(auth[:7], "bearer ") {
		if t := strings.TrimSpace(auth[7:]); t != "" {
			return t
		}
	}
	return c.Cookies("access_token")
}

// householdFromToken verifies an HS256 JWT and returns its subject as the
// household id.
func householdFromToken(token string, signKey []byte) (int64, error) {
	if token == "" {
		return 0, errors.New("no token")
	}
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return signKey, nil
	})
	if err != nil || !parsed.Valid {
		return 0, errors.New("invalid token")
	}

	v := jwt.NewValidator(jwt.WithLeeway(30 * time.Second))
	if err := v.Validate(&claims); err != nil {
		return 0, errors.New("token expired or not valid yet")
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("bad subject")
	}
	return id, nil
}
