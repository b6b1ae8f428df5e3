package httpserver

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gaoqi7/familyCalendar/internal/convert"
)

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Language string `json:"language"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	id, err := s.auth.Register(c.Context(), req.Name, req.Username, req.Password, req.Language)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Username == "" || req.Password == "" {
		return badRequest(c, "username and password required")
	}
	tokens, h, err := s.auth.LoginWithIP(c.Context(), req.Username, req.Password, c.IP())
	if err != nil {
		return respondError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    tokens.AccessToken,
		Expires:  tokens.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{
		"accessToken": tokens.AccessToken,
		"expiresAt":   tokens.ExpiresAt.Format(time.RFC3339),
		"household":   convert.ToHouseholdDTO(h),
	})
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"ok": true})
}

// handleSession reports whether the request carries a valid token and, if so,
// which household it belongs to. Unauthenticated requests get 200 with
// authenticated=false so the client can render the login screen.
func (s *Server) handleSession(c *fiber.Ctx) error {
	id, err := householdFromToken(tokenFromRequest(c), s.signKey)
	if err != nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}
	h, err := s.households.Get(c.Context(), id)
	if err != nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}
	return c.JSON(fiber.Map{
		"authenticated": true,
		"household":     convert.ToHouseholdDTO(*h),
	})
}
