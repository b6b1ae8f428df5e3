package httpserver

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gaoqi7/familyCalendar/internal/convert"
)

type patchHouseholdRequest struct {
	Name            *string `json:"name"`
	DefaultLanguage *string `json:"defaultLanguage"`
}

func (s *Server) handleGetHousehold(c *fiber.Ctx) error {
	h, err := s.households.Get(c.Context(), householdID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(convert.ToHouseholdDTO(*h))
}

func (s *Server) handlePatchHousehold(c *fiber.Ctx) error {
	var req patchHouseholdRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Name == nil && req.DefaultLanguage == nil {
		return badRequest(c, "no fields to update")
	}
	h, err := s.households.UpdateProfile(c.Context(), householdID(c), req.Name, req.DefaultLanguage)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(convert.ToHouseholdDTO(*h))
}
