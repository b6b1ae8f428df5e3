package httpserver

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gaoqi7/familyCalendar/internal/convert"
	"github.com/gaoqi7/familyCalendar/internal/ics"
)

func (s *Server) handleListEvents(c *fiber.Ctx) error {
	events, err := s.events.List(c.Context(), householdID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(convert.ToEventDTOs(events))
}

func (s *Server) handleCreateEvent(c *fiber.Ctx) error {
	var req convert.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Title == "" || req.StartAt == "" {
		return badRequest(c, "title and startAt required")
	}
	in, err := convert.FromCreateEventRequest(req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	ev, err := s.events.Create(c.Context(), householdID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(convert.ToEventDTO(*ev))
}

func (s *Server) handlePatchEvent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "invalid event id")
	}
	var req convert.PatchEventRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Title == nil && req.StartAt == nil && req.EndAt == nil && req.Note == nil &&
		req.MemberID == nil && req.RepeatRule == nil {
		return badRequest(c, "no fields to update")
	}
	patch, err := convert.FromPatchEventRequest(req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	ev, err := s.events.Update(c.Context(), householdID(c), int64(id), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(convert.ToEventDTO(*ev))
}

func (s *Server) handleDeleteOccurrence(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "invalid event id")
	}
	if err := s.events.DeleteOccurrence(c.Context(), householdID(c), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (s *Server) handleDeleteSeries(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "invalid event id")
	}
	if err := s.events.DeleteSeries(c.Context(), householdID(c), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (s *Server) handleExportICS(c *fiber.Ctx) error {
	hh := householdID(c)
	events, err := s.events.List(c.Context(), hh)
	if err != nil {
		return respondError(c, err)
	}
	name := ""
	if h, err := s.households.Get(c.Context(), hh); err == nil {
		name = h.Name
	}
	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="calendar.ics"`)
	return c.SendString(ics.Export(name, events))
}
