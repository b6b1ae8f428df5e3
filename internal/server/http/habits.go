package httpserver

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gaoqi7/familyCalendar/internal/convert"
)

type createHabitRequest struct {
	MemberID  *int64 `json:"memberId"`
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
}

type createHabitLogRequest struct {
	HabitID  int64   `json:"habitId"`
	MemberID *int64  `json:"memberId"`
	LogDate  string  `json:"logDate"`
	Status   string  `json:"status"`
	Note     *string `json:"note"`
}

func (s *Server) handleListHabits(c *fiber.Ctx) error {
	habits, err := s.habits.ListHabits(c.Context(), householdID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(convert.ToHabitDTOs(habits))
}

func (s *Server) handleCreateHabit(c *fiber.Ctx) error {
	var req createHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	h, err := s.habits.CreateHabit(c.Context(), householdID(c), req.MemberID, req.Name, req.Frequency)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(convert.ToHabitDTO(*h))
}

func (s *Server) handleListHabitLogs(c *fiber.Ctx) error {
	logs, err := s.habits.ListLogs(c.Context(), householdID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(convert.ToHabitLogDTOs(logs))
}

func (s *Server) handleCreateHabitLog(c *fiber.Ctx) error {
	var req createHabitLogRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	logDate, err := convert.ParseDate(req.LogDate)
	if err != nil {
		return badRequest(c, "invalid logDate")
	}
	l, err := s.habits.CreateLog(c.Context(), householdID(c), req.HabitID, req.MemberID, logDate, req.Status, req.Note)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(convert.ToHabitLogDTO(*l))
}
