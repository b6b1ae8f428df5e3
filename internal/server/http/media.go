package httpserver

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gaoqi7/familyCalendar/internal/convert"
)

func (s *Server) handleListMediaLogs(c *fiber.Ctx) error {
	logs, err := s.media.List(c.Context(), householdID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(convert.ToMediaLogDTOs(logs))
}

// handleCreateMediaLog accepts a multipart form: the media file plus
// memberId, logDate, mediaType and optional note/durationSec fields.
func (s *Server) handleCreateMediaLog(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "media file required")
	}

	memberID, err := strconv.ParseInt(c.FormValue("memberId"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid memberId")
	}
	logDate, err := convert.ParseDate(c.FormValue("logDate"))
	if err != nil {
		return badRequest(c, "invalid logDate")
	}
	mediaType := c.FormValue("mediaType")

	var note *string
	if v := strings.TrimSpace(c.FormValue("note")); v != "" {
		note = &v
	}
	var durationSec *int64
	if v := c.FormValue("durationSec"); v != "" {
		d, err := strconv.ParseInt(v, 10, 64)
		if err != nil || d < 0 {
			return badRequest(c, "invalid durationSec")
		}
		durationSec = &d
	}

	name, err := s.saveUpload(file.Filename, func(dst string) error {
		return c.SaveFile(file, dst)
	})
	if err != nil {
		s.log.Error("media upload failed")
		return respondError(c, err)
	}

	l, err := s.media.Create(c.Context(), householdID(c), memberID, logDate, mediaType, "/uploads/"+name, note, durationSec)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(convert.ToMediaLogDTO(*l))
}
