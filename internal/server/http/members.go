package httpserver

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/gaoqi7/familyCalendar/internal/convert"
)

type createMemberRequest struct {
	Name        string  `json:"name"`
	AvatarColor *string `json:"avatarColor"`
}

type patchMemberRequest struct {
	Name        *string `json:"name"`
	AvatarColor *string `json:"avatarColor"`
}

type deleteMemberRequest struct {
	Password string `json:"password"`
}

func (s *Server) handleListMembers(c *fiber.Ctx) error {
	members, err := s.members.List(c.Context(), householdID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(convert.ToMemberDTOs(members))
}

func (s *Server) handleCreateMember(c *fiber.Ctx) error {
	var req createMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	m, err := s.members.Create(c.Context(), householdID(c), req.Name, req.AvatarColor)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(convert.ToMemberDTO(*m))
}

func (s *Server) handlePatchMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "invalid member id")
	}
	var req patchMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	m, err := s.members.Update(c.Context(), householdID(c), int64(id), req.Name, req.AvatarColor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(convert.ToMemberDTO(*m))
}

func (s *Server) handleMemberAvatar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "invalid member id")
	}
	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "avatar file required")
	}
	name, err := s.saveUpload(file.Filename, func(dst string) error {
		return c.SaveFile(file, dst)
	})
	if err != nil {
		s.log.Error("avatar upload failed")
		return respondError(c, err)
	}
	m, err := s.members.SetAvatar(c.Context(), householdID(c), int64(id), "/uploads/"+name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(convert.ToMemberDTO(*m))
}

func (s *Server) handleDeleteMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "invalid member id")
	}
	var req deleteMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := s.members.Delete(c.Context(), householdID(c), int64(id), req.Password); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// saveUpload stores an uploaded file under the upload dir with a random name,
// keeping the original extension. Returns the stored file name.
func (s *Server) saveUpload(original string, save func(dst string) error) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	u, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), u.String(), ext)
	if err := save(filepath.Join(s.uploadDir, name)); err != nil {
		return "", err
	}
	return name, nil
}
