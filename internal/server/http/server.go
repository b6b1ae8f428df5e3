// Package httpserver exposes the familyCalendar JSON API over HTTP.
package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/gaoqi7/familyCalendar/internal/service"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth       service.AuthService
	households service.HouseholdService
	events     service.EventService
	members    service.MemberService
	habits     service.HabitService
	media      service.MediaService
	signKey    []byte
	uploadDir  string
	log        *zap.Logger
}

// Config collects the server's dependencies.
type Config struct {
	Auth       service.AuthService
	Households service.HouseholdService
	Events     service.EventService
	Members    service.MemberService
	Habits     service.HabitService
	Media      service.MediaService
	SignKey    []byte
	UploadDir  string
	Logger     *zap.Logger
}

// New constructs a Server with injected services.
func New(cfg Config) *Server {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		auth:       cfg.Auth,
		households: cfg.Households,
		events:     cfg.Events,
		members:    cfg.Members,
		habits:     cfg.Habits,
		media:      cfg.Media,
		signKey:    cfg.SignKey,
		uploadDir:  cfg.UploadDir,
		log:        log,
	}
}

// Router builds the fiber application with all middleware and routes.
func (s *Server) Router() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             200 * 1024 * 1024, // media uploads
	})

	app.Use(Recover(s.log))
	app.Use(RequestLogger(s.log))

	app.Static("/uploads", s.uploadDir)

	api := app.Group("/api")
	api.Get("/health", s.handleHealth)
	api.Post("/register", s.handleRegister)
	api.Post("/login", s.handleLogin)
	api.Post("/logout", s.handleLogout)
	api.Get("/session", s.handleSession)

	authed := api.Group("", AuthRequired(s.signKey))

	authed.Get("/household", s.handleGetHousehold)
	authed.Patch("/household", s.handlePatchHousehold)

	authed.Get("/members", s.handleListMembers)
	authed.Post("/members", s.handleCreateMember)
	authed.Patch("/members/:id", s.handlePatchMember)
	authed.Post("/members/:id/avatar", s.handleMemberAvatar)
	authed.Post("/members/:id/delete", s.handleDeleteMember)

	authed.Get("/events", s.handleListEvents)
	authed.Get("/events.ics", s.handleExportICS)
	authed.Post("/events", s.handleCreateEvent)
	authed.Patch("/events/:id", s.handlePatchEvent)
	authed.Delete("/events/:id", s.handleDeleteOccurrence)
	authed.Delete("/events/:id/series", s.handleDeleteSeries)

	authed.Get("/habits", s.handleListHabits)
	authed.Post("/habits", s.handleCreateHabit)
	authed.Get("/habit-logs", s.handleListHabitLogs)
	authed.Post("/habit-logs", s.handleCreateHabitLog)

	authed.Get("/media-logs", s.handleListMediaLogs)
	authed.Post("/media-logs", s.handleCreateMediaLog)

	return app
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}
