package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/dto"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/middleware"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/models"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/service"
)

type RegistrationHandler struct {
	svc service.RegistrationService
}

func NewRegistrationHandler(svc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

func (h *RegistrationHandler) RegisterRoutes(e *echo.Echo) {
	hackathons := e.Group("/api/v1/hackathons")
	hackathons.POST("/:id/registrations", h.CreateRegistration)
	hackathons.GET("/:id/registrations", h.ListRegistrations)
	hackathons.GET("/:id/stats", h.GetStats)

	regs := e.Group("/api/v1/registrations")
	regs.GET("/:id", h.GetRegistration)
	regs.PUT("/:id", h.UpdateRegistration)
	regs.DELETE("/:id", h.CancelRegistration)
	regs.POST("/:id/check-in", h.CheckIn)
	regs.POST("/:id/project", h.SubmitProject)
	regs.PATCH("/:id/status", h.SetStatus)
}

func (h *RegistrationHandler) CreateRegistration(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	hackathonID, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.CreateRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	reg, err := h.svc.Register(c.Request().Context(), hackathonID, actor, service.RegisterInput{
		ParticipationType:    req.ParticipationType,
		TeamName:             req.TeamName,
		TeamMembers:          req.TeamMembers,
		Skills:               req.Skills,
		Organization:         req.Organization,
		AgreeToTerms:         req.AgreeToTerms,
		AgreeToCodeOfConduct: req.AgreeToCodeOfConduct,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

func (h *RegistrationHandler) ListRegistrations(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	hackathonID, err := parseID(c)
	if err != nil {
		return err
	}

	var status *models.RegistrationStatus
	if s := c.QueryParam("status"); s != "" {
		rs := models.RegistrationStatus(s)
		status = &rs
	}

	regs, err := h.svc.ListByHackathon(c.Request().Context(), hackathonID, actor, status)
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.RegistrationResponse, len(regs))
	for i := range regs {
		resp[i] = dto.ToRegistrationResponse(&regs[i])
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *RegistrationHandler) GetStats(c echo.Context) error {
	hackathonID, err := parseID(c)
	if err != nil {
		return err
	}

	stats, err := h.svc.Stats(c.Request().Context(), hackathonID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *RegistrationHandler) GetRegistration(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	reg, err := h.svc.Get(c.Request().Context(), id, actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *RegistrationHandler) UpdateRegistration(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	reg, err := h.svc.Update(c.Request().Context(), id, actor, service.UpdateRegistrationInput{
		TeamName:     req.TeamName,
		TeamMembers:  req.TeamMembers,
		Skills:       req.Skills,
		Organization: req.Organization,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *RegistrationHandler) CancelRegistration(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	reg, err := h.svc.Cancel(c.Request().Context(), id, actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *RegistrationHandler) CheckIn(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	reg, err := h.svc.CheckIn(c.Request().Context(), id, actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *RegistrationHandler) SubmitProject(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.SubmitProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "project title is required")
	}

	reg, err := h.svc.SubmitProject(c.Request().Context(), id, actor, models.ProjectDetails{
		Title:       req.Title,
		Description: req.Description,
		RepoURL:     req.RepoURL,
		DemoURL:     req.DemoURL,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *RegistrationHandler) SetStatus(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}

	reg, err := h.svc.SetStatus(c.Request().Context(), id, actor, req.Status)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}
