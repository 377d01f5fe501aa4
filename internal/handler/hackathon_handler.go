package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/dto"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/middleware"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/models"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/service"
)

type HackathonHandler struct {
	svc service.HackathonService
}

func NewHackathonHandler(svc service.HackathonService) *HackathonHandler {
	return &HackathonHandler{svc: svc}
}

func (h *HackathonHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateHackathon)
	g.GET("", h.ListHackathons)
	g.GET("/:id", h.GetHackathon)
	g.PUT("/:id", h.UpdateHackathon)
	g.POST("/:id/publish", h.PublishHackathon)
	g.DELETE("/:id", h.DeleteHackathon)
}

func (h *HackathonHandler) CreateHackathon(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.CreateHackathonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	hackathon := &models.Hackathon{
		Title:                req.Title,
		Description:          req.Description,
		Location:             req.Location,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		RegistrationDeadline: req.RegistrationDeadline,
		TeamSizeMin:          req.TeamSizeMin,
		TeamSizeMax:          req.TeamSizeMax,
		MaxParticipants:      req.MaxParticipants,
		JudgingCriteria:      req.JudgingCriteria,
	}

	if err := h.svc.Create(c.Request().Context(), actor, hackathon); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToHackathonResponse(hackathon, time.Now()))
}

func (h *HackathonHandler) GetHackathon(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	hackathon, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToHackathonResponse(hackathon, time.Now()))
}

func (h *HackathonHandler) ListHackathons(c echo.Context) error {
	var status *models.HackathonStatus
	if s := c.QueryParam("status"); s != "" {
		hs := models.HackathonStatus(s)
		status = &hs
	}

	hackathons, err := h.svc.List(c.Request().Context(), status)
	if err != nil {
		return httpError(err)
	}

	now := time.Now()
	resp := make([]dto.HackathonResponse, len(hackathons))
	for i := range hackathons {
		resp[i] = dto.ToHackathonResponse(&hackathons[i], now)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *HackathonHandler) UpdateHackathon(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateHackathonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	hackathon, err := h.svc.Update(c.Request().Context(), id, actor, service.UpdateHackathonInput{
		Title:                req.Title,
		Description:          req.Description,
		Location:             req.Location,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		RegistrationDeadline: req.RegistrationDeadline,
		TeamSizeMin:          req.TeamSizeMin,
		TeamSizeMax:          req.TeamSizeMax,
		MaxParticipants:      req.MaxParticipants,
		JudgingCriteria:      req.JudgingCriteria,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToHackathonResponse(hackathon, time.Now()))
}

func (h *HackathonHandler) PublishHackathon(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	hackathon, err := h.svc.Publish(c.Request().Context(), id, actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.ToHackathonResponse(hackathon, time.Now()))
}

func (h *HackathonHandler) DeleteHackathon(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id, actor); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
