package handlers

import (
	"github.com/Rajo-Lahatra/JMC/internal/core/services"
	"github.com/Rajo-Lahatra/JMC/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles statistics endpoints
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// MissionsPerClient handles the missions-per-client distribution
// @Summary Missions per client
// @Description Mission counts grouped by client, zero-filled for clients with none
// @Tags Stats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /stats/missions-per-client [get]
func (h *StatsHandler) MissionsPerClient(c *fiber.Ctx) error {
	stats, err := h.statsService.MissionsPerClient(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute statistics")
	}

	return response.Success(c, "Statistics computed", fiber.Map{
		"stats": stats,
	})
}

// MissionsPerCollaborator handles the missions-per-creator distribution
// @Summary Missions per collaborator
// @Description Created-mission counts grouped by collaborator, zero-filled for those with none
// @Tags Stats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /stats/missions-per-collaborator [get]
func (h *StatsHandler) MissionsPerCollaborator(c *fiber.Ctx) error {
	stats, err := h.statsService.MissionsPerCollaborator(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute statistics")
	}

	return response.Success(c, "Statistics computed", fiber.Map{
		"stats": stats,
	})
}
