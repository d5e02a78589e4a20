package handlers

import (
	"errors"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/http/middleware"
	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/repositories"
	"github.com/Rajo-Lahatra/JMC/internal/core/domain"
	"github.com/Rajo-Lahatra/JMC/internal/core/services"
	"github.com/Rajo-Lahatra/JMC/internal/pkg/pagination"
	"github.com/Rajo-Lahatra/JMC/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MissionHandler handles mission endpoints
type MissionHandler struct {
	missionService *services.MissionService
}

// NewMissionHandler creates a new mission handler
func NewMissionHandler(missionService *services.MissionService) *MissionHandler {
	return &MissionHandler{missionService: missionService}
}

// CreateMission handles mission creation
// @Summary Create mission
// @Description Create a mission; the client is resolved or created by name, internal missions are forced non-billable
// @Tags Missions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateMissionInput true "Mission data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /missions [post]
func (h *MissionHandler) CreateMission(c *fiber.Ctx) error {
	var input services.CreateMissionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	actor := middleware.GetActor(c)
	mission, err := h.missionService.Create(c.Context(), &input, actor)
	if err != nil {
		return missionError(c, err)
	}

	return response.Created(c, "Mission created successfully", fiber.Map{
		"mission": mission.ToResponse(actor.CanEditFinance()),
	})
}

// ListMissions handles listing missions with filters
// @Summary List missions
// @Description Get a paginated mission list; filters combine with AND
// @Tags Missions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param search query string false "Matches client name, title or dossier number"
// @Param service query string false "Service line (TLS, GCS, LT, Advisory)"
// @Param stage query string false "Pipeline stage"
// @Param created_by query string false "Creator collaborator id"
// @Param partner_id query string false "Responsible partner id"
// @Param billable query bool false "Billable flag"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /missions [get]
func (h *MissionHandler) ListMissions(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	filter := &repositories.MissionFilter{
		Search:    c.Query("search"),
		Service:   c.Query("service"),
		Stage:     c.Query("stage"),
		CreatedBy: c.Query("created_by"),
		PartnerID: c.Query("partner_id"),
	}
	if b := c.Query("billable"); b != "" {
		billable := b == "true" || b == "1"
		filter.Billable = &billable
	}

	input := &services.ListInput{
		Filter: filter,
		Offset: params.Offset,
		Limit:  params.Limit,
	}

	missions, total, err := h.missionService.List(c.Context(), input, middleware.GetActor(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list missions")
	}

	return response.Success(c, "Missions retrieved successfully", fiber.Map{
		"missions":   missions,
		"pagination": pagination.BuildMeta(params, total),
	})
}

// GetMission handles getting a mission by ID
// @Summary Get mission by ID
// @Description Get a mission with client, partner, creator and assignees
// @Tags Missions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mission ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /missions/{id} [get]
func (h *MissionHandler) GetMission(c *fiber.Ctx) error {
	mission, err := h.missionService.GetByID(c.Context(), c.Params("id"), middleware.GetActor(c))
	if err != nil {
		if errors.Is(err, services.ErrMissionNotFound) {
			return response.NotFound(c, "Mission not found")
		}
		return response.InternalServerError(c, "Failed to get mission")
	}

	return response.Success(c, "Mission retrieved successfully", fiber.Map{
		"mission": mission,
	})
}

// UpdateMission handles updating a mission
// @Summary Update mission
// @Description Full-record update; identity fields never change, last writer wins
// @Tags Missions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mission ID"
// @Param body body services.UpdateMissionInput true "Mission data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /missions/{id} [put]
func (h *MissionHandler) UpdateMission(c *fiber.Ctx) error {
	var input services.UpdateMissionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	actor := middleware.GetActor(c)
	mission, err := h.missionService.Update(c.Context(), c.Params("id"), &input, actor)
	if err != nil {
		return missionError(c, err)
	}

	return response.Success(c, "Mission updated successfully", fiber.Map{
		"mission": mission.ToResponse(actor.CanEditFinance()),
	})
}

// DeleteMission handles deleting a mission
// @Summary Delete mission
// @Description Delete a mission with its collaborator links and timesheet entries
// @Tags Missions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mission ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /missions/{id} [delete]
func (h *MissionHandler) DeleteMission(c *fiber.Ctx) error {
	if err := h.missionService.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, services.ErrMissionNotFound) {
			return response.NotFound(c, "Mission not found")
		}
		return response.InternalServerError(c, "Failed to delete mission")
	}

	return response.Success(c, "Mission deleted successfully", nil)
}

// DuplicateMission handles duplicating a mission
// @Summary Duplicate mission
// @Description Copy a mission under a new id with a "-copy" dossier suffix; links and timesheets are not copied
// @Tags Missions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mission ID"
// @Success 201 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /missions/{id}/duplicate [post]
func (h *MissionHandler) DuplicateMission(c *fiber.Ctx) error {
	actor := middleware.GetActor(c)
	mission, err := h.missionService.Duplicate(c.Context(), c.Params("id"), actor)
	if err != nil {
		if errors.Is(err, services.ErrMissionNotFound) {
			return response.NotFound(c, "Mission not found")
		}
		return response.InternalServerError(c, "Failed to duplicate mission")
	}

	return response.Created(c, "Mission duplicated successfully", fiber.Map{
		"mission": mission.ToResponse(actor.CanEditFinance()),
	})
}

// SituationEmailRequest represents the situation email request body
type SituationEmailRequest struct {
	Recipient string `json:"recipient"`
}

// SituationEmail composes the status email of a mission
// @Summary Compose situation email
// @Description Build the templated status email for a mission; nothing is sent server-side
// @Tags Missions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mission ID"
// @Param body body SituationEmailRequest true "Recipient"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /missions/{id}/situation-email [post]
func (h *MissionHandler) SituationEmail(c *fiber.Ctx) error {
	var req SituationEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	email, err := h.missionService.ComposeSituationEmail(c.Context(), c.Params("id"), req.Recipient)
	if err != nil {
		if errors.Is(err, services.ErrMissionNotFound) {
			return response.NotFound(c, "Mission not found")
		}
		return response.InternalServerError(c, "Failed to compose situation email")
	}

	return response.Success(c, "Situation email composed", email)
}

// missionError maps mission service errors onto HTTP responses
func missionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMissionNotFound):
		return response.NotFound(c, "Mission not found")
	case errors.Is(err, services.ErrClientNotFound):
		return response.NotFound(c, "Client not found")
	case errors.Is(err, services.ErrPartnerNotFound):
		return response.NotFound(c, "Partner not found")
	case errors.Is(err, services.ErrNotAPartner):
		return response.UnprocessableEntity(c, "Responsible partner must have the Partner grade")
	case errors.Is(err, services.ErrNegativeAmount):
		return response.UnprocessableEntity(c, "Amounts must be non-negative")
	case errors.Is(err, domain.ErrDossierRequired):
		return response.BadRequest(c, "Dossier number is required")
	case errors.Is(err, domain.ErrTitleRequired):
		return response.BadRequest(c, "Mission title is required")
	case errors.Is(err, domain.ErrClientRequired):
		return response.BadRequest(c, "A client is required")
	case errors.Is(err, domain.ErrPartnerRequired):
		return response.UnprocessableEntity(c, "A responsible partner is required for billable missions")
	case errors.Is(err, domain.ErrUnknownPrestation):
		return response.UnprocessableEntity(c, "Prestation does not belong to the selected category")
	case errors.Is(err, domain.ErrInvalidService):
		return response.BadRequest(c, "Invalid service line")
	case errors.Is(err, domain.ErrInvalidStage):
		return response.BadRequest(c, "Invalid mission stage")
	case errors.Is(err, domain.ErrInvalidCurrency):
		return response.BadRequest(c, "Invalid currency")
	default:
		return response.InternalServerError(c, "Failed to process mission")
	}
}
