package handlers

import (
	"errors"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"
	"github.com/Rajo-Lahatra/JMC/internal/core/domain"
	"github.com/Rajo-Lahatra/JMC/internal/core/services"
	"github.com/Rajo-Lahatra/JMC/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CollaboratorHandler handles staff roster endpoints
type CollaboratorHandler struct {
	collabService *services.CollaboratorService
}

// NewCollaboratorHandler creates a new collaborator handler
func NewCollaboratorHandler(collabService *services.CollaboratorService) *CollaboratorHandler {
	return &CollaboratorHandler{collabService: collabService}
}

// ListCollaborators handles listing the roster
// @Summary List collaborators
// @Description Get the full staff roster ordered by last name
// @Tags Collaborators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /collaborators [get]
func (h *CollaboratorHandler) ListCollaborators(c *fiber.Ctx) error {
	collabs, err := h.collabService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list collaborators")
	}

	out := make([]*models.CollaboratorResponse, 0, len(collabs))
	for _, col := range collabs {
		out = append(out, col.ToResponse())
	}

	return response.Success(c, "Collaborators retrieved successfully", fiber.Map{
		"collaborators": out,
	})
}

// GetCollaborator handles getting a collaborator by ID
// @Summary Get collaborator by ID
// @Tags Collaborators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collaborator ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /collaborators/{id} [get]
func (h *CollaboratorHandler) GetCollaborator(c *fiber.Ctx) error {
	collab, err := h.collabService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCollaboratorNotFound) {
			return response.NotFound(c, "Collaborator not found")
		}
		return response.InternalServerError(c, "Failed to get collaborator")
	}

	return response.Success(c, "Collaborator retrieved successfully", fiber.Map{
		"collaborator": collab.ToResponse(),
	})
}

// CreateCollaborator handles onboarding a collaborator
// @Summary Create collaborator
// @Description Onboard a staff member with a grade; registration with the same email links automatically
// @Tags Collaborators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateCollaboratorInput true "Collaborator data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /collaborators [post]
func (h *CollaboratorHandler) CreateCollaborator(c *fiber.Ctx) error {
	var input services.CreateCollaboratorInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	collab, err := h.collabService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "First name, last name and email are required")
		case errors.Is(err, domain.ErrInvalidGrade):
			return response.BadRequest(c, "Invalid grade")
		case errors.Is(err, domain.ErrEmailTaken):
			return response.Conflict(c, "Email already in use")
		default:
			return response.InternalServerError(c, "Failed to create collaborator")
		}
	}

	return response.Created(c, "Collaborator created successfully", fiber.Map{
		"collaborator": collab.ToResponse(),
	})
}

// UpdateCollaborator handles updating a collaborator
// @Summary Update collaborator
// @Description Change grade or contact details; grade changes apply on the next request
// @Tags Collaborators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collaborator ID"
// @Param body body services.UpdateCollaboratorInput true "Update data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /collaborators/{id} [put]
func (h *CollaboratorHandler) UpdateCollaborator(c *fiber.Ctx) error {
	var input services.UpdateCollaboratorInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	collab, err := h.collabService.Update(c.Context(), c.Params("id"), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCollaboratorNotFound):
			return response.NotFound(c, "Collaborator not found")
		case errors.Is(err, domain.ErrInvalidGrade):
			return response.BadRequest(c, "Invalid grade")
		default:
			return response.InternalServerError(c, "Failed to update collaborator")
		}
	}

	return response.Success(c, "Collaborator updated successfully", fiber.Map{
		"collaborator": collab.ToResponse(),
	})
}

// DeleteCollaborator handles removing a collaborator from the roster
// @Summary Delete collaborator
// @Description Soft delete; historic mission and timesheet references stay intact
// @Tags Collaborators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collaborator ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /collaborators/{id} [delete]
func (h *CollaboratorHandler) DeleteCollaborator(c *fiber.Ctx) error {
	if err := h.collabService.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrCollaboratorNotFound) {
			return response.NotFound(c, "Collaborator not found")
		}
		return response.InternalServerError(c, "Failed to delete collaborator")
	}

	return response.Success(c, "Collaborator deleted successfully", nil)
}
