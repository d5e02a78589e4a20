package handlers

import (
	"errors"

	"github.com/Rajo-Lahatra/JMC/internal/core/domain"
	"github.com/Rajo-Lahatra/JMC/internal/core/services"
	"github.com/Rajo-Lahatra/JMC/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TimesheetHandler handles timesheet endpoints
type TimesheetHandler struct {
	timesheetService *services.TimesheetService
}

// NewTimesheetHandler creates a new timesheet handler
func NewTimesheetHandler(timesheetService *services.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{timesheetService: timesheetService}
}

// AddEntry handles adding a timesheet entry to a mission
// @Summary Add timesheet entry
// @Description Log hours worked by a collaborator on a mission
// @Tags Timesheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mission ID"
// @Param body body services.AddEntryInput true "Entry data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /missions/{id}/timesheets [post]
func (h *TimesheetHandler) AddEntry(c *fiber.Ctx) error {
	var input services.AddEntryInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	input.MissionID = c.Params("id")

	entry, err := h.timesheetService.AddEntry(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissionNotFound):
			return response.NotFound(c, "Mission not found")
		case errors.Is(err, domain.ErrCollaboratorNotFound):
			return response.NotFound(c, "Collaborator not found")
		case errors.Is(err, domain.ErrInvalidHours):
			return response.BadRequest(c, "Hours worked must be positive")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Mission, collaborator and date are required")
		default:
			return response.InternalServerError(c, "Failed to add timesheet entry")
		}
	}

	return response.Created(c, "Timesheet entry added", fiber.Map{
		"entry": entry,
	})
}

// DeleteEntry handles deleting a timesheet entry
// @Summary Delete timesheet entry
// @Description Remove a logged time entry
// @Tags Timesheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mission ID"
// @Param entryId path string true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /missions/{id}/timesheets/{entryId} [delete]
func (h *TimesheetHandler) DeleteEntry(c *fiber.Ctx) error {
	if err := h.timesheetService.DeleteEntry(c.Context(), c.Params("entryId")); err != nil {
		if errors.Is(err, domain.ErrTimesheetNotFound) {
			return response.NotFound(c, "Timesheet entry not found")
		}
		return response.InternalServerError(c, "Failed to delete timesheet entry")
	}

	return response.Success(c, "Timesheet entry deleted", nil)
}

// Valuation returns the valuation of a mission
// @Summary Mission valuation
// @Description Value the logged hours at grade hourly rates; recomputed on every read
// @Tags Timesheets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mission ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /missions/{id}/valuation [get]
func (h *TimesheetHandler) Valuation(c *fiber.Ctx) error {
	valuation, err := h.timesheetService.Valuation(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrMissionNotFound) {
			return response.NotFound(c, "Mission not found")
		}
		return response.InternalServerError(c, "Failed to compute valuation")
	}

	return response.Success(c, "Valuation computed", valuation)
}
