package handlers

import (
	"errors"

	"github.com/Rajo-Lahatra/JMC/internal/core/services"
	"github.com/Rajo-Lahatra/JMC/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ImportHandler handles spreadsheet import endpoints
type ImportHandler struct {
	importService *services.ImportService
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService *services.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ImportMissions handles a mission spreadsheet upload
// @Summary Import missions
// @Description Bulk-import missions from an .xlsx or .csv upload; the whole file succeeds or fails
// @Tags Import
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Spreadsheet (.xlsx or .csv)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /missions/import [post]
func (h *ImportHandler) ImportMissions(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "A file upload is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "Could not read the uploaded file")
	}
	defer file.Close()

	result, err := h.importService.Import(c.Context(), fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnsupportedFormat):
			return response.BadRequest(c, "Unsupported file format; use .xlsx or .csv")
		case errors.Is(err, services.ErrEmptySheet):
			return response.UnprocessableEntity(c, "The file contains no data rows")
		default:
			return response.InternalServerError(c, "Import failed; no rows were written")
		}
	}

	return response.Success(c, "Import completed", result)
}
