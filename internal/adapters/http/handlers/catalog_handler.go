package handlers

import (
	"github.com/Rajo-Lahatra/JMC/internal/core/catalog"
	"github.com/Rajo-Lahatra/JMC/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the read-only prestation taxonomy
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListCategories handles listing the full taxonomy
// @Summary List catalog categories
// @Description Get the two-level prestation taxonomy; category F holds internal non-billable work
// @Tags Catalog
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /catalog [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	return response.Success(c, "Catalog retrieved successfully", fiber.Map{
		"categories": catalog.Categories(),
	})
}

// ListPrestations handles listing the prestations of one category
// @Summary List prestations of a category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param code path string true "Category code"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /catalog/{code} [get]
func (h *CatalogHandler) ListPrestations(c *fiber.Ctx) error {
	code := c.Params("code")
	prestations, ok := catalog.Prestations(code)
	if !ok {
		return response.NotFound(c, "Category not found")
	}

	return response.Success(c, "Prestations retrieved successfully", fiber.Map{
		"category":    code,
		"internal":    catalog.IsInternal(code),
		"prestations": prestations,
	})
}
