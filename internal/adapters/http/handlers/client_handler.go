package handlers

import (
	"errors"

	"github.com/Rajo-Lahatra/JMC/internal/core/domain"
	"github.com/Rajo-Lahatra/JMC/internal/core/services"
	"github.com/Rajo-Lahatra/JMC/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClientHandler handles client directory endpoints
type ClientHandler struct {
	clientService *services.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// ListClients handles listing all clients
// @Summary List clients
// @Description Get the client directory ordered by name
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *fiber.Ctx) error {
	clients, err := h.clientService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list clients")
	}

	return response.Success(c, "Clients retrieved successfully", fiber.Map{
		"clients": clients,
	})
}

// CreateClientRequest represents create client request body
type CreateClientRequest struct {
	Name string `json:"name"`
}

// CreateClient handles creating a client
// @Summary Create client
// @Description Create a client by name; an existing client with the same name is returned as-is
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateClientRequest true "Client data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var req CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	client, err := h.clientService.Create(c.Context(), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrClientRequired) {
			return response.BadRequest(c, "Client name is required")
		}
		return response.InternalServerError(c, "Failed to create client")
	}

	return response.Created(c, "Client created successfully", fiber.Map{
		"client": client,
	})
}
