package handlers

import (
	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/repositories"
	"github.com/Rajo-Lahatra/JMC/internal/pkg/pagination"
	"github.com/Rajo-Lahatra/JMC/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoginLogHandler serves the login journal
type LoginLogHandler struct {
	loginLogRepo repositories.LoginLogRepository
}

// NewLoginLogHandler creates a new login log handler
func NewLoginLogHandler(loginLogRepo repositories.LoginLogRepository) *LoginLogHandler {
	return &LoginLogHandler{loginLogRepo: loginLogRepo}
}

// ListLoginLogs handles listing the login journal
// @Summary List login logs
// @Description Get the login journal, newest first; restricted to Manager grades and above
// @Tags Audit
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /login-logs [get]
func (h *LoginLogHandler) ListLoginLogs(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	logs, total, err := h.loginLogRepo.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list login logs")
	}

	return response.Success(c, "Login logs retrieved successfully", fiber.Map{
		"logs":       logs,
		"pagination": pagination.BuildMeta(params, total),
	})
}
