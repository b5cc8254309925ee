package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getMe)
		// Admin only
		users.GET("", h.listUsers)
		users.PUT("/:id/role", h.updateRole)
	}
}

// getMe godoc
// @Summary Get the caller's profile
// @Description Returns the profile and effective permissions. A first-time caller is registered as VIEWER.
// @Tags users
// @Produce  json
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve profile"
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetOrCreateProfile(c.Request.Context(), userID, middleware.GetUserNameFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to retrieve profile")
		return
	}

	c.JSON(http.StatusOK, dto.UserProfileResponse{
		UserProfile: *profile,
		Permissions: h.userService.PermissionsFor(profile.Role),
	})
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce  json
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ListUsersResponse{Users: users})
}

// updateRole godoc
// @Summary Change a user's role
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "Target user ID"
// @Param   role body dto.UpdateRoleRequest true "New role"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} map[string]string "Invalid role"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{id}/role [put]
func (h *userHandler) updateRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	targetID := c.Param("id")

	profile, err := h.userService.UpdateUserRole(c.Request.Context(), userID, targetID, req.Role)
	if err != nil {
		respondError(c, err, "Failed to update role")
		return
	}

	logger.Info("User role updated", slog.String("target_user_id", targetID), slog.String("role", string(req.Role)))
	c.JSON(http.StatusOK, profile)
}
