package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type thirdPartyHandler struct {
	thirdPartyService portssvc.ThirdPartySvcFacade
}

func newThirdPartyHandler(ts portssvc.ThirdPartySvcFacade) *thirdPartyHandler {
	return &thirdPartyHandler{thirdPartyService: ts}
}

// registerThirdPartyRoutes registers routes for customers, providers and employees.
func registerThirdPartyRoutes(rg *gin.RouterGroup, thirdPartyService portssvc.ThirdPartySvcFacade) {
	h := newThirdPartyHandler(thirdPartyService)

	parties := rg.Group("/third-parties")
	{
		parties.POST("", h.createThirdParty)
		parties.GET("", h.listThirdParties)
		parties.GET("/:id", h.getThirdParty)
	}
}

// createThirdParty godoc
// @Summary Register a third party
// @Description For NIT documents the check digit (dv) is computed when omitted and verified when supplied.
// @Tags third-parties
// @Accept  json
// @Produce  json
// @Param   thirdParty body dto.CreateThirdPartyRequest true "Third party details"
// @Success 201 {object} domain.ThirdParty
// @Failure 400 {object} map[string]string "Invalid input or wrong check digit"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Document already registered"
// @Failure 500 {object} map[string]string "Failed to create third party"
// @Security BearerAuth
// @Router /third-parties [post]
func (h *thirdPartyHandler) createThirdParty(c *gin.Context) {
	var req dto.CreateThirdPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	party, err := h.thirdPartyService.CreateThirdParty(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create third party")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Third party created", slog.String("third_party_id", party.ID))
	c.JSON(http.StatusCreated, party)
}

// getThirdParty godoc
// @Summary Get a third party by ID
// @Tags third-parties
// @Produce  json
// @Param   id path string true "Third party ID"
// @Success 200 {object} domain.ThirdParty
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Third party not found"
// @Security BearerAuth
// @Router /third-parties/{id} [get]
func (h *thirdPartyHandler) getThirdParty(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	party, err := h.thirdPartyService.GetThirdPartyByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve third party")
		return
	}
	c.JSON(http.StatusOK, party)
}

// listThirdParties godoc
// @Summary List third parties
// @Description Ordered by name. search matches name or document number ignoring accents and case.
// @Tags third-parties
// @Produce  json
// @Param   search query string false "Search text"
// @Success 200 {object} dto.ListThirdPartiesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /third-parties [get]
func (h *thirdPartyHandler) listThirdParties(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListThirdPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}

	parties, err := h.thirdPartyService.ListThirdParties(c.Request.Context(), params, userID)
	if err != nil {
		respondError(c, err, "Failed to list third parties")
		return
	}
	c.JSON(http.StatusOK, dto.ListThirdPartiesResponse{ThirdParties: parties})
}
