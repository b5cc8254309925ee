package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: js,
	}
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/:id", h.getJournalEntry)
		entries.POST("/:id/approve", h.approveJournalEntry)
		entries.POST("/:id/void", h.voidJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Create a journal entry
// @Description Creates an entry as BORRADOR, or approves it in the same call when isApproved is set.
// @Description Approval requires balanced lines (difference at most 0.01) and is checked before anything is stored.
// @Description A 202 means the entry was stored as a draft but approval could not be recorded; retry with the approve endpoint.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Entry with its lines"
// @Success 201 {object} dto.JournalEntryResponse
// @Success 202 {object} dto.ApprovalPendingResponse
// @Failure 400 {object} map[string]string "Invalid input or unbalanced entry"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Referenced account or third party not found"
// @Failure 500 {object} map[string]string "Failed to create journal entry"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	logger.Info("Received request to create journal entry",
		slog.Int("line_count", len(req.Lines)),
		slog.Bool("is_approved", req.IsApproved))

	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create journal entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Tags journal-entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /journal-entries/{id} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetJournalEntryByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Newest first by date and sequence number. Pass nextToken from the previous page to continue.
// @Tags journal-entries
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}

	resp, err := h.journalService.ListJournalEntries(c.Request.Context(), params, userID)
	if err != nil {
		respondError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// approveJournalEntry godoc
// @Summary Approve a draft entry
// @Description The version must match the stored one; a mismatch is a 409.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   body body dto.ChangeEntryStateRequest true "Current version"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Unbalanced entry or invalid transition"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Version conflict"
// @Security BearerAuth
// @Router /journal-entries/{id}/approve [post]
func (h *journalHandler) approveJournalEntry(c *gin.Context) {
	h.changeState(c, h.journalService.ApproveEntry, "approve")
}

// voidJournalEntry godoc
// @Summary Void an entry
// @Description Drafts and approved entries may be voided. ANULADO is terminal.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   body body dto.ChangeEntryStateRequest true "Current version"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]string "Invalid transition"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Version conflict"
// @Security BearerAuth
// @Router /journal-entries/{id}/void [post]
func (h *journalHandler) voidJournalEntry(c *gin.Context) {
	h.changeState(c, h.journalService.VoidEntry, "void")
}

type stateChangeFunc func(ctx context.Context, entryID string, version int, userID string) (*domain.JournalEntry, error)

func (h *journalHandler) changeState(c *gin.Context, change stateChangeFunc, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChangeEntryStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	entryID := c.Param("id")

	entry, err := change(c.Request.Context(), entryID, req.Version, userID)
	if err != nil {
		respondError(c, err, "Failed to "+action+" journal entry")
		return
	}

	logger.Info("Journal entry "+action+" succeeded",
		slog.String("entry_id", entryID),
		slog.Int("version", entry.Version))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}
