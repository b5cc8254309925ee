package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func newVoucherHandler(vs portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{voucherService: vs}
}

func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:id", h.getVoucher)
	}
}

// createVoucher godoc
// @Summary Create a voucher
// @Description Line subtotal, IVA and retention and the voucher totals are computed server-side.
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   voucher body dto.CreateVoucherRequest true "Voucher with its lines"
// @Success 201 {object} domain.Voucher
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Third party or account not found"
// @Failure 500 {object} map[string]string "Failed to create voucher"
// @Security BearerAuth
// @Router /vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create voucher")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Voucher created",
		slog.String("voucher_id", voucher.ID),
		slog.String("total", voucher.Total.StringFixed(2)))
	c.JSON(http.StatusCreated, voucher)
}

// getVoucher godoc
// @Summary Get a voucher
// @Tags vouchers
// @Produce  json
// @Param   id path string true "Voucher ID"
// @Success 200 {object} domain.Voucher
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Security BearerAuth
// @Router /vouchers/{id} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve voucher")
		return
	}
	c.JSON(http.StatusOK, voucher)
}

// listVouchers godoc
// @Summary List vouchers
// @Tags vouchers
// @Produce  json
// @Param   type query string false "Voucher type" Enums(INGRESO, EGRESO, COMPRA, VENTA, NOTA_CONTABLE)
// @Success 200 {object} dto.ListVouchersResponse
// @Failure 400 {object} map[string]string "Invalid type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}

	vouchers, err := h.voucherService.ListVouchers(c.Request.Context(), params, userID)
	if err != nil {
		respondError(c, err, "Failed to list vouchers")
		return
	}
	c.JSON(http.StatusOK, dto.ListVouchersResponse{Vouchers: vouchers})
}
