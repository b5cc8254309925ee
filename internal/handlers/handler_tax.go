package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type taxHandler struct {
	taxService portssvc.TaxSvcFacade
}

func registerTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxSvcFacade) {
	h := &taxHandler{taxService: taxService}

	rg.GET("/tax-rates", h.listTaxRates)
	rg.GET("/tax-id/check-digit", h.checkDigit)
}

// listTaxRates godoc
// @Summary List active tax rates
// @Description IVA, retefuente and reteICA rates offered for voucher lines.
// @Tags taxes
// @Produce  json
// @Success 200 {array} domain.TaxRate
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /tax-rates [get]
func (h *taxHandler) listTaxRates(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rates, err := h.taxService.ListTaxRates(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list tax rates")
		return
	}
	c.JSON(http.StatusOK, rates)
}

// checkDigit godoc
// @Summary Compute a NIT check digit
// @Description Non-digit characters are ignored. More than 15 digits is rejected.
// @Tags taxes
// @Produce  json
// @Param   nit query string true "Tax ID"
// @Success 200 {object} dto.CheckDigitResponse
// @Failure 400 {object} map[string]string "Invalid tax ID"
// @Security BearerAuth
// @Router /tax-id/check-digit [get]
func (h *taxHandler) checkDigit(c *gin.Context) {
	nit, ok := c.GetQuery("nit")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nit query parameter required"})
		return
	}

	resp, err := h.taxService.CheckDigit(c.Request.Context(), nit)
	if err != nil {
		respondError(c, err, "Failed to compute check digit")
		return
	}
	c.JSON(http.StatusOK, resp)
}
