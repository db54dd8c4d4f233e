package handlers

import (
	"net/http"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/internal/services"
	"github.com/gin-gonic/gin"
)

// DonationReceiptHandler handles donation receipt applications
type DonationReceiptHandler struct {
	receiptService services.DonationReceiptService
}

// NewDonationReceiptHandler creates a new DonationReceiptHandler
func NewDonationReceiptHandler(receiptService services.DonationReceiptService) *DonationReceiptHandler {
	return &DonationReceiptHandler{receiptService: receiptService}
}

// List handles GET /donation-receipts
func (h *DonationReceiptHandler) List(c *gin.Context) {
	receipts, err := h.receiptService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipts)
}

// Get handles GET /donation-receipts/:id
func (h *DonationReceiptHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	receipt, err := h.receiptService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// Submit handles POST /donation-receipts from the public form. The
// response omits the resident registration number.
func (h *DonationReceiptHandler) Submit(c *gin.Context) {
	var req models.DonationReceiptRequest
	if !bindJSON(c, &req) {
		return
	}
	receipt, err := h.receiptService.Submit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt.Redacted())
}

// UpdateStatus handles PUT /donation-receipts/:id
func (h *DonationReceiptHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req models.DonationReceiptUpdate
	if !bindJSON(c, &req) {
		return
	}
	receipt, err := h.receiptService.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// Delete handles DELETE /donation-receipts/:id
func (h *DonationReceiptHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.receiptService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	deleted(c, "신청 내역이 삭제되었습니다.")
}
