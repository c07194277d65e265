package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"medsupply/internal/domain"
	"medsupply/internal/journal"
	"medsupply/internal/service"
)

// @Summary List vendor orders
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Param type query string false "pending (default) or fulfilled"
// @Success 200 {array} domain.OrderRecord
// @Router /vendors/{id}/orders [get]
func (s *Server) listVendorOrders(c *gin.Context) {
	var (
		list []domain.OrderRecord
		err  error
	)
	vendorID := c.Param("id")
	if c.Query("type") == "fulfilled" {
		list, err = s.svc.Vendors.FulfilledOrders(c, vendorID)
	} else {
		list, err = s.svc.Vendors.Orders(c, vendorID)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Fulfill vendor order
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Param orderId path string true "Order ID"
// @Success 200 {object} domain.OrderRecord
// @Failure 404 {object} map[string]string
// @Router /vendors/{id}/orders/{orderId}/fulfill [post]
func (s *Server) fulfillOrder(c *gin.Context) {
	o, err := s.svc.Vendors.FulfillOrder(c, c.Param("id"), c.Param("orderId"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// @Summary Reject vendor order
// @Tags vendors
// @Param id path string true "Vendor ID"
// @Param orderId path string true "Order ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /vendors/{id}/orders/{orderId}/reject [post]
func (s *Server) rejectOrder(c *gin.Context) {
	if err := s.svc.Vendors.RejectOrder(c, c.Param("id"), c.Param("orderId")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type checkoutReq struct {
	Items []service.CartItem `json:"items"`
}

// @Summary Checkout cart
// @Tags cart
// @Accept json
// @Produce json
// @Param input body checkoutReq true "Cart"
// @Success 201 {object} domain.Receipt
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 504 {object} map[string]string
// @Router /cart/checkout [post]
func (s *Server) checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	ctx := c.Request.Context()
	if s.opts.CheckoutTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.CheckoutTimeout)
		defer cancel()
	}
	cart, err := s.svc.Carts.CartFromItems(ctx, req.Items)
	if err != nil {
		s.fail(c, err)
		return
	}
	receipt, err := s.svc.Carts.Checkout(ctx, cart)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

// @Summary Sales history, most recent first
// @Tags sales
// @Produce json
// @Success 200 {array} domain.Sale
// @Router /sales/history [get]
func (s *Server) salesHistory(c *gin.Context) {
	list, err := s.svc.Sales.RecentHistory(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Sales statistics per medicine
// @Tags sales
// @Produce json
// @Success 200 {array} domain.SalesStat
// @Router /sales/statistics [get]
func (s *Server) salesStatistics(c *gin.Context) {
	list, err := s.svc.Sales.Statistics(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Medicine rankings
// @Tags sales
// @Produce json
// @Param by query string false "quantity (default) or value"
// @Success 200 {array} domain.SalesStat
// @Failure 400 {object} map[string]string
// @Router /sales/rankings [get]
func (s *Server) salesRankings(c *gin.Context) {
	var (
		list []domain.SalesStat
		err  error
	)
	switch c.DefaultQuery("by", "quantity") {
	case "quantity":
		list, err = s.svc.Sales.RankByQuantity(c)
	case "value":
		list, err = s.svc.Sales.RankByValue(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "by must be quantity or value"})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type journalEntry struct {
	journal.SaleRow
	Lines []journal.LineRow `json:"items"`
}

// @Summary Journalled sales with their lines, oldest first
// @Tags sales
// @Produce json
// @Success 200 {array} journalEntry
// @Failure 404 {object} map[string]string
// @Router /sales/journal [get]
func (s *Server) salesJournal(c *gin.Context) {
	if s.svc.Journal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sales journal is disabled"})
		return
	}
	sales, err := s.svc.Journal.Sales(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	out := make([]journalEntry, 0, len(sales))
	for _, row := range sales {
		lines, err := s.svc.Journal.Lines(c, row.ID)
		if err != nil {
			s.fail(c, err)
			return
		}
		out = append(out, journalEntry{SaleRow: row, Lines: lines})
	}
	c.JSON(http.StatusOK, out)
}
