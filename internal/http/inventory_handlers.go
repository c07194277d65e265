package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"medsupply/internal/domain"
)

type stockReq struct {
	MedicineID string `json:"identifier"`
	Quantity   int64  `json:"quantity"`
}

type stockResp struct {
	MedicineID string `json:"identifier"`
	Quantity   int64  `json:"quantity"`
}

// @Summary List inventory
// @Tags inventory
// @Produce json
// @Success 200 {array} domain.StockEntry
// @Router /inventory [get]
func (s *Server) listInventory(c *gin.Context) {
	list, err := s.svc.Inventory.List(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Add stock
// @Tags inventory
// @Accept json
// @Produce json
// @Param input body stockReq true "Stock"
// @Success 200 {object} stockResp
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inventory/add [post]
func (s *Server) addStock(c *gin.Context) {
	var req stockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	q, err := s.svc.Inventory.AddMedicine(c, req.MedicineID, req.Quantity)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stockResp{MedicineID: req.MedicineID, Quantity: q})
}

// @Summary Remove stock
// @Tags inventory
// @Accept json
// @Produce json
// @Param input body stockReq true "Stock"
// @Success 200 {object} stockResp
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inventory/remove [post]
func (s *Server) removeStock(c *gin.Context) {
	var req stockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	q, err := s.svc.Inventory.RemoveMedicine(c, req.MedicineID, req.Quantity)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stockResp{MedicineID: req.MedicineID, Quantity: q})
}

// @Summary Queue a restock order with the medicine's vendor
// @Tags inventory
// @Accept json
// @Produce json
// @Param input body stockReq true "Order"
// @Success 202 {object} domain.OrderRecord
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inventory/restock [post]
func (s *Server) restock(c *gin.Context) {
	var req stockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	o, err := s.svc.Inventory.QueueOrder(c, req.MedicineID, req.Quantity)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusAccepted, o)
}

// @Summary Get stock quantity
// @Tags inventory
// @Produce json
// @Param id path string true "Medicine identifier"
// @Success 200 {object} stockResp
// @Failure 404 {object} map[string]string
// @Router /inventory/{id} [get]
func (s *Server) getStock(c *gin.Context) {
	id := c.Param("id")
	q, err := s.svc.Inventory.GetQuantity(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stockResp{MedicineID: id, Quantity: q})
}

// @Summary Search inventory by identifier
// @Tags inventory
// @Produce json
// @Param identifier query string true "Medicine identifier"
// @Success 200 {object} domain.StockEntry
// @Failure 404 {object} map[string]string
// @Router /inventory/search [get]
func (s *Server) searchInventory(c *gin.Context) {
	e, err := s.svc.Inventory.SearchMedicine(c, c.Query("identifier"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary Low stock alerts
// @Tags inventory
// @Produce json
// @Param threshold query int true "Threshold"
// @Success 200 {array} domain.StockEntry
// @Failure 400 {object} map[string]string
// @Router /inventory/threshold [get]
func (s *Server) thresholdAlerts(c *gin.Context) {
	threshold, err := strconv.ParseInt(c.Query("threshold"), 10, 64)
	if err != nil {
		s.fail(c, fmt.Errorf("%w: threshold must be an integer", domain.ErrInvalidArgument))
		return
	}
	list, err := s.svc.Inventory.ThresholdAlerts(c, threshold)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Batches expiring before a date
// @Tags inventory
// @Produce json
// @Param target_date query string true "YYYY-MM-DD"
// @Success 200 {array} domain.ExpiryAlert
// @Failure 400 {object} map[string]string
// @Router /inventory/expiry [get]
func (s *Server) expiryAlerts(c *gin.Context) {
	list, err := s.svc.Inventory.TrackBatchExpiry(c, c.Query("target_date"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Total stock value
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]float64
// @Router /inventory/valuation [get]
func (s *Server) valuation(c *gin.Context) {
	v, err := s.svc.Inventory.StockValuation(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_value": v})
}
