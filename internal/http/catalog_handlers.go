package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medsupply/internal/repository"
)

type createVendorReq struct {
	ID          string `json:"vendor_id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

// @Summary Register vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param input body createVendorReq true "Vendor"
// @Success 201 {object} domain.Vendor
// @Failure 400 {object} map[string]string
// @Router /vendors [post]
func (s *Server) createVendor(c *gin.Context) {
	var req createVendorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	v, err := s.svc.Catalog.CreateVendor(c, req.ID, req.Name, req.ContactInfo)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// @Summary List vendors
// @Tags vendors
// @Produce json
// @Success 200 {array} domain.Vendor
// @Router /vendors [get]
func (s *Server) listVendors(c *gin.Context) {
	list, err := s.svc.Catalog.ListVendors(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get vendor
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} domain.Vendor
// @Failure 404 {object} map[string]string
// @Router /vendors/{id} [get]
func (s *Server) getVendor(c *gin.Context) {
	v, err := s.svc.Catalog.GetVendor(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary Delete vendor
// @Tags vendors
// @Param id path string true "Vendor ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /vendors/{id} [delete]
func (s *Server) deleteVendor(c *gin.Context) {
	if err := s.svc.Catalog.DeleteVendor(c, c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type createBatchReq struct {
	Number     string `json:"batch_number"`
	ExpiryDate string `json:"expiry_date"`
}

// @Summary Register batch
// @Tags batches
// @Accept json
// @Produce json
// @Param input body createBatchReq true "Batch"
// @Success 201 {object} domain.Batch
// @Failure 400 {object} map[string]string
// @Router /batches [post]
func (s *Server) createBatch(c *gin.Context) {
	var req createBatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	b, err := s.svc.Catalog.CreateBatch(c, req.Number, req.ExpiryDate)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// @Summary List batches
// @Tags batches
// @Produce json
// @Success 200 {array} domain.Batch
// @Router /batches [get]
func (s *Server) listBatches(c *gin.Context) {
	list, err := s.svc.Catalog.ListBatches(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get batch by number
// @Tags batches
// @Produce json
// @Param number path string true "Batch number"
// @Success 200 {object} domain.Batch
// @Failure 404 {object} map[string]string
// @Router /batches/{number} [get]
func (s *Server) getBatch(c *gin.Context) {
	b, err := s.svc.Catalog.GetBatch(c, c.Param("number"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

type createMedicineReq struct {
	Name        string  `json:"name"`
	BatchNumber string  `json:"batch_number"`
	Price       float64 `json:"price"`
	VendorID    string  `json:"vendor_id"`
}

// @Summary Register medicine
// @Tags medicines
// @Accept json
// @Produce json
// @Param input body createMedicineReq true "Medicine"
// @Success 201 {object} domain.Medicine
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /medicines [post]
func (s *Server) createMedicine(c *gin.Context) {
	var req createMedicineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	m, err := s.svc.Catalog.CreateMedicine(c, req.Name, req.BatchNumber, req.Price, req.VendorID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// @Summary List medicines
// @Tags medicines
// @Produce json
// @Param q query string false "Name contains"
// @Param vendor_id query string false "Vendor"
// @Success 200 {array} domain.Medicine
// @Router /medicines [get]
func (s *Server) listMedicines(c *gin.Context) {
	f := repository.MedicineFilter{
		NameSubstring: c.Query("q"),
		VendorID:      c.Query("vendor_id"),
	}
	list, err := s.svc.Catalog.ListMedicines(c, f)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get medicine
// @Tags medicines
// @Produce json
// @Param id path string true "Medicine identifier"
// @Success 200 {object} domain.Medicine
// @Failure 404 {object} map[string]string
// @Router /medicines/{id} [get]
func (s *Server) getMedicine(c *gin.Context) {
	m, err := s.svc.Catalog.GetMedicine(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

type updatePriceReq struct {
	Price float64 `json:"price"`
}

// @Summary Update medicine price
// @Tags medicines
// @Accept json
// @Produce json
// @Param id path string true "Medicine identifier"
// @Param input body updatePriceReq true "Price"
// @Success 200 {object} domain.Medicine
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /medicines/{id}/price [patch]
func (s *Server) updatePrice(c *gin.Context) {
	var req updatePriceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	m, err := s.svc.Catalog.UpdatePrice(c, c.Param("id"), req.Price)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary Delete medicine
// @Tags medicines
// @Param id path string true "Medicine identifier"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /medicines/{id} [delete]
func (s *Server) deleteMedicine(c *gin.Context) {
	if err := s.svc.Catalog.DeleteMedicine(c, c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
