package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"medsupply/internal/domain"
	"medsupply/internal/journal"
	"medsupply/internal/service"
)

// JournalReader чтение аудит-журнала продаж
type JournalReader interface {
	Sales(ctx context.Context) ([]journal.SaleRow, error)
	Lines(ctx context.Context, saleID string) ([]journal.LineRow, error)
}

// Services набор сервисов, которые обслуживает HTTP слой
type Services struct {
	Catalog   *service.CatalogService
	Vendors   *service.VendorService
	Inventory *service.InventoryService
	Carts     *service.CartService
	Sales     *service.SalesService
	// Journal nil, если журнал выключен
	Journal   JournalReader
}

// Options параметры HTTP слоя
type Options struct {
	CheckoutTimeout time.Duration
	RateLimitRPS    float64
	RateLimitBurst  int
}

type Server struct {
	engine  *gin.Engine
	svc     Services
	opts    Options
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewServer(svc Services, opts Options, log *zap.Logger) *Server {
	limit := rate.Limit(opts.RateLimitRPS)
	if opts.RateLimitRPS <= 0 {
		limit = rate.Inf
	}
	burst := opts.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}
	r := gin.New()
	r.Use(requestLogger(log), gin.Recovery())
	s := &Server{
		engine:  r,
		svc:     svc,
		opts:    opts,
		limiter: rate.NewLimiter(limit, burst),
		log:     log,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.engine.Group("/api/v1")
	limited := s.rateLimit()
	{
		vendors := v1.Group("/vendors")
		vendors.POST("", limited, s.createVendor)
		vendors.GET("", s.listVendors)
		vendors.GET(":id", s.getVendor)
		vendors.DELETE(":id", limited, s.deleteVendor)
		vendors.GET(":id/orders", s.listVendorOrders)
		vendors.POST(":id/orders/:orderId/fulfill", limited, s.fulfillOrder)
		vendors.POST(":id/orders/:orderId/reject", limited, s.rejectOrder)

		batches := v1.Group("/batches")
		batches.POST("", limited, s.createBatch)
		batches.GET("", s.listBatches)
		batches.GET(":number", s.getBatch)

		medicines := v1.Group("/medicines")
		medicines.POST("", limited, s.createMedicine)
		medicines.GET("", s.listMedicines)
		medicines.GET(":id", s.getMedicine)
		medicines.PATCH(":id/price", limited, s.updatePrice)
		medicines.DELETE(":id", limited, s.deleteMedicine)

		inventory := v1.Group("/inventory")
		inventory.GET("", s.listInventory)
		inventory.POST("add", limited, s.addStock)
		inventory.POST("remove", limited, s.removeStock)
		inventory.POST("restock", limited, s.restock)
		inventory.GET("search", s.searchInventory)
		inventory.GET("threshold", s.thresholdAlerts)
		inventory.GET("expiry", s.expiryAlerts)
		inventory.GET("valuation", s.valuation)
		inventory.GET(":id", s.getStock)

		v1.POST("/cart/checkout", limited, s.checkout)

		sales := v1.Group("/sales")
		sales.GET("history", s.salesHistory)
		sales.GET("statistics", s.salesStatistics)
		sales.GET("rankings", s.salesRankings)
		sales.GET("journal", s.salesJournal)
	}
}

// rateLimit общий лимитер для изменяющих запросов
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
