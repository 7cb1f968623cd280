package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/aurum/internal/billing"
	billingdomain "github.com/smallbiznis/aurum/internal/billing/domain"
	"github.com/smallbiznis/aurum/internal/booking"
	bookingdomain "github.com/smallbiznis/aurum/internal/booking/domain"
	"github.com/smallbiznis/aurum/internal/config"
	"github.com/smallbiznis/aurum/internal/customer"
	customerdomain "github.com/smallbiznis/aurum/internal/customer/domain"
	"github.com/smallbiznis/aurum/internal/goldrate"
	goldratedomain "github.com/smallbiznis/aurum/internal/goldrate/domain"
	"github.com/smallbiznis/aurum/internal/inventory"
	inventorydomain "github.com/smallbiznis/aurum/internal/inventory/domain"
	"github.com/smallbiznis/aurum/internal/layaway"
	layawaydomain "github.com/smallbiznis/aurum/internal/layaway/domain"
	obslogger "github.com/smallbiznis/aurum/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/aurum/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	customer.Module,
	inventory.Module,
	goldrate.Module,
	billing.Module,
	booking.Module,
	layaway.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, metrics *obsmetrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log))
	r.Use(obsmetrics.GinMiddleware(metrics))
	r.Use(StaffMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	customerSvc  customerdomain.Service
	inventorySvc inventorydomain.Service
	goldRateSvc  goldratedomain.Service
	billingSvc   billingdomain.Service
	bookingSvc   bookingdomain.Service
	layawaySvc   layawaydomain.Service
	metrics      *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	CustomerSvc  customerdomain.Service
	InventorySvc inventorydomain.Service
	GoldRateSvc  goldratedomain.Service
	BillingSvc   billingdomain.Service
	BookingSvc   bookingdomain.Service
	LayawaySvc   layawaydomain.Service
	Metrics      *obsmetrics.Metrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		customerSvc:  p.CustomerSvc,
		inventorySvc: p.InventorySvc,
		goldRateSvc:  p.GoldRateSvc,
		billingSvc:   p.BillingSvc,
		bookingSvc:   p.BookingSvc,
		layawaySvc:   p.LayawaySvc,
		metrics:      p.Metrics,
	}

	s.registerAPIRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1")

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/:id", s.GetCustomerByID)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	api.POST("/items", s.CreateItem)
	api.GET("/items", s.ListItems)
	api.GET("/items/barcode/:code", s.LookupBarcode)
	api.GET("/items/:id", s.GetItemByID)
	api.PUT("/items/:id", s.UpdateItem)
	api.DELETE("/items/:id", s.DeleteItem)

	api.POST("/gold-rates", s.SetGoldRate)
	api.GET("/gold-rates/today", s.GetTodayGoldRate)
	api.GET("/gold-rates", s.ListGoldRates)

	api.POST("/bills/preview", s.PreviewBill)
	api.POST("/bills", s.CreateBill)
	api.GET("/bills", s.ListBills)
	api.GET("/bills/:id", s.GetBillByID)
	api.PUT("/bills/:id", s.UpdateBill)
	api.POST("/bills/:id/void", s.VoidBill)
	api.GET("/bills/:id/receipt", s.BillReceipt)

	api.POST("/bookings", s.CreateBooking)
	api.GET("/bookings", s.ListBookings)
	api.GET("/bookings/:id", s.GetBookingByID)
	api.POST("/bookings/:id/status", s.SetBookingStatus)

	api.POST("/layaways", s.CreateLayaway)
	api.GET("/layaways", s.ListLayaways)
	api.GET("/layaways/:id", s.GetLayawayByID)
	api.POST("/layaways/:id/payments", s.RecordLayawayPayment)
	api.POST("/layaways/:id/cancel", s.CancelLayaway)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.ListenAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
