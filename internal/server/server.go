package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/praneeth8555/dairyadmin/internal/apartment"
	apartmentdomain "github.com/praneeth8555/dairyadmin/internal/apartment/domain"
	"github.com/praneeth8555/dairyadmin/internal/auth"
	authdomain "github.com/praneeth8555/dairyadmin/internal/auth/domain"
	"github.com/praneeth8555/dairyadmin/internal/billing"
	billingdomain "github.com/praneeth8555/dairyadmin/internal/billing/domain"
	"github.com/praneeth8555/dairyadmin/internal/config"
	"github.com/praneeth8555/dairyadmin/internal/customer"
	customerdomain "github.com/praneeth8555/dairyadmin/internal/customer/domain"
	"github.com/praneeth8555/dairyadmin/internal/observability"
	obslogger "github.com/praneeth8555/dairyadmin/internal/observability/logger"
	obsmetrics "github.com/praneeth8555/dairyadmin/internal/observability/metrics"
	obstracing "github.com/praneeth8555/dairyadmin/internal/observability/tracing"
	"github.com/praneeth8555/dairyadmin/internal/order"
	orderdomain "github.com/praneeth8555/dairyadmin/internal/order/domain"
	"github.com/praneeth8555/dairyadmin/internal/product"
	productdomain "github.com/praneeth8555/dairyadmin/internal/product/domain"
	"github.com/praneeth8555/dairyadmin/internal/providers"
	"github.com/praneeth8555/dairyadmin/internal/ratelimit"
	"github.com/praneeth8555/dairyadmin/internal/summary"
	summarydomain "github.com/praneeth8555/dairyadmin/internal/summary/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	apartment.Module,
	customer.Module,
	product.Module,
	order.Module,
	billing.Module,
	summary.Module,
	auth.Module,
	providers.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	authSvc      authdomain.Service
	apartmentSvc apartmentdomain.Service
	customerSvc  customerdomain.Service
	productSvc   productdomain.Service
	orderSvc     orderdomain.Service
	billingSvc   billingdomain.Service
	summarySvc   summarydomain.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	AuthSvc      authdomain.Service
	ApartmentSvc apartmentdomain.Service
	CustomerSvc  customerdomain.Service
	ProductSvc   productdomain.Service
	OrderSvc     orderdomain.Service
	BillingSvc   billingdomain.Service
	SummarySvc   summarydomain.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		authSvc:      p.AuthSvc,
		apartmentSvc: p.ApartmentSvc,
		customerSvc:  p.CustomerSvc,
		productSvc:   p.ProductSvc,
		orderSvc:     p.OrderSvc,
		billingSvc:   p.BillingSvc,
		summarySvc:   p.SummarySvc,
	}

	s.registerAuthRoutes()
	s.registerAPIRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	admin := s.engine.Group("/admin")
	admin.POST("/login", s.Login)
	admin.POST("/register", s.Register)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/", s.AuthRequired())

	api.GET("/apartments", s.ListApartments)
	api.POST("/apartments", s.CreateApartment)
	api.PUT("/apartments/:id", s.UpdateApartment)
	api.DELETE("/apartments/:id", s.DeleteApartment)

	api.GET("/customers", s.ListCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)
	api.POST("/bulkcustomers", s.BulkCreateCustomers)
	api.GET("/apartcustomers", s.ListApartmentCustomers)
	api.PUT("/update-priorities", s.UpdatePriorities)

	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.POST("/products/bulk", s.BulkCreateProducts)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)
	api.GET("/products/:id/price-history", s.ProductPriceHistory)

	api.GET("/customers/:id/default-order", s.GetDefaultOrder)
	api.POST("/customers/:id/default-order", s.SetDefaultOrder)
	api.PUT("/customers/:id/default-order", s.SetDefaultOrder)

	api.POST("/orders/modify", s.ModifyOrder)
	api.POST("/orders/modify-alternating", s.ModifyAlternatingOrder)
	api.POST("/orders/pause", s.PauseOrder)
	api.POST("/orders/resume", s.ResumeOrder)
	api.GET("/orders", s.MonthlyOrders)
	api.DELETE("/ordermodificationsclear", s.ClearOrderModifications)

	api.GET("/daily-summary", s.DailySummary)
	api.GET("/daily-summary/export", s.ExportDailySummary)
	api.GET("/daily-totalsummary", s.DailyTotalSummary)
	api.GET("/daily-SalesSummary", s.DailySalesSummary)

	api.GET("/monthly-bill", s.MonthlyBill)
	api.GET("/monthly-bill/pdf", s.MonthlyBillPDF)
}
