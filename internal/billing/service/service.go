package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/praneeth8555/dairyadmin/internal/billing/domain"
	"github.com/praneeth8555/dairyadmin/internal/clock"
	"github.com/praneeth8555/dairyadmin/internal/config"
	customerdomain "github.com/praneeth8555/dairyadmin/internal/customer/domain"
	"github.com/praneeth8555/dairyadmin/internal/observability/metrics"
	orderdomain "github.com/praneeth8555/dairyadmin/internal/order/domain"
	productdomain "github.com/praneeth8555/dairyadmin/internal/product/domain"
	"github.com/praneeth8555/dairyadmin/internal/providers/pdf"
	"github.com/praneeth8555/dairyadmin/internal/ratelimit"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"

	// billLockTTL bounds how long one aggregation can exclude others
	// if its request dies before releasing.
	billLockTTL = 2 * time.Minute
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Clock        clock.Clock
	Metrics      *metrics.Metrics
	Locker       *ratelimit.Locker
	Delivery     *config.DeliveryConfigHolder
	PDF          pdf.Provider
	Orders       orderdomain.Service
	Products     productdomain.Service
	CustomerRepo customerdomain.Repository
	ProductRepo  productdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	clock        clock.Clock
	metrics      *metrics.Metrics
	locker       *ratelimit.Locker
	delivery     *config.DeliveryConfigHolder
	pdf          pdf.Provider
	orders       orderdomain.Service
	products     productdomain.Service
	customerRepo customerdomain.Repository
	productRepo  productdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("billing.service"),
		clock:        p.Clock,
		metrics:      p.Metrics,
		locker:       p.Locker,
		delivery:     p.Delivery,
		pdf:          p.PDF,
		orders:       p.Orders,
		products:     p.Products,
		customerRepo: p.CustomerRepo,
		productRepo:  p.ProductRepo,
	}
}

func (s *Service) MonthlyBill(ctx context.Context, req domain.MonthlyBillRequest) (*domain.MonthlyBillResponse, error) {
	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 1 {
		return nil, domain.ErrInvalidMonth
	}

	customer, err := s.customerRepo.FindByID(ctx, s.db, customerID.Int64())
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	if s.locker != nil {
		key := fmt.Sprintf("monthlybill:%d:%04d-%02d", customer.ID, req.Year, req.Month)
		token, acquired, err := s.locker.TryLock(ctx, key, billLockTTL)
		if err != nil {
			return nil, err
		}
		if !acquired {
			s.metrics.BillLockDenied()
			return nil, domain.ErrBillInFlight
		}
		defer func() {
			if err := s.locker.Release(ctx, key, token); err != nil {
				s.log.Warn("release bill lock", zap.String("key", key), zap.Error(err))
			}
		}()
	}

	first := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	resp := &domain.MonthlyBillResponse{
		CustomerID:   snowflake.ID(customer.ID).String(),
		CustomerName: customer.Name,
		ApartmentID:  snowflake.ID(customer.ApartmentID).String(),
		RoomNumber:   customer.RoomNumber,
		Month:        req.Month,
		Year:         req.Year,
	}

	names := make(map[int64]string)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		items, err := s.orders.Resolve(ctx, customer.ID, day)
		if err != nil {
			return nil, err
		}

		dayBill := domain.DayBill{Date: day.Format(dateLayout)}
		for _, it := range items {
			price, err := s.products.PriceOn(ctx, it.ProductID, day)
			if err != nil {
				return nil, err
			}
			name, err := s.productName(ctx, names, it.ProductID)
			if err != nil {
				return nil, err
			}
			line := domain.BillLine{
				ProductID:   snowflake.ID(it.ProductID).String(),
				ProductName: name,
				Quantity:    it.Quantity,
				UnitPrice:   price,
				LineTotal:   price * it.Quantity,
			}
			dayBill.Items = append(dayBill.Items, line)
			dayBill.DayBill += line.LineTotal
		}

		resp.Days = append(resp.Days, dayBill)
		resp.Subtotal += dayBill.DayBill
	}

	resp.DeliveryCharge = s.delivery.Get().MonthlyCharge
	resp.TotalBill = resp.Subtotal + resp.DeliveryCharge

	s.metrics.BillGenerated()
	return resp, nil
}

func (s *Service) MonthlyBillPDF(ctx context.Context, req domain.MonthlyBillRequest) ([]byte, error) {
	bill, err := s.MonthlyBill(ctx, req)
	if err != nil {
		return nil, err
	}

	type productTotal struct {
		name     string
		quantity float64
		amount   float64
	}
	totals := make(map[string]*productTotal)
	var order []string
	for _, day := range bill.Days {
		for _, line := range day.Items {
			agg, ok := totals[line.ProductID]
			if !ok {
				agg = &productTotal{name: line.ProductName}
				totals[line.ProductID] = agg
				order = append(order, line.ProductID)
			}
			agg.quantity += line.Quantity
			agg.amount += line.LineTotal
		}
	}
	sort.Slice(order, func(i, j int) bool {
		return totals[order[i]].name < totals[order[j]].name
	})

	data := pdf.BillData{
		BusinessName:   "Dairy Admin",
		CustomerName:   bill.CustomerName,
		RoomNumber:     bill.RoomNumber,
		Period:         fmt.Sprintf("%04d-%02d", bill.Year, bill.Month),
		GeneratedAt:    s.clock.Now().Format(dateLayout),
		Subtotal:       formatAmount(bill.Subtotal),
		DeliveryCharge: formatAmount(bill.DeliveryCharge),
		Total:          formatAmount(bill.TotalBill),
	}
	for _, id := range order {
		agg := totals[id]
		data.Items = append(data.Items, pdf.BillItem{
			ProductName: agg.name,
			Quantity:    formatQuantity(agg.quantity),
			Amount:      formatAmount(agg.amount),
		})
	}

	reader, err := s.pdf.GenerateMonthlyBill(ctx, data)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(reader)
}

// productName resolves and memoizes the display name for one bill. A
// vanished product keeps its line with an empty name rather than
// failing the aggregation.
func (s *Service) productName(ctx context.Context, cache map[int64]string, productID int64) (string, error) {
	if name, ok := cache[productID]; ok {
		return name, nil
	}
	product, err := s.productRepo.FindByID(ctx, s.db, productID)
	if err != nil {
		return "", err
	}
	name := ""
	if product != nil {
		name = product.ProductName
	}
	cache[productID] = name
	return name, nil
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatQuantity(v float64) string {
	return fmt.Sprintf("%g", v)
}
