package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	apartmentdomain "github.com/praneeth8555/dairyadmin/internal/apartment/domain"
	customerdomain "github.com/praneeth8555/dairyadmin/internal/customer/domain"
	"github.com/praneeth8555/dairyadmin/internal/observability/metrics"
	orderdomain "github.com/praneeth8555/dairyadmin/internal/order/domain"
	productdomain "github.com/praneeth8555/dairyadmin/internal/product/domain"
	"github.com/praneeth8555/dairyadmin/internal/summary/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Params struct {
	fx.In

	DB            *gorm.DB
	Log           *zap.Logger
	Metrics       *metrics.Metrics
	Orders        orderdomain.Service
	Products      productdomain.Service
	ApartmentRepo apartmentdomain.Repository
	CustomerRepo  customerdomain.Repository
	ProductRepo   productdomain.Repository
}

type Service struct {
	db            *gorm.DB
	log           *zap.Logger
	metrics       *metrics.Metrics
	orders        orderdomain.Service
	products      productdomain.Service
	apartmentRepo apartmentdomain.Repository
	customerRepo  customerdomain.Repository
	productRepo   productdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:            p.DB,
		log:           p.Log.Named("summary.service"),
		metrics:       p.Metrics,
		orders:        p.Orders,
		products:      p.Products,
		apartmentRepo: p.ApartmentRepo,
		customerRepo:  p.CustomerRepo,
		productRepo:   p.ProductRepo,
	}
}

func (s *Service) RoomDaily(ctx context.Context, req domain.DailyRequest) (*domain.RoomDailyResponse, error) {
	apartment, date, err := s.parseDaily(ctx, req)
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.FindByApartment(ctx, s.db, apartment.ID)
	if err != nil {
		return nil, err
	}

	products := newProductCache(s.db, s.productRepo)
	resp := &domain.RoomDailyResponse{
		ApartmentID: snowflake.ID(apartment.ID).String(),
		Date:        date.Format(dateLayout),
	}
	for i := range customers {
		c := &customers[i]
		items, err := s.orders.Resolve(ctx, c.ID, date)
		if err != nil {
			return nil, err
		}

		entry := domain.CustomerDaySummary{
			CustomerID: snowflake.ID(c.ID).String(),
			Name:       c.Name,
			RoomNumber: c.RoomNumber,
			NoOrders:   len(items) == 0,
		}
		for _, it := range items {
			p, err := products.get(ctx, it.ProductID)
			if err != nil {
				return nil, err
			}
			entry.Orders = append(entry.Orders, domain.SummaryLine{
				ProductID:   snowflake.ID(it.ProductID).String(),
				ProductName: p.name,
				Acronym:     p.acronym,
				Unit:        p.unit,
				Quantity:    it.Quantity,
			})
		}
		resp.Customers = append(resp.Customers, entry)
	}
	return resp, nil
}

func (s *Service) TotalDaily(ctx context.Context, req domain.DailyRequest) (*domain.TotalDailyResponse, error) {
	apartment, date, err := s.parseDaily(ctx, req)
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.FindByApartment(ctx, s.db, apartment.ID)
	if err != nil {
		return nil, err
	}

	products := newProductCache(s.db, s.productRepo)
	totals := newTotals()
	for i := range customers {
		items, err := s.orders.Resolve(ctx, customers[i].ID, date)
		if err != nil {
			return nil, err
		}
		totals.addAll(items)
	}

	lines, err := totals.lines(ctx, products)
	if err != nil {
		return nil, err
	}
	return &domain.TotalDailyResponse{
		ApartmentID: snowflake.ID(apartment.ID).String(),
		Date:        date.Format(dateLayout),
		Totals:      lines,
	}, nil
}

func (s *Service) DailySales(ctx context.Context, dateStr string) (*domain.DailySalesResponse, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	apartments, err := s.apartmentRepo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	products := newProductCache(s.db, s.productRepo)
	grand := newTotals()
	resp := &domain.DailySalesResponse{Date: date.Format(dateLayout)}

	for i := range apartments {
		apt := &apartments[i]
		customers, err := s.customerRepo.FindByApartment(ctx, s.db, apt.ID)
		if err != nil {
			return nil, err
		}

		perApartment := newTotals()
		for j := range customers {
			items, err := s.orders.Resolve(ctx, customers[j].ID, date)
			if err != nil {
				return nil, err
			}
			perApartment.addAll(items)
			grand.addAll(items)
		}

		lines, revenue, err := s.salesLines(ctx, perApartment, products, date)
		if err != nil {
			return nil, err
		}
		resp.Apartments = append(resp.Apartments, domain.ApartmentSales{
			ApartmentID:   snowflake.ID(apt.ID).String(),
			ApartmentName: apt.ApartmentName,
			Products:      lines,
			Revenue:       revenue,
		})
	}

	resp.Totals, resp.Revenue, err = s.salesLines(ctx, grand, products, date)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// salesLines prices each summed product line at the rate effective on
// the requested date.
func (s *Service) salesLines(ctx context.Context, t *totals, products *productCache, date time.Time) ([]domain.SalesLine, float64, error) {
	lines := make([]domain.SalesLine, 0, len(t.order))
	var revenue float64
	for _, id := range t.order {
		info, err := products.get(ctx, id)
		if err != nil {
			return nil, 0, err
		}
		price, err := s.products.PriceOn(ctx, id, date)
		if err != nil {
			return nil, 0, err
		}

		quantity := t.byProduct[id]
		lines = append(lines, domain.SalesLine{
			ProductID:   snowflake.ID(id).String(),
			ProductName: info.name,
			Acronym:     info.acronym,
			Unit:        info.unit,
			Quantity:    quantity,
			UnitPrice:   price,
			Revenue:     price * quantity,
		})
		revenue += price * quantity
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductName < lines[j].ProductName })
	return lines, revenue, nil
}

func (s *Service) ExportRoomDaily(ctx context.Context, req domain.DailyRequest) ([]byte, error) {
	summary, err := s.RoomDaily(ctx, req)
	if err != nil {
		return nil, err
	}

	out, err := renderRoomDailyWorkbook(summary)
	if err != nil {
		return nil, err
	}
	s.metrics.SummaryExported()
	return out, nil
}

func (s *Service) parseDaily(ctx context.Context, req domain.DailyRequest) (*apartmentdomain.Apartment, time.Time, error) {
	apartmentID, err := snowflake.ParseString(strings.TrimSpace(req.ApartmentID))
	if err != nil {
		return nil, time.Time{}, domain.ErrInvalidID
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return nil, time.Time{}, domain.ErrInvalidDate
	}

	apartment, err := s.apartmentRepo.FindByID(ctx, s.db, apartmentID.Int64())
	if err != nil {
		return nil, time.Time{}, err
	}
	if apartment == nil {
		return nil, time.Time{}, domain.ErrNotFound
	}
	return apartment, date, nil
}

type productInfo struct {
	name    string
	acronym string
	unit    string
}

// productCache memoizes product lookups for one aggregation pass. A
// vanished product yields an empty name, never an error.
type productCache struct {
	db    *gorm.DB
	repo  productdomain.Repository
	cache map[int64]productInfo
}

func newProductCache(db *gorm.DB, repo productdomain.Repository) *productCache {
	return &productCache{db: db, repo: repo, cache: make(map[int64]productInfo)}
}

func (c *productCache) get(ctx context.Context, productID int64) (productInfo, error) {
	if info, ok := c.cache[productID]; ok {
		return info, nil
	}
	product, err := c.repo.FindByID(ctx, c.db, productID)
	if err != nil {
		return productInfo{}, err
	}
	info := productInfo{}
	if product != nil {
		info = productInfo{name: product.ProductName, acronym: product.Acronym, unit: product.Unit}
	}
	c.cache[productID] = info
	return info, nil
}

type totals struct {
	byProduct map[int64]float64
	order     []int64
}

func newTotals() *totals {
	return &totals{byProduct: make(map[int64]float64)}
}

func (t *totals) addAll(items []orderdomain.ResolvedItem) {
	for _, it := range items {
		if _, ok := t.byProduct[it.ProductID]; !ok {
			t.order = append(t.order, it.ProductID)
		}
		t.byProduct[it.ProductID] += it.Quantity
	}
}

func (t *totals) lines(ctx context.Context, products *productCache) ([]domain.SummaryLine, error) {
	lines := make([]domain.SummaryLine, 0, len(t.order))
	for _, id := range t.order {
		info, err := products.get(ctx, id)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.SummaryLine{
			ProductID:   snowflake.ID(id).String(),
			ProductName: info.name,
			Acronym:     info.acronym,
			Unit:        info.unit,
			Quantity:    t.byProduct[id],
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductName < lines[j].ProductName })
	return lines, nil
}
