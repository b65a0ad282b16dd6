package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/praneeth8555/dairyadmin/internal/clock"
	customerdomain "github.com/praneeth8555/dairyadmin/internal/customer/domain"
	"github.com/praneeth8555/dairyadmin/internal/observability/metrics"
	"github.com/praneeth8555/dairyadmin/internal/order/domain"
	productdomain "github.com/praneeth8555/dairyadmin/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Clock        clock.Clock
	GenID        *snowflake.Node
	Metrics      *metrics.Metrics
	Repo         domain.Repository
	CustomerRepo customerdomain.Repository
	ProductRepo  productdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	clock        clock.Clock
	genID        *snowflake.Node
	metrics      *metrics.Metrics
	repo         domain.Repository
	customerRepo customerdomain.Repository
	productRepo  productdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("order.service"),
		clock:        p.Clock,
		genID:        p.GenID,
		metrics:      p.Metrics,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
		productRepo:  p.ProductRepo,
	}
}

func (s *Service) GetDefaultOrder(ctx context.Context, customerID string) (*domain.DefaultOrderResponse, error) {
	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.FindDefaultItems(ctx, s.db, customer.ID)
	if err != nil {
		return nil, err
	}

	return &domain.DefaultOrderResponse{
		CustomerID:         snowflake.ID(customer.ID).String(),
		IsAlternatingOrder: customer.IsAlternatingOrder,
		Products:           toItemResponses(items),
	}, nil
}

func (s *Service) SetDefaultOrder(ctx context.Context, req domain.SetDefaultOrderRequest) (*domain.DefaultOrderResponse, error) {
	customer, err := s.findCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.DefaultOrderItem, 0, len(req.Products))
	seen := make(map[[2]any]bool, len(req.Products))
	for _, p := range req.Products {
		productID, dayType, err := s.checkItem(ctx, p, req.IsAlternatingOrder)
		if err != nil {
			return nil, err
		}
		key := [2]any{productID, dayType}
		if seen[key] {
			return nil, domain.ErrDuplicateProduct
		}
		seen[key] = true
		items = append(items, domain.DefaultOrderItem{
			ID:         s.genID.Generate().Int64(),
			CustomerID: customer.ID,
			ProductID:  productID,
			DayType:    dayType,
			Quantity:   p.Quantity,
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.ReplaceDefaultItems(ctx, tx, customer.ID, items); err != nil {
			return err
		}
		if customer.IsAlternatingOrder == req.IsAlternatingOrder {
			return nil
		}
		customer.IsAlternatingOrder = req.IsAlternatingOrder
		customer.UpdatedAt = s.clock.Now()
		return s.customerRepo.Update(ctx, tx, customer)
	})
	if err != nil {
		return nil, err
	}

	return &domain.DefaultOrderResponse{
		CustomerID:         snowflake.ID(customer.ID).String(),
		IsAlternatingOrder: customer.IsAlternatingOrder,
		Products:           toItemResponses(items),
	}, nil
}

func (s *Service) Modify(ctx context.Context, req domain.ModifyRequest) (*domain.ModificationResponse, error) {
	return s.addModification(ctx, req.UserID, req.StartDate, req.EndDate, req.Products, false, false)
}

func (s *Service) ModifyAlternating(ctx context.Context, req domain.ModifyAlternatingRequest) (*domain.ModificationResponse, error) {
	return s.addModification(ctx, req.UserID, req.StartDate, req.EndDate, req.Orders, true, false)
}

func (s *Service) Pause(ctx context.Context, req domain.PauseRequest) (*domain.ModificationResponse, error) {
	return s.addModification(ctx, req.UserID, req.StartDate, req.EndDate, nil, false, true)
}

// Resume supersedes a pause by writing a newer record that restores the
// customer's current baseline for the range.
func (s *Service) Resume(ctx context.Context, req domain.PauseRequest) (*domain.ModificationResponse, error) {
	customer, err := s.findCustomer(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	defaults, err := s.repo.FindDefaultItems(ctx, s.db, customer.ID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItemRequest, 0, len(defaults))
	for _, d := range defaults {
		items = append(items, domain.OrderItemRequest{
			ProductID: snowflake.ID(d.ProductID).String(),
			Quantity:  d.Quantity,
			DayType:   d.DayType,
		})
	}

	return s.addModification(ctx, req.UserID, req.StartDate, req.EndDate, items, customer.IsAlternatingOrder, false)
}

func (s *Service) addModification(ctx context.Context, userID, startDate, endDate string, products []domain.OrderItemRequest, alternating, paused bool) (*domain.ModificationResponse, error) {
	customer, err := s.findCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	start, err := parseDate(startDate)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidRange
	}

	mod := &domain.Modification{
		ID:         s.genID.Generate().Int64(),
		CustomerID: customer.ID,
		StartDate:  start,
		EndDate:    end,
		Paused:     paused,
		CreatedAt:  s.clock.Now(),
	}

	if !paused {
		seen := make(map[[2]any]bool, len(products))
		for _, p := range products {
			productID, dayType, err := s.checkItem(ctx, p, alternating)
			if err != nil {
				return nil, err
			}
			key := [2]any{productID, dayType}
			if seen[key] {
				return nil, domain.ErrDuplicateProduct
			}
			seen[key] = true
			mod.Items = append(mod.Items, domain.ModificationItem{
				ID:             s.genID.Generate().Int64(),
				ModificationID: mod.ID,
				ProductID:      productID,
				DayType:        dayType,
				Quantity:       p.Quantity,
			})
		}
	}

	if err := s.repo.CreateModification(ctx, s.db, mod); err != nil {
		return nil, err
	}

	return toModificationResponse(mod), nil
}

func (s *Service) ClearEndedBefore(ctx context.Context, date string) (int64, error) {
	cutoff, err := parseDate(date)
	if err != nil {
		return 0, domain.ErrInvalidDate
	}

	count, err := s.repo.DeleteEndedBefore(ctx, s.db, cutoff)
	if err != nil {
		return 0, err
	}
	s.log.Info("cleared expired order modifications",
		zap.String("before", cutoff.Format(dateLayout)),
		zap.Int64("count", count),
	)
	return count, nil
}

func (s *Service) Resolve(ctx context.Context, customerID int64, date time.Time) ([]domain.ResolvedItem, error) {
	customer, err := s.customerRepo.FindByID(ctx, s.db, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	day := truncateToDay(date)
	mod, err := s.repo.FindWinningModification(ctx, s.db, customerID, day)
	if err != nil {
		return nil, err
	}

	var mods []domain.Modification
	if mod != nil {
		mods = []domain.Modification{*mod}
	}

	defaults, err := s.repo.FindDefaultItems(ctx, s.db, customerID)
	if err != nil {
		return nil, err
	}

	s.metrics.OrderResolved()
	return resolveDay(mods, defaults, customer.IsAlternatingOrder, day), nil
}

func (s *Service) MonthlyOrders(ctx context.Context, req domain.MonthlyOrdersRequest) (*domain.MonthlyOrdersResponse, error) {
	customer, err := s.findCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 1 {
		return nil, domain.ErrInvalidMonth
	}

	first := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	mods, err := s.repo.FindModificationsInRange(ctx, s.db, customer.ID, first, last)
	if err != nil {
		return nil, err
	}
	defaults, err := s.repo.FindDefaultItems(ctx, s.db, customer.ID)
	if err != nil {
		return nil, err
	}

	resp := &domain.MonthlyOrdersResponse{
		CustomerID: snowflake.ID(customer.ID).String(),
		Month:      req.Month,
		Year:       req.Year,
	}
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		items := resolveDay(mods, defaults, customer.IsAlternatingOrder, day)
		s.metrics.OrderResolved()

		products := make([]domain.OrderItemResponse, 0, len(items))
		for _, it := range items {
			products = append(products, domain.OrderItemResponse{
				ProductID: snowflake.ID(it.ProductID).String(),
				Quantity:  it.Quantity,
			})
		}
		resp.Days = append(resp.Days, domain.DayOrdersResponse{
			Date:     day.Format(dateLayout),
			Products: products,
		})
	}
	return resp, nil
}

func (s *Service) findCustomer(ctx context.Context, id string) (*customerdomain.Customer, error) {
	customerID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	customer, err := s.customerRepo.FindByID(ctx, s.db, customerID.Int64())
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

// checkItem validates one incoming order line and normalizes its day
// type: flat orders always store the empty bucket, alternating orders
// must name ODD or EVEN.
func (s *Service) checkItem(ctx context.Context, item domain.OrderItemRequest, alternating bool) (int64, string, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(item.ProductID))
	if err != nil {
		return 0, "", domain.ErrInvalidID
	}
	product, err := s.productRepo.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return 0, "", err
	}
	if product == nil {
		return 0, "", domain.ErrProductNotFound
	}
	if item.Quantity <= 0 {
		return 0, "", domain.ErrInvalidQuantity
	}

	dayType := strings.ToUpper(strings.TrimSpace(item.DayType))
	if !alternating {
		return productID.Int64(), domain.DayTypeAll, nil
	}
	if dayType != domain.DayTypeOdd && dayType != domain.DayTypeEven {
		return 0, "", domain.ErrInvalidDayType
	}
	return productID.Int64(), dayType, nil
}

func toItemResponses(items []domain.DefaultOrderItem) []domain.OrderItemResponse {
	resp := make([]domain.OrderItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, domain.OrderItemResponse{
			ProductID: snowflake.ID(it.ProductID).String(),
			Quantity:  it.Quantity,
			DayType:   it.DayType,
		})
	}
	return resp
}

func toModificationResponse(mod *domain.Modification) *domain.ModificationResponse {
	resp := &domain.ModificationResponse{
		ID:        snowflake.ID(mod.ID).String(),
		UserID:    snowflake.ID(mod.CustomerID).String(),
		StartDate: mod.StartDate.Format(dateLayout),
		EndDate:   mod.EndDate.Format(dateLayout),
		Paused:    mod.Paused,
	}
	for _, it := range mod.Items {
		resp.Products = append(resp.Products, domain.OrderItemResponse{
			ProductID: snowflake.ID(it.ProductID).String(),
			Quantity:  it.Quantity,
			DayType:   it.DayType,
		})
	}
	return resp
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(value))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
