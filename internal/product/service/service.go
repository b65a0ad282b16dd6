package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/praneeth8555/dairyadmin/internal/clock"
	"github.com/praneeth8555/dairyadmin/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("product.service"),
		clock: p.Clock,
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	p, err := s.build(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, s.db, p); err != nil {
		return nil, err
	}
	resp := toResponse(p)
	return &resp, nil
}

func (s *Service) BulkCreate(ctx context.Context, reqs []domain.CreateRequest) ([]domain.Response, error) {
	products := make([]*domain.Product, 0, len(reqs))
	for _, req := range reqs {
		p, err := s.build(req)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	resp := make([]domain.Response, 0, len(products))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range products {
			if err := s.repo.Create(ctx, tx, p); err != nil {
				return err
			}
			resp = append(resp, toResponse(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, toResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(item)
	return &resp, nil
}

// Update applies field changes and, when the price moved, appends a
// price history row so past bills keep resolving against the old price.
func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	item, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	previousPrice := item.CurrentPrice

	if req.ProductName != nil {
		name := strings.TrimSpace(*req.ProductName)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		item.ProductName = name
	}
	if req.Unit != nil {
		item.Unit = strings.TrimSpace(*req.Unit)
	}
	if req.Acronym != nil {
		item.Acronym = strings.TrimSpace(*req.Acronym)
	}
	if req.ImageURL != nil {
		item.ImageURL = strings.TrimSpace(*req.ImageURL)
	}

	priceChanged := false
	if req.CurrentPrice != nil {
		if *req.CurrentPrice < 0 {
			return nil, domain.ErrInvalidPrice
		}
		priceChanged = *req.CurrentPrice != previousPrice
		item.CurrentPrice = *req.CurrentPrice
	}

	effectiveFrom := truncateToDay(s.clock.Now())
	if req.EffectiveFrom != nil && strings.TrimSpace(*req.EffectiveFrom) != "" {
		parsed, err := time.Parse(dateLayout, strings.TrimSpace(*req.EffectiveFrom))
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		effectiveFrom = parsed
	}

	item.UpdatedAt = s.clock.Now()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, item); err != nil {
			return err
		}
		if !priceChanged {
			return nil
		}
		return s.repo.CreatePriceHistory(ctx, tx, &domain.PriceHistory{
			ID:            s.genID.Generate().Int64(),
			ProductID:     item.ID,
			OldPrice:      previousPrice,
			NewPrice:      item.CurrentPrice,
			EffectiveFrom: effectiveFrom,
			CreatedAt:     s.clock.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	item, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, item.ID)
}

func (s *Service) PriceHistory(ctx context.Context, id string) ([]domain.PriceHistoryResponse, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.FindPriceHistory(ctx, s.db, item.ID)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.PriceHistoryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, domain.PriceHistoryResponse{
			ID:            snowflake.ID(e.ID).String(),
			ProductID:     snowflake.ID(e.ProductID).String(),
			OldPrice:      e.OldPrice,
			NewPrice:      e.NewPrice,
			EffectiveFrom: e.EffectiveFrom.Format(dateLayout),
		})
	}
	return resp, nil
}

func (s *Service) PriceOn(ctx context.Context, productID int64, on time.Time) (float64, error) {
	entry, err := s.repo.FindPriceOn(ctx, s.db, productID, truncateToDay(on))
	if err != nil {
		return 0, err
	}
	if entry != nil {
		return entry.NewPrice, nil
	}

	// The date predates every recorded change, so the oldest entry's
	// pre-change price applies.
	earliest, err := s.repo.FindEarliestHistory(ctx, s.db, productID)
	if err != nil {
		return 0, err
	}
	if earliest != nil {
		return earliest.OldPrice, nil
	}

	item, err := s.repo.FindByID(ctx, s.db, productID)
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, nil
	}
	return item.CurrentPrice, nil
}

func (s *Service) build(req domain.CreateRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.ProductName)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if req.CurrentPrice < 0 {
		return nil, domain.ErrInvalidPrice
	}

	now := s.clock.Now()
	return &domain.Product{
		ID:           s.genID.Generate().Int64(),
		ProductName:  name,
		Unit:         strings.TrimSpace(req.Unit),
		CurrentPrice: req.CurrentPrice,
		Acronym:      strings.TrimSpace(req.Acronym),
		ImageURL:     strings.TrimSpace(req.ImageURL),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (s *Service) find(ctx context.Context, id string) (*domain.Product, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func toResponse(p *domain.Product) domain.Response {
	return domain.Response{
		ID:           snowflake.ID(p.ID).String(),
		ProductName:  p.ProductName,
		Unit:         p.Unit,
		CurrentPrice: p.CurrentPrice,
		Acronym:      p.Acronym,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
