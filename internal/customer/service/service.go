package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	apartmentdomain "github.com/praneeth8555/dairyadmin/internal/apartment/domain"
	"github.com/praneeth8555/dairyadmin/internal/clock"
	"github.com/praneeth8555/dairyadmin/internal/customer/domain"
	"github.com/praneeth8555/dairyadmin/pkg/sequence"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB            *gorm.DB
	Log           *zap.Logger
	Clock         clock.Clock
	GenID         *snowflake.Node
	Repo          domain.Repository
	ApartmentRepo apartmentdomain.Repository
}

type Service struct {
	db            *gorm.DB
	log           *zap.Logger
	clock         clock.Clock
	genID         *snowflake.Node
	repo          domain.Repository
	apartmentRepo apartmentdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:            p.DB,
		log:           p.Log.Named("customer.service"),
		clock:         p.Clock,
		genID:         p.GenID,
		repo:          p.Repo,
		apartmentRepo: p.ApartmentRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	var created *domain.Customer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := s.createOne(ctx, tx, req)
		if err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toResponse(created)
	return &resp, nil
}

func (s *Service) BulkCreate(ctx context.Context, reqs []domain.CreateRequest) ([]domain.Response, error) {
	resp := make([]domain.Response, 0, len(reqs))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, req := range reqs {
			c, err := s.createOne(ctx, tx, req)
			if err != nil {
				return err
			}
			resp = append(resp, toResponse(c))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// createOne places the new customer at the end of the apartment's
// delivery sequence.
func (s *Service) createOne(ctx context.Context, tx *gorm.DB, req domain.CreateRequest) (*domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	apartmentID, err := snowflake.ParseString(strings.TrimSpace(req.ApartmentID))
	if err != nil {
		return nil, domain.ErrInvalidApartment
	}
	apt, err := s.apartmentRepo.FindByID(ctx, tx, apartmentID.Int64())
	if err != nil {
		return nil, err
	}
	if apt == nil {
		return nil, domain.ErrInvalidApartment
	}

	maxPriority, err := s.repo.MaxPriority(ctx, tx, apartmentID.Int64())
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	c := &domain.Customer{
		ID:                 s.genID.Generate().Int64(),
		ApartmentID:        apartmentID.Int64(),
		Name:               name,
		RoomNumber:         strings.TrimSpace(req.RoomNumber),
		PhoneNumber:        strings.TrimSpace(req.PhoneNumber),
		Email:              strings.TrimSpace(req.Email),
		PriorityOrder:      maxPriority + 1,
		IsAlternatingOrder: req.IsAlternatingOrder,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.repo.Create(ctx, tx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListByApartment(ctx context.Context, apartmentID string) ([]domain.Response, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(apartmentID))
	if err != nil {
		return nil, domain.ErrInvalidApartment
	}

	items, err := s.repo.FindByApartment(ctx, s.db, id.Int64())
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	item, err := s.find(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.ApartmentID != nil {
		apartmentID, err := snowflake.ParseString(strings.TrimSpace(*req.ApartmentID))
		if err != nil {
			return nil, domain.ErrInvalidApartment
		}
		apt, err := s.apartmentRepo.FindByID(ctx, s.db, apartmentID.Int64())
		if err != nil {
			return nil, err
		}
		if apt == nil {
			return nil, domain.ErrInvalidApartment
		}
		item.ApartmentID = apartmentID.Int64()
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.RoomNumber != nil {
		item.RoomNumber = strings.TrimSpace(*req.RoomNumber)
	}
	if req.PhoneNumber != nil {
		item.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
	}
	if req.Email != nil {
		item.Email = strings.TrimSpace(*req.Email)
	}
	if req.IsAlternatingOrder != nil {
		item.IsAlternatingOrder = *req.IsAlternatingOrder
	}

	item.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
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

func (s *Service) UpdatePriorities(ctx context.Context, req domain.UpdatePrioritiesRequest) error {
	assignments := req.Customers
	if len(assignments) == 0 && len(req.OrderedCustomerIDs) > 0 {
		for id, priority := range sequence.Renumber(req.OrderedCustomerIDs) {
			assignments = append(assignments, domain.PriorityAssignment{
				UserID:        id,
				PriorityOrder: priority,
			})
		}
	}
	if len(assignments) == 0 {
		return domain.ErrEmptyPriorities
	}

	type update struct {
		id       int64
		priority int
	}
	updates := make([]update, 0, len(assignments))
	for _, a := range assignments {
		id, err := snowflake.ParseString(strings.TrimSpace(a.UserID))
		if err != nil {
			return domain.ErrInvalidID
		}
		updates = append(updates, update{id: id.Int64(), priority: a.PriorityOrder})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			item, err := s.repo.FindByID(ctx, tx, u.id)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			if err := s.repo.UpdatePriority(ctx, tx, u.id, u.priority); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) find(ctx context.Context, id string) (*domain.Customer, error) {
	customerID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, customerID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func toResponses(items []domain.Customer) []domain.Response {
	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, toResponse(&items[i]))
	}
	return resp
}

func toResponse(c *domain.Customer) domain.Response {
	return domain.Response{
		ID:                 snowflake.ID(c.ID).String(),
		ApartmentID:        snowflake.ID(c.ApartmentID).String(),
		Name:               c.Name,
		RoomNumber:         c.RoomNumber,
		PhoneNumber:        c.PhoneNumber,
		Email:              c.Email,
		PriorityOrder:      c.PriorityOrder,
		IsAlternatingOrder: c.IsAlternatingOrder,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
