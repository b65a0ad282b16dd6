package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	apartmentdomain "github.com/praneeth8555/dairyadmin/internal/apartment/domain"
	apartmentrepo "github.com/praneeth8555/dairyadmin/internal/apartment/repository"
	"github.com/praneeth8555/dairyadmin/internal/clock"
	"github.com/praneeth8555/dairyadmin/internal/customer/domain"
	"github.com/praneeth8555/dairyadmin/internal/customer/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (domain.Service, *gorm.DB, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&apartmentdomain.Apartment{}, &domain.Customer{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	apt := &apartmentdomain.Apartment{
		ID:            node.Generate().Int64(),
		ApartmentName: "Lakeview",
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
	require.NoError(t, db.Create(apt).Error)

	svc := New(Params{
		DB:            db,
		Log:           zap.NewNop(),
		Clock:         clock.NewFakeClock(time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)),
		GenID:         node,
		Repo:          repository.Provide(),
		ApartmentRepo: apartmentrepo.Provide(),
	})
	return svc, db, snowflake.ID(apt.ID).String()
}

func TestCreateAssignsNextPriority(t *testing.T) {
	svc, _, aptID := setupService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, domain.CreateRequest{ApartmentID: aptID, Name: "Anand"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.PriorityOrder)

	second, err := svc.Create(ctx, domain.CreateRequest{ApartmentID: aptID, Name: "Bhavya"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.PriorityOrder)
}

func TestListByApartmentOrdersByPriority(t *testing.T) {
	svc, _, aptID := setupService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, domain.CreateRequest{ApartmentID: aptID, Name: "Anand"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, domain.CreateRequest{ApartmentID: aptID, Name: "Bhavya"})
	require.NoError(t, err)
	c, err := svc.Create(ctx, domain.CreateRequest{ApartmentID: aptID, Name: "Chitra"})
	require.NoError(t, err)

	// Move Chitra to the top, keep the rest behind her.
	err = svc.UpdatePriorities(ctx, domain.UpdatePrioritiesRequest{
		ApartmentID: aptID,
		Customers: []domain.PriorityAssignment{
			{UserID: c.ID, PriorityOrder: 1},
			{UserID: a.ID, PriorityOrder: 2},
			{UserID: b.ID, PriorityOrder: 3},
		},
	})
	require.NoError(t, err)

	listed, err := svc.ListByApartment(ctx, aptID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "Chitra", listed[0].Name)
	assert.Equal(t, "Anand", listed[1].Name)
	assert.Equal(t, "Bhavya", listed[2].Name)
}

func TestUpdatePrioritiesFromOrderedIDs(t *testing.T) {
	svc, _, aptID := setupService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, domain.CreateRequest{ApartmentID: aptID, Name: "Anand"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, domain.CreateRequest{ApartmentID: aptID, Name: "Bhavya"})
	require.NoError(t, err)

	err = svc.UpdatePriorities(ctx, domain.UpdatePrioritiesRequest{
		ApartmentID:        aptID,
		OrderedCustomerIDs: []string{b.ID, a.ID},
	})
	require.NoError(t, err)

	listed, err := svc.ListByApartment(ctx, aptID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Bhavya", listed[0].Name)
	assert.Equal(t, 1, listed[0].PriorityOrder)
	assert.Equal(t, 2, listed[1].PriorityOrder)
}

func TestUpdatePrioritiesUnknownCustomerRollsBack(t *testing.T) {
	svc, db, aptID := setupService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, domain.CreateRequest{ApartmentID: aptID, Name: "Anand"})
	require.NoError(t, err)

	err = svc.UpdatePriorities(ctx, domain.UpdatePrioritiesRequest{
		ApartmentID: aptID,
		Customers: []domain.PriorityAssignment{
			{UserID: a.ID, PriorityOrder: 9},
			{UserID: "123456789", PriorityOrder: 1},
		},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	var stored domain.Customer
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, 1, stored.PriorityOrder)
}

func TestCreateRejectsUnknownApartment(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Create(context.Background(), domain.CreateRequest{
		ApartmentID: "987654321",
		Name:        "Anand",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidApartment)
}

func TestBulkCreateIsAtomic(t *testing.T) {
	svc, db, aptID := setupService(t)
	ctx := context.Background()

	_, err := svc.BulkCreate(ctx, []domain.CreateRequest{
		{ApartmentID: aptID, Name: "Anand"},
		{ApartmentID: aptID, Name: "   "},
	})
	require.ErrorIs(t, err, domain.ErrInvalidName)

	var count int64
	require.NoError(t, db.Model(&domain.Customer{}).Count(&count).Error)
	assert.Zero(t, count)
}
