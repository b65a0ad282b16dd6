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
	customerdomain "github.com/praneeth8555/dairyadmin/internal/customer/domain"
	customerrepo "github.com/praneeth8555/dairyadmin/internal/customer/repository"
	"github.com/praneeth8555/dairyadmin/internal/observability/metrics"
	orderdomain "github.com/praneeth8555/dairyadmin/internal/order/domain"
	orderrepo "github.com/praneeth8555/dairyadmin/internal/order/repository"
	orderservice "github.com/praneeth8555/dairyadmin/internal/order/service"
	productdomain "github.com/praneeth8555/dairyadmin/internal/product/domain"
	productrepo "github.com/praneeth8555/dairyadmin/internal/product/repository"
	productservice "github.com/praneeth8555/dairyadmin/internal/product/service"
	"github.com/praneeth8555/dairyadmin/internal/summary/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc      domain.Service
	orders   orderdomain.Service
	products productdomain.Service
	apt      *apartmentdomain.Apartment
	anand    *customerdomain.Customer
	bhavya   *customerdomain.Customer
	milk     *productdomain.Product
	curd     *productdomain.Product
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&apartmentdomain.Apartment{},
		&customerdomain.Customer{},
		&productdomain.Product{},
		&productdomain.PriceHistory{},
		&orderdomain.DefaultOrderItem{},
		&orderdomain.Modification{},
		&orderdomain.ModificationItem{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	fake := clock.NewFakeClock(time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC))
	log := zap.NewNop()

	appMetrics, err := metrics.New()
	require.NoError(t, err)

	now := fake.Now()
	apt := &apartmentdomain.Apartment{ID: node.Generate().Int64(), ApartmentName: "Lakeview", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(apt).Error)

	anand := &customerdomain.Customer{ID: node.Generate().Int64(), ApartmentID: apt.ID, Name: "Anand", RoomNumber: "101", PriorityOrder: 1, CreatedAt: now, UpdatedAt: now}
	bhavya := &customerdomain.Customer{ID: node.Generate().Int64(), ApartmentID: apt.ID, Name: "Bhavya", RoomNumber: "102", PriorityOrder: 2, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(anand).Error)
	require.NoError(t, db.Create(bhavya).Error)

	milk := &productdomain.Product{ID: node.Generate().Int64(), ProductName: "Milk", Unit: "L", Acronym: "MLK", CurrentPrice: 30, CreatedAt: now, UpdatedAt: now}
	curd := &productdomain.Product{ID: node.Generate().Int64(), ProductName: "Curd", Unit: "kg", CurrentPrice: 50, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(milk).Error)
	require.NoError(t, db.Create(curd).Error)

	orders := orderservice.New(orderservice.Params{
		DB: db, Log: log, Clock: fake, GenID: node, Metrics: appMetrics,
		Repo:         orderrepo.Provide(),
		CustomerRepo: customerrepo.Provide(),
		ProductRepo:  productrepo.Provide(),
	})

	products := productservice.New(productservice.Params{
		DB: db, Log: log, Clock: fake, GenID: node,
		Repo: productrepo.Provide(),
	})

	svc := New(Params{
		DB:            db,
		Log:           log,
		Metrics:       appMetrics,
		Orders:        orders,
		Products:      products,
		ApartmentRepo: apartmentrepo.Provide(),
		CustomerRepo:  customerrepo.Provide(),
		ProductRepo:   productrepo.Provide(),
	})

	return &fixture{svc: svc, orders: orders, products: products, apt: apt, anand: anand, bhavya: bhavya, milk: milk, curd: curd}
}

func id(v int64) string { return snowflake.ID(v).String() }

func (f *fixture) seedDefaults(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := f.orders.SetDefaultOrder(ctx, orderdomain.SetDefaultOrderRequest{
		CustomerID: id(f.anand.ID),
		Products: []orderdomain.OrderItemRequest{
			{ProductID: id(f.milk.ID), Quantity: 1},
			{ProductID: id(f.curd.ID), Quantity: 0.5},
		},
	})
	require.NoError(t, err)

	_, err = f.orders.SetDefaultOrder(ctx, orderdomain.SetDefaultOrderRequest{
		CustomerID: id(f.bhavya.ID),
		Products:   []orderdomain.OrderItemRequest{{ProductID: id(f.milk.ID), Quantity: 2}},
	})
	require.NoError(t, err)
}

func TestRoomDailyGroupsByRoomAndMarksEmptyOrders(t *testing.T) {
	f := setup(t)
	f.seedDefaults(t)
	ctx := context.Background()

	_, err := f.orders.Pause(ctx, orderdomain.PauseRequest{
		UserID:    id(f.bhavya.ID),
		StartDate: "2024-05-10",
		EndDate:   "2024-05-10",
	})
	require.NoError(t, err)

	resp, err := f.svc.RoomDaily(ctx, domain.DailyRequest{ApartmentID: id(f.apt.ID), Date: "2024-05-10"})
	require.NoError(t, err)
	require.Len(t, resp.Customers, 2)

	assert.Equal(t, "101", resp.Customers[0].RoomNumber)
	assert.False(t, resp.Customers[0].NoOrders)
	assert.Len(t, resp.Customers[0].Orders, 2)

	assert.Equal(t, "102", resp.Customers[1].RoomNumber)
	assert.True(t, resp.Customers[1].NoOrders)
	assert.Empty(t, resp.Customers[1].Orders)
}

func TestTotalDailySumsQuantitiesPerProduct(t *testing.T) {
	f := setup(t)
	f.seedDefaults(t)

	resp, err := f.svc.TotalDaily(context.Background(), domain.DailyRequest{
		ApartmentID: id(f.apt.ID),
		Date:        "2024-05-10",
	})
	require.NoError(t, err)
	require.Len(t, resp.Totals, 2)

	// Sorted by product name: Curd then Milk.
	assert.Equal(t, "Curd", resp.Totals[0].ProductName)
	assert.InDelta(t, 0.5, resp.Totals[0].Quantity, 0.001)
	assert.Equal(t, "Milk", resp.Totals[1].ProductName)
	assert.InDelta(t, 3.0, resp.Totals[1].Quantity, 0.001)
}

func TestDailySalesBreaksDownPerApartment(t *testing.T) {
	f := setup(t)
	f.seedDefaults(t)

	resp, err := f.svc.DailySales(context.Background(), "2024-05-10")
	require.NoError(t, err)

	require.Len(t, resp.Apartments, 1)
	assert.Equal(t, "Lakeview", resp.Apartments[0].ApartmentName)
	require.Len(t, resp.Totals, 2)

	assert.Equal(t, "Curd", resp.Totals[0].ProductName)
	assert.InDelta(t, 50.0, resp.Totals[0].UnitPrice, 0.001)
	assert.InDelta(t, 25.0, resp.Totals[0].Revenue, 0.001)

	assert.Equal(t, "Milk", resp.Totals[1].ProductName)
	assert.InDelta(t, 3.0, resp.Totals[1].Quantity, 0.001)
	assert.InDelta(t, 30.0, resp.Totals[1].UnitPrice, 0.001)
	assert.InDelta(t, 90.0, resp.Totals[1].Revenue, 0.001)

	assert.InDelta(t, 115.0, resp.Revenue, 0.001)
	assert.InDelta(t, 115.0, resp.Apartments[0].Revenue, 0.001)
}

func TestDailySalesPricesLinesAtEffectiveRate(t *testing.T) {
	f := setup(t)
	f.seedDefaults(t)
	ctx := context.Background()

	price := 40.0
	effective := "2024-05-16"
	_, err := f.products.Update(ctx, productdomain.UpdateRequest{
		ID:            id(f.milk.ID),
		CurrentPrice:  &price,
		EffectiveFrom: &effective,
	})
	require.NoError(t, err)

	before, err := f.svc.DailySales(ctx, "2024-05-10")
	require.NoError(t, err)
	require.Len(t, before.Totals, 2)
	assert.Equal(t, "Milk", before.Totals[1].ProductName)
	assert.InDelta(t, 30.0, before.Totals[1].UnitPrice, 0.001)

	after, err := f.svc.DailySales(ctx, "2024-05-20")
	require.NoError(t, err)
	require.Len(t, after.Totals, 2)
	assert.Equal(t, "Milk", after.Totals[1].ProductName)
	assert.InDelta(t, 40.0, after.Totals[1].UnitPrice, 0.001)
	assert.InDelta(t, 120.0, after.Totals[1].Revenue, 0.001)
}

func TestExportRoomDailyProducesWorkbook(t *testing.T) {
	f := setup(t)
	f.seedDefaults(t)

	out, err := f.svc.ExportRoomDaily(context.Background(), domain.DailyRequest{
		ApartmentID: id(f.apt.ID),
		Date:        "2024-05-10",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	// XLSX files are zip archives.
	assert.Equal(t, byte('P'), out[0])
	assert.Equal(t, byte('K'), out[1])
}

func TestDailyValidation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.RoomDaily(ctx, domain.DailyRequest{ApartmentID: "zz!", Date: "2024-05-10"})
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = f.svc.RoomDaily(ctx, domain.DailyRequest{ApartmentID: id(f.apt.ID), Date: "10-05-2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = f.svc.TotalDaily(ctx, domain.DailyRequest{ApartmentID: "424242", Date: "2024-05-10"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.DailySales(ctx, "never")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}
