package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	apartmentdomain "github.com/praneeth8555/dairyadmin/internal/apartment/domain"
	"github.com/praneeth8555/dairyadmin/internal/billing/domain"
	"github.com/praneeth8555/dairyadmin/internal/clock"
	"github.com/praneeth8555/dairyadmin/internal/config"
	customerdomain "github.com/praneeth8555/dairyadmin/internal/customer/domain"
	customerrepo "github.com/praneeth8555/dairyadmin/internal/customer/repository"
	"github.com/praneeth8555/dairyadmin/internal/observability/metrics"
	orderdomain "github.com/praneeth8555/dairyadmin/internal/order/domain"
	orderrepo "github.com/praneeth8555/dairyadmin/internal/order/repository"
	orderservice "github.com/praneeth8555/dairyadmin/internal/order/service"
	productdomain "github.com/praneeth8555/dairyadmin/internal/product/domain"
	productrepo "github.com/praneeth8555/dairyadmin/internal/product/repository"
	productservice "github.com/praneeth8555/dairyadmin/internal/product/service"
	"github.com/praneeth8555/dairyadmin/internal/providers/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc      domain.Service
	orders   orderdomain.Service
	products productdomain.Service
	customer *customerdomain.Customer
	milk     *productdomain.Product
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
	fake := clock.NewFakeClock(time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC))
	log := zap.NewNop()

	appMetrics, err := metrics.New()
	require.NoError(t, err)

	now := fake.Now()
	apt := &apartmentdomain.Apartment{ID: node.Generate().Int64(), ApartmentName: "Lakeview", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(apt).Error)
	cust := &customerdomain.Customer{
		ID: node.Generate().Int64(), ApartmentID: apt.ID, Name: "Anand",
		RoomNumber: "101", PriorityOrder: 1, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, db.Create(cust).Error)
	milk := &productdomain.Product{ID: node.Generate().Int64(), ProductName: "Milk", Unit: "L", CurrentPrice: 30, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(milk).Error)

	products := productservice.New(productservice.Params{
		DB: db, Log: log, Clock: fake, GenID: node, Repo: productrepo.Provide(),
	})
	orders := orderservice.New(orderservice.Params{
		DB: db, Log: log, Clock: fake, GenID: node, Metrics: appMetrics,
		Repo:         orderrepo.Provide(),
		CustomerRepo: customerrepo.Provide(),
		ProductRepo:  productrepo.Provide(),
	})

	delivery, err := config.NewDeliveryConfigHolder()
	require.NoError(t, err)

	svc := New(Params{
		DB:           db,
		Log:          log,
		Clock:        fake,
		Metrics:      appMetrics,
		Locker:       nil,
		Delivery:     delivery,
		PDF:          pdf.New(),
		Orders:       orders,
		Products:     products,
		CustomerRepo: customerrepo.Provide(),
		ProductRepo:  productrepo.Provide(),
	})

	return &fixture{svc: svc, orders: orders, products: products, customer: cust, milk: milk}
}

func (f *fixture) customerID() string { return snowflake.ID(f.customer.ID).String() }
func (f *fixture) milkID() string     { return snowflake.ID(f.milk.ID).String() }

func TestMonthlyBillSumsDaybillsAndDeliveryCharge(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.orders.SetDefaultOrder(ctx, orderdomain.SetDefaultOrderRequest{
		CustomerID: f.customerID(),
		Products:   []orderdomain.OrderItemRequest{{ProductID: f.milkID(), Quantity: 2}},
	})
	require.NoError(t, err)

	bill, err := f.svc.MonthlyBill(ctx, domain.MonthlyBillRequest{
		CustomerID: f.customerID(),
		Month:      5,
		Year:       2024,
	})
	require.NoError(t, err)

	// 31 days x 2 L x 30 = 1860, plus the flat delivery charge.
	require.Len(t, bill.Days, 31)
	assert.InDelta(t, 1860.0, bill.Subtotal, 0.001)
	assert.InDelta(t, 100.0, bill.DeliveryCharge, 0.001)
	assert.InDelta(t, 1960.0, bill.TotalBill, 0.001)
	assert.Equal(t, "Anand", bill.CustomerName)
}

func TestMonthlyBillUsesPriceEffectiveOnEachDay(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.orders.SetDefaultOrder(ctx, orderdomain.SetDefaultOrderRequest{
		CustomerID: f.customerID(),
		Products:   []orderdomain.OrderItemRequest{{ProductID: f.milkID(), Quantity: 1}},
	})
	require.NoError(t, err)

	// Price rises from 30 to 40 on May 16: 15 days at 30, 16 at 40.
	newPrice := 40.0
	effective := "2024-05-16"
	_, err = f.products.Update(ctx, productdomain.UpdateRequest{
		ID:            f.milkID(),
		CurrentPrice:  &newPrice,
		EffectiveFrom: &effective,
	})
	require.NoError(t, err)

	bill, err := f.svc.MonthlyBill(ctx, domain.MonthlyBillRequest{
		CustomerID: f.customerID(),
		Month:      5,
		Year:       2024,
	})
	require.NoError(t, err)

	assert.InDelta(t, 15*30.0+16*40.0, bill.Subtotal, 0.001)
	assert.InDelta(t, 30.0, bill.Days[0].Items[0].UnitPrice, 0.001)
	assert.InDelta(t, 40.0, bill.Days[15].Items[0].UnitPrice, 0.001)
}

func TestMonthlyBillPausedDaysContributeNothing(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.orders.SetDefaultOrder(ctx, orderdomain.SetDefaultOrderRequest{
		CustomerID: f.customerID(),
		Products:   []orderdomain.OrderItemRequest{{ProductID: f.milkID(), Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.orders.Pause(ctx, orderdomain.PauseRequest{
		UserID:    f.customerID(),
		StartDate: "2024-05-01",
		EndDate:   "2024-05-10",
	})
	require.NoError(t, err)

	bill, err := f.svc.MonthlyBill(ctx, domain.MonthlyBillRequest{
		CustomerID: f.customerID(),
		Month:      5,
		Year:       2024,
	})
	require.NoError(t, err)

	assert.InDelta(t, 21*30.0, bill.Subtotal, 0.001)
	assert.Empty(t, bill.Days[0].Items)
	assert.Zero(t, bill.Days[0].DayBill)
}

func TestMonthlyBillValidation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.MonthlyBill(ctx, domain.MonthlyBillRequest{CustomerID: "abc!", Month: 5, Year: 2024})
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = f.svc.MonthlyBill(ctx, domain.MonthlyBillRequest{CustomerID: f.customerID(), Month: 13, Year: 2024})
	assert.ErrorIs(t, err, domain.ErrInvalidMonth)

	_, err = f.svc.MonthlyBill(ctx, domain.MonthlyBillRequest{CustomerID: "424242", Month: 5, Year: 2024})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMonthlyBillPDFRenders(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.orders.SetDefaultOrder(ctx, orderdomain.SetDefaultOrderRequest{
		CustomerID: f.customerID(),
		Products:   []orderdomain.OrderItemRequest{{ProductID: f.milkID(), Quantity: 1}},
	})
	require.NoError(t, err)

	out, err := f.svc.MonthlyBillPDF(ctx, domain.MonthlyBillRequest{
		CustomerID: f.customerID(),
		Month:      5,
		Year:       2024,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
