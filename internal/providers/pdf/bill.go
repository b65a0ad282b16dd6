package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateMonthlyBill(ctx context.Context, bill BillData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, bill.BusinessName, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)
	m.AddRow(10,
		text.NewCol(12, "Monthly Bill", props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(24,
		col.New(6).Add(
			text.New("Customer: "+bill.CustomerName, props.Text{Top: 0}),
			text.New("Room: "+bill.RoomNumber, props.Text{Top: 5}),
		),
		col.New(6).Add(
			text.New("Period: "+bill.Period, props.Text{Top: 0}),
			text.New("Generated: "+bill.GeneratedAt, props.Text{Top: 5}),
		),
	)

	m.AddRow(10,
		text.NewCol(6, "Product", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, "Total qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(3, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range bill.Items {
		m.AddRow(8,
			text.NewCol(6, item.ProductName, props.Text{Size: 9}),
			text.NewCol(3, item.Quantity, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(3, item.Amount, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(6),
		text.NewCol(3, "Subtotal", props.Text{Size: 9}),
		text.NewCol(3, bill.Subtotal, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(6),
		text.NewCol(3, "Delivery charge", props.Text{Size: 9}),
		text.NewCol(3, bill.DeliveryCharge, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(6),
		text.NewCol(3, "Total due", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(3, bill.Total, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
