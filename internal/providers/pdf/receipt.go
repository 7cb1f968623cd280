package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type marotoProvider struct{}

func NewProvider() Provider {
	return &marotoProvider{}
}

func (p *marotoProvider) GenerateReceipt(ctx context.Context, data ReceiptData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	// Shop header
	m.AddRow(24,
		col.New(12).Add(
			text.New(data.ShopName, props.Text{Size: 18, Style: fontstyle.Bold, Align: align.Center}),
			text.New(data.ShopAddress, props.Text{Size: 9, Top: 9, Align: align.Center}),
			text.New(data.ShopPhone, props.Text{Size: 9, Top: 13, Align: align.Center}),
		),
	)
	if data.GSTIN != "" {
		m.AddRow(6,
			text.NewCol(12, "GSTIN: "+data.GSTIN, props.Text{Size: 9, Align: align.Center}),
		)
	}

	m.AddRow(4, line.NewCol(12))

	// Bill meta
	m.AddRow(16,
		col.New(6).Add(
			text.New("Bill No: "+data.BillNo, props.Text{Size: 10, Style: fontstyle.Bold}),
			text.New("Date: "+data.BillDate, props.Text{Size: 10, Top: 5}),
		),
		col.New(6).Add(
			text.New("Customer: "+data.CustomerName, props.Text{Size: 10, Align: align.Right}),
			text.New("Sale type: "+data.SaleType, props.Text{Size: 10, Top: 5, Align: align.Right}),
		),
	)

	// Item table
	m.AddRow(8,
		text.NewCol(4, "Item", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Weight (g)", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Rate/g", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Making", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	for _, item := range data.Items {
		name := item.Name
		if item.Barcode != "" {
			name = name + " [" + item.Barcode + "]"
		}
		m.AddRow(7,
			text.NewCol(4, name, props.Text{Size: 9}),
			text.NewCol(2, item.Weight, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Rate, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Making, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Amount, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(4, line.NewCol(12))

	addTotal := func(label, value string, bold bool) {
		if value == "" {
			return
		}
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		m.AddRow(7,
			col.New(8),
			text.NewCol(2, label, props.Text{Size: 9, Style: style, Align: align.Right}),
			text.NewCol(2, value, props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}

	addTotal("Subtotal", data.Subtotal, false)
	addTotal("Old Gold", data.OldGoldCredit, false)
	addTotal("MC/Value Added", data.Surcharge, false)
	addTotal("Discount", data.Discount, false)
	addTotal("CGST @1.5%", data.CGST, false)
	addTotal("SGST @1.5%", data.SGST, false)
	addTotal("Grand Total", data.GrandTotal, true)
	addTotal("Amount Payable", data.AmountPayable, true)

	if len(data.PaymentLines) > 0 {
		m.AddRow(4, line.NewCol(12))
		for _, payment := range data.PaymentLines {
			m.AddRow(6,
				text.NewCol(12, payment, props.Text{Size: 9}),
			)
		}
	}

	m.AddRow(12,
		text.NewCol(12, "Thank you for your purchase", props.Text{Size: 9, Top: 5, Align: align.Center}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
