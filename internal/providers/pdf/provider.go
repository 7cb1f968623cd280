package pdf

import (
	"context"
	"io"

	"go.uber.org/fx"
)

// Module provides the maroto-backed receipt renderer.
var Module = fx.Module("providers.pdf",
	fx.Provide(NewProvider),
)

// Provider renders print-formatted sale receipts.
type Provider interface {
	GenerateReceipt(ctx context.Context, data ReceiptData) (io.Reader, error)
}

// ReceiptItem is one printed line of the item table. Values arrive
// pre-formatted so the renderer stays free of money rules.
type ReceiptItem struct {
	Name    string
	Weight  string
	Rate    string
	Making  string
	Amount  string
	Barcode string
}

// ReceiptData is everything printed on a sale receipt.
type ReceiptData struct {
	ShopName    string
	ShopAddress string
	ShopPhone   string
	GSTIN       string

	BillNo       string
	BillDate     string
	CustomerName string
	SaleType     string

	Items []ReceiptItem

	Subtotal      string
	OldGoldCredit string // blank when no exchange
	Surcharge     string // blank when zero
	Discount      string // blank when zero
	CGST          string
	SGST          string
	GrandTotal    string
	AmountPayable string
	PaymentLines  []string
}
