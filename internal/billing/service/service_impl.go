package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/aurum/internal/billing/calc"
	"github.com/smallbiznis/aurum/internal/billing/domain"
	"github.com/smallbiznis/aurum/internal/clock"
	"github.com/smallbiznis/aurum/internal/config"
	customerdomain "github.com/smallbiznis/aurum/internal/customer/domain"
	goldratedomain "github.com/smallbiznis/aurum/internal/goldrate/domain"
	"github.com/smallbiznis/aurum/internal/providers/pdf"
	"github.com/smallbiznis/aurum/internal/staffctx"
	"github.com/smallbiznis/aurum/pkg/listing"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Cfg         config.Config
	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Clock       clock.Clock
	Repo        domain.Repository
	CustomerSvc customerdomain.Service
	GoldRateSvc goldratedomain.Service
	PDF         pdf.Provider
}

type Service struct {
	cfg         config.Config
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	clock       clock.Clock
	repo        domain.Repository
	customerSvc customerdomain.Service
	goldRateSvc goldratedomain.Service
	pdf         pdf.Provider
}

func New(p Params) domain.Service {
	return &Service{
		cfg:         p.Cfg,
		db:          p.DB,
		log:         p.Log.Named("billing.service"),
		genID:       p.GenID,
		clock:       p.Clock,
		repo:        p.Repo,
		customerSvc: p.CustomerSvc,
		goldRateSvc: p.GoldRateSvc,
		pdf:         p.PDF,
	}
}

// computation bundles everything the calculator derived for one request.
type computation struct {
	lines     []calc.Line
	oldGold   calc.OldGold
	surcharge calc.Surcharge
	totals    calc.Totals
}

func (s *Service) compute(ctx context.Context, req domain.SaveBillRequest) computation {
	lines := make([]calc.Line, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, calc.NewLine(
			strings.TrimSpace(item.Barcode),
			strings.TrimSpace(item.ItemName),
			item.Weight,
			item.Rate,
			item.MakingCharges,
		))
	}

	var oldGold calc.OldGold
	if req.OldGold != nil {
		oldGold = calc.NewOldGold(req.OldGold.Weight, req.OldGold.Rate, s.dayRate(ctx))
	}

	saleType := calc.SaleType(req.SaleType)
	baseTaxable := calc.Subtotal(lines) - oldGold.Total

	var surcharge calc.Surcharge
	if req.TargetPayable != nil {
		surcharge = calc.SolveSurcharge(baseTaxable, *req.TargetPayable, saleType, req.Surcharge.Weight, req.Surcharge.Rate)
		if surcharge.Total == 0 && *req.TargetPayable > 0 {
			s.log.Debug("target payable below bill base, surcharge clamped to zero",
				zap.Float64("target_payable", *req.TargetPayable),
				zap.Float64("base_taxable", baseTaxable),
			)
		}
	} else {
		surcharge = calc.NewSurcharge(req.Surcharge.Weight, req.Surcharge.Rate)
	}

	totals := calc.Compute(calc.Input{
		Lines:         lines,
		OldGoldTotal:  oldGold.Total,
		Surcharge:     surcharge,
		Discount:      req.Discount,
		SaleType:      saleType,
		TargetPayable: req.TargetPayable,
	})

	return computation{lines: lines, oldGold: oldGold, surcharge: surcharge, totals: totals}
}

// dayRate returns today's gold rate, or 0 when none has been posted yet.
func (s *Service) dayRate(ctx context.Context) float64 {
	rate, err := s.goldRateSvc.Today(ctx)
	if err != nil {
		if !errors.Is(err, goldratedomain.ErrNoRate) {
			s.log.Warn("day rate lookup failed", zap.Error(err))
		}
		return 0
	}
	return rate.RatePerGram
}

func (s *Service) Preview(ctx context.Context, req domain.SaveBillRequest) (domain.PreviewResponse, error) {
	if req.SaleType != domain.SaleTypeGST && req.SaleType != domain.SaleTypeNonGST {
		return domain.PreviewResponse{}, domain.ErrInvalidSaleType
	}

	comp := s.compute(ctx, req)
	return domain.PreviewResponse{
		Totals:    comp.totals,
		Surcharge: comp.surcharge,
		OldGold:   comp.oldGold,
	}, nil
}

func validateSaveRequest(req domain.SaveBillRequest) error {
	if strings.TrimSpace(req.CustomerID) == "" {
		return domain.ErrInvalidCustomer
	}
	if req.SaleType != domain.SaleTypeGST && req.SaleType != domain.SaleTypeNonGST {
		return domain.ErrInvalidSaleType
	}
	if len(req.Items) == 0 {
		return domain.ErrNoItems
	}
	for _, item := range req.Items {
		if item.Weight <= 0 {
			return domain.ErrInvalidWeight
		}
		if item.Rate <= 0 {
			return domain.ErrInvalidRate
		}
		if item.MakingCharges < 0 {
			return domain.ErrInvalidAmount
		}
	}
	if req.OldGold != nil && req.OldGold.Weight < 0 {
		return domain.ErrInvalidWeight
	}
	if req.Discount < 0 {
		return domain.ErrInvalidAmount
	}
	for _, payment := range req.PaymentMethods {
		if payment.Amount < 0 {
			return domain.ErrInvalidAmount
		}
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req domain.SaveBillRequest) (domain.BillDetail, error) {
	staffID, ok := staffctx.StaffIDFromContext(ctx)
	if !ok || staffID == 0 {
		return domain.BillDetail{}, domain.ErrInvalidStaff
	}
	if err := validateSaveRequest(req); err != nil {
		return domain.BillDetail{}, err
	}

	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil || customerID == 0 {
		return domain.BillDetail{}, domain.ErrInvalidCustomer
	}
	if _, err := s.customerSvc.GetByID(ctx, customerdomain.GetCustomerRequest{ID: customerID.String()}); err != nil {
		if errors.Is(err, customerdomain.ErrNotFound) {
			return domain.BillDetail{}, domain.ErrInvalidCustomer
		}
		return domain.BillDetail{}, err
	}

	now := s.clock.Now().UTC()
	bill := domain.Bill{
		ID:         s.genID.Generate(),
		BillNo:     s.nextBillNo(ctx),
		BillDate:   now,
		CustomerID: customerID,
		StaffID:    staffID,
		Status:     domain.BillStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	detail, err := s.persist(ctx, &bill, req)
	if err != nil {
		return domain.BillDetail{}, err
	}

	s.log.Info("bill created",
		zap.String("bill_no", detail.Bill.BillNo),
		zap.String("customer_id", customerID.String()),
		zap.Float64("amount_payable", detail.Bill.AmountPayable),
	)
	return detail, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.SaveBillRequest) (domain.BillDetail, error) {
	staffID, ok := staffctx.StaffIDFromContext(ctx)
	if !ok || staffID == 0 {
		return domain.BillDetail{}, domain.ErrInvalidStaff
	}
	if err := validateSaveRequest(req); err != nil {
		return domain.BillDetail{}, err
	}

	billID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || billID == 0 {
		return domain.BillDetail{}, domain.ErrInvalidID
	}

	existing, _, _, err := s.repo.FindByID(ctx, s.db, billID)
	if err != nil {
		return domain.BillDetail{}, err
	}
	if existing == nil {
		return domain.BillDetail{}, domain.ErrNotFound
	}
	if existing.Status == domain.BillStatusVoid {
		return domain.BillDetail{}, domain.ErrBillVoid
	}

	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil || customerID == 0 {
		return domain.BillDetail{}, domain.ErrInvalidCustomer
	}

	// The number and original date survive an edit; everything else is
	// rebuilt from the submitted state.
	bill := domain.Bill{
		ID:         existing.ID,
		BillNo:     existing.BillNo,
		BillDate:   existing.BillDate,
		CustomerID: customerID,
		StaffID:    staffID,
		Status:     existing.Status,
		CreatedAt:  existing.CreatedAt,
		UpdatedAt:  s.clock.Now().UTC(),
	}

	detail, err := s.persist(ctx, &bill, req)
	if err != nil {
		return domain.BillDetail{}, err
	}

	s.log.Info("bill updated", zap.String("bill_no", detail.Bill.BillNo))
	return detail, nil
}

// persist runs the calculator over the request and writes the aggregate
// atomically through the repository.
func (s *Service) persist(ctx context.Context, bill *domain.Bill, req domain.SaveBillRequest) (domain.BillDetail, error) {
	comp := s.compute(ctx, req)

	bill.SaleType = req.SaleType
	bill.Subtotal = comp.totals.Subtotal
	bill.MCWeight = comp.surcharge.Weight
	bill.MCRate = comp.surcharge.Rate
	bill.MCTotal = comp.surcharge.Total
	bill.Discount = req.Discount
	bill.GSTAmount = comp.totals.GSTAmount
	bill.CGST = comp.totals.CGST
	bill.SGST = comp.totals.SGST
	bill.IGST = comp.totals.IGST
	bill.GrandTotal = comp.totals.GrandTotal
	bill.AmountPayable = comp.totals.AmountPayable

	payments := req.PaymentMethods
	if payments == nil {
		payments = []domain.PaymentMethod{}
	}
	encoded, err := json.Marshal(payments)
	if err != nil {
		return domain.BillDetail{}, err
	}
	bill.PaymentMethods = encoded

	items := make([]domain.BillItem, 0, len(comp.lines))
	for _, line := range comp.lines {
		items = append(items, domain.BillItem{
			ID:            s.genID.Generate(),
			BillID:        bill.ID,
			Barcode:       line.Barcode,
			ItemName:      line.Name,
			Weight:        line.Weight,
			Rate:          line.Rate,
			MakingCharges: line.MakingCharges,
			GSTRate:       0,
			LineTotal:     line.Total,
			CreatedAt:     bill.UpdatedAt,
		})
	}

	var oldGold *domain.OldGoldExchange
	if req.OldGold != nil && comp.oldGold.Total > 0 {
		oldGold = &domain.OldGoldExchange{
			ID:          s.genID.Generate(),
			BillID:      bill.ID,
			Weight:      comp.oldGold.Weight,
			Purity:      strings.TrimSpace(req.OldGold.Purity),
			RatePerGram: comp.oldGold.Rate,
			TotalValue:  comp.oldGold.Total,
			Notes:       domain.EncodeNotes(strings.TrimSpace(req.OldGold.Particulars), strings.TrimSpace(req.OldGold.HSNCode)),
			CreatedAt:   bill.UpdatedAt,
		}
	}

	if err := s.repo.SaveBill(ctx, s.db, bill, items, oldGold); err != nil {
		return domain.BillDetail{}, err
	}

	return domain.BillDetail{Bill: *bill, Items: items, OldGold: oldGold}, nil
}

func (s *Service) Get(ctx context.Context, req domain.GetBillRequest) (domain.BillDetail, error) {
	billID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || billID == 0 {
		return domain.BillDetail{}, domain.ErrInvalidID
	}

	bill, items, oldGold, err := s.repo.FindByID(ctx, s.db, billID)
	if err != nil {
		return domain.BillDetail{}, err
	}
	if bill == nil {
		return domain.BillDetail{}, domain.ErrNotFound
	}

	return domain.BillDetail{Bill: *bill, Items: items, OldGold: oldGold}, nil
}

func (s *Service) List(ctx context.Context, req domain.ListBillRequest) (domain.ListBillResponse, error) {
	bills, err := s.repo.ListAll(ctx, s.db)
	if err != nil {
		return domain.ListBillResponse{}, err
	}

	filtered := listing.Filter(bills,
		listing.Substring(req.BillNo, func(b *domain.Bill) string { return b.BillNo }),
		listing.Equals(func(b *domain.Bill) string { return b.CustomerID.String() }, req.CustomerID),
		listing.Equals(func(b *domain.Bill) string { return string(b.SaleType) }, req.SaleType),
		listing.Equals(func(b *domain.Bill) string { return string(b.Status) }, req.Status),
		listing.DateRange(func(b *domain.Bill) time.Time { return b.BillDate }, req.DateFrom, req.DateTo),
		listing.NumericRange(func(b *domain.Bill) float64 { return b.AmountPayable }, req.AmountMin, req.AmountMax),
	)

	return domain.ListBillResponse{
		Page: listing.Paginate(filtered, req.Page, listing.DefaultPageSize),
	}, nil
}

func (s *Service) Void(ctx context.Context, id string) error {
	staffID, ok := staffctx.StaffIDFromContext(ctx)
	if !ok || staffID == 0 {
		return domain.ErrInvalidStaff
	}

	billID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || billID == 0 {
		return domain.ErrInvalidID
	}

	bill, _, _, err := s.repo.FindByID(ctx, s.db, billID)
	if err != nil {
		return err
	}
	if bill == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.UpdateStatus(ctx, s.db, billID, domain.BillStatusVoid); err != nil {
		return err
	}

	s.log.Info("bill voided", zap.String("bill_no", bill.BillNo))
	return nil
}

func (s *Service) Receipt(ctx context.Context, id string) (io.Reader, error) {
	detail, err := s.Get(ctx, domain.GetBillRequest{ID: id})
	if err != nil {
		return nil, err
	}

	customerName := ""
	customer, err := s.customerSvc.GetByID(ctx, customerdomain.GetCustomerRequest{ID: detail.Bill.CustomerID.String()})
	if err == nil {
		customerName = customer.Name
	}

	return s.pdf.GenerateReceipt(ctx, s.receiptData(detail, customerName))
}

func (s *Service) receiptData(detail domain.BillDetail, customerName string) pdf.ReceiptData {
	bill := detail.Bill

	items := make([]pdf.ReceiptItem, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, pdf.ReceiptItem{
			Name:    item.ItemName,
			Barcode: item.Barcode,
			Weight:  fmt.Sprintf("%.3f", item.Weight),
			Rate:    money(item.Rate),
			Making:  money(item.MakingCharges),
			Amount:  money(item.LineTotal),
		})
	}

	data := pdf.ReceiptData{
		ShopName:      s.cfg.Shop.Name,
		ShopAddress:   s.cfg.Shop.Address,
		ShopPhone:     s.cfg.Shop.Phone,
		BillNo:        bill.BillNo,
		BillDate:      bill.BillDate.Format("02-01-2006"),
		CustomerName:  customerName,
		Items:         items,
		Subtotal:      money(bill.Subtotal),
		GrandTotal:    money(bill.GrandTotal),
		AmountPayable: money(bill.AmountPayable),
	}

	if bill.SaleType == domain.SaleTypeGST {
		data.GSTIN = s.cfg.Shop.GSTIN
		data.SaleType = "GST"
		data.CGST = money(bill.CGST)
		data.SGST = money(bill.SGST)
	} else {
		data.SaleType = "Non-GST"
	}

	if detail.OldGold != nil {
		data.OldGoldCredit = "-" + money(detail.OldGold.TotalValue)
	}
	if bill.MCTotal > 0 {
		data.Surcharge = money(bill.MCTotal)
	}
	if bill.Discount > 0 {
		data.Discount = money(bill.Discount)
	}

	var payments []domain.PaymentMethod
	if len(bill.PaymentMethods) > 0 {
		if err := json.Unmarshal(bill.PaymentMethods, &payments); err != nil {
			s.log.Warn("payment methods decode failed", zap.String("bill_no", bill.BillNo), zap.Error(err))
		}
	}
	for _, payment := range payments {
		line := fmt.Sprintf("Paid by %s: %s", payment.Type, money(payment.Amount))
		if payment.Reference != "" {
			line += " (ref " + payment.Reference + ")"
		}
		data.PaymentLines = append(data.PaymentLines, line)
	}

	return data
}

func money(v float64) string {
	return fmt.Sprintf("Rs %.2f", v)
}
