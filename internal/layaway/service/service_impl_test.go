package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/aurum/internal/clock"
	"github.com/smallbiznis/aurum/internal/layaway/domain"
	"github.com/smallbiznis/aurum/internal/layaway/repository"
	"github.com/smallbiznis/aurum/internal/staffctx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupLayawayService(t *testing.T) (domain.Service, *snowflake.Node, *clock.FakeClock) {
	t.Helper()

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Plan{}, &domain.Transaction{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	fakeClock := clock.NewFakeClock(time.Date(2025, 1, 15, 11, 30, 0, 0, time.UTC))

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: fakeClock,
		Repo:  repository.Provide(),
	})
	return svc, node, fakeClock
}

func TestRecordPaymentAccumulatesAndCompletes(t *testing.T) {
	svc, node, _ := setupLayawayService(t)
	ctx := staffctx.WithStaffID(context.Background(), 7)

	plan, err := svc.Create(ctx, domain.CreatePlanRequest{
		CustomerID:  node.Generate().String(),
		TotalAmount: 30000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	first, err := svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		PlanID: plan.ID.String(),
		Amount: 10000,
		Method: "cash",
	})
	if err != nil {
		t.Fatalf("first payment: %v", err)
	}
	if first.Plan.PaidAmount != 10000 || first.Plan.Status != domain.PlanStatusOpen {
		t.Fatalf("plan after first = %v/%s", first.Plan.PaidAmount, first.Plan.Status)
	}

	second, err := svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		PlanID:    plan.ID.String(),
		Amount:    20000,
		Method:    "upi",
		Reference: "TXN-99",
	})
	if err != nil {
		t.Fatalf("second payment: %v", err)
	}
	if second.Plan.Status != domain.PlanStatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", second.Plan.Status)
	}
	if len(second.Transactions) != 2 {
		t.Fatalf("transactions = %d", len(second.Transactions))
	}

	// A completed plan takes no further installments.
	_, err = svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		PlanID: plan.ID.String(),
		Amount: 100,
		Method: "cash",
	})
	if err != domain.ErrPlanClosed {
		t.Fatalf("err = %v, want ErrPlanClosed", err)
	}
}

func TestCancelOnlyOpenPlans(t *testing.T) {
	svc, node, _ := setupLayawayService(t)
	ctx := staffctx.WithStaffID(context.Background(), 7)

	plan, err := svc.Create(ctx, domain.CreatePlanRequest{
		CustomerID:  node.Generate().String(),
		TotalAmount: 5000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cancelled, err := svc.Cancel(ctx, plan.ID.String())
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != domain.PlanStatusCancelled {
		t.Fatalf("status = %s", cancelled.Status)
	}

	if _, err := svc.Cancel(ctx, plan.ID.String()); err != domain.ErrPlanClosed {
		t.Fatalf("err = %v, want ErrPlanClosed", err)
	}

	if _, err := svc.RecordPayment(ctx, domain.RecordPaymentRequest{
		PlanID: plan.ID.String(),
		Amount: 100,
		Method: "cash",
	}); err != domain.ErrPlanClosed {
		t.Fatalf("payment err = %v, want ErrPlanClosed", err)
	}
}

func TestCreatePlanValidation(t *testing.T) {
	svc, node, _ := setupLayawayService(t)

	if _, err := svc.Create(context.Background(), domain.CreatePlanRequest{
		CustomerID:  node.Generate().String(),
		TotalAmount: 5000,
	}); err != domain.ErrInvalidStaff {
		t.Fatalf("err = %v, want ErrInvalidStaff", err)
	}

	ctx := staffctx.WithStaffID(context.Background(), 7)
	if _, err := svc.Create(ctx, domain.CreatePlanRequest{
		CustomerID:  node.Generate().String(),
		TotalAmount: 0,
	}); err != domain.ErrInvalidAmount {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}
	if _, err := svc.Create(ctx, domain.CreatePlanRequest{
		CustomerID:  "not-a-number",
		TotalAmount: 5000,
	}); err != domain.ErrInvalidCustomer {
		t.Fatalf("err = %v, want ErrInvalidCustomer", err)
	}
}

func TestListPlansByDateRange(t *testing.T) {
	svc, node, fakeClock := setupLayawayService(t)
	ctx := staffctx.WithStaffID(context.Background(), 7)

	if _, err := svc.Create(ctx, domain.CreatePlanRequest{
		CustomerID:  node.Generate().String(),
		TotalAmount: 5000,
	}); err != nil {
		t.Fatalf("create first: %v", err)
	}

	fakeClock.Advance(48 * time.Hour)
	if _, err := svc.Create(ctx, domain.CreatePlanRequest{
		CustomerID:  node.Generate().String(),
		TotalAmount: 8000,
	}); err != nil {
		t.Fatalf("create second: %v", err)
	}

	from := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 15, 23, 59, 59, 0, time.UTC)
	resp, err := svc.List(ctx, domain.ListPlanRequest{Page: 1, DateFrom: &from, DateTo: &to})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if resp.TotalRows != 1 {
		t.Fatalf("rows = %d, want only the first day's plan", resp.TotalRows)
	}
	if resp.Rows[0].TotalAmount != 5000 {
		t.Fatalf("matched plan total = %v", resp.Rows[0].TotalAmount)
	}
}
