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
	"github.com/smallbiznis/aurum/internal/customer/domain"
	"github.com/smallbiznis/aurum/internal/customer/repository"
	"github.com/smallbiznis/aurum/internal/staffctx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupCustomerService(t *testing.T) domain.Service {
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
	if err := db.AutoMigrate(&domain.Customer{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	fakeClock := clock.NewFakeClock(time.Date(2025, 1, 15, 11, 30, 0, 0, time.UTC))

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: fakeClock,
		Repo:  repository.Provide(),
	})
}

func TestCustomerLifecycle(t *testing.T) {
	svc := setupCustomerService(t)
	ctx := staffctx.WithStaffID(context.Background(), 7)

	created, err := svc.Create(ctx, domain.CreateCustomerRequest{
		Name:  "Meena",
		Phone: "9876543210",
		City:  "Chennai",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, domain.UpdateCustomerRequest{
		ID: created.ID.String(),
		CreateCustomerRequest: domain.CreateCustomerRequest{
			Name:  "Meena R",
			Phone: "9876543210",
			City:  "Chennai",
			GSTIN: "33BBBBB1111B2Z6",
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Meena R" || updated.GSTIN == "" {
		t.Fatalf("updated = %+v", updated)
	}

	loaded, err := svc.GetByID(ctx, domain.GetCustomerRequest{ID: created.ID.String()})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Name != "Meena R" {
		t.Fatalf("loaded name = %s", loaded.Name)
	}

	if err := svc.Delete(ctx, created.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, domain.GetCustomerRequest{ID: created.ID.String()}); err != domain.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCustomerSearchByNameAndPhone(t *testing.T) {
	svc := setupCustomerService(t)
	ctx := staffctx.WithStaffID(context.Background(), 7)

	seed := []domain.CreateCustomerRequest{
		{Name: "Meena", Phone: "9876543210", City: "Chennai"},
		{Name: "Ravi", Phone: "9000011111", City: "Madurai"},
		{Name: "Lakshmi", Phone: "9876500000", City: "Chennai"},
	}
	for _, req := range seed {
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("seed %s: %v", req.Name, err)
		}
	}

	byPhone, err := svc.List(ctx, domain.ListCustomerRequest{Page: 1, Search: "98765"})
	if err != nil {
		t.Fatalf("list by phone: %v", err)
	}
	if byPhone.TotalRows != 2 {
		t.Fatalf("phone rows = %d", byPhone.TotalRows)
	}

	byName, err := svc.List(ctx, domain.ListCustomerRequest{Page: 1, Search: "ravi"})
	if err != nil {
		t.Fatalf("list by name: %v", err)
	}
	if byName.TotalRows != 1 {
		t.Fatalf("name rows = %d", byName.TotalRows)
	}

	byCity, err := svc.List(ctx, domain.ListCustomerRequest{Page: 1, City: "Chennai"})
	if err != nil {
		t.Fatalf("list by city: %v", err)
	}
	if byCity.TotalRows != 2 {
		t.Fatalf("city rows = %d", byCity.TotalRows)
	}
}

func TestCustomerCreateValidation(t *testing.T) {
	svc := setupCustomerService(t)

	if _, err := svc.Create(context.Background(), domain.CreateCustomerRequest{Name: "X", Phone: "1"}); err != domain.ErrInvalidStaff {
		t.Fatalf("err = %v, want ErrInvalidStaff", err)
	}

	ctx := staffctx.WithStaffID(context.Background(), 7)
	if _, err := svc.Create(ctx, domain.CreateCustomerRequest{Phone: "9876543210"}); err != domain.ErrInvalidName {
		t.Fatalf("err = %v, want ErrInvalidName", err)
	}
	if _, err := svc.Create(ctx, domain.CreateCustomerRequest{Name: "Meena"}); err != domain.ErrInvalidPhone {
		t.Fatalf("err = %v, want ErrInvalidPhone", err)
	}
}
