package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	billingrepo "github.com/smallbiznis/aurum/internal/billing/repository"
	billingservice "github.com/smallbiznis/aurum/internal/billing/service"
	bookingrepo "github.com/smallbiznis/aurum/internal/booking/repository"
	bookingservice "github.com/smallbiznis/aurum/internal/booking/service"
	"github.com/smallbiznis/aurum/internal/clock"
	"github.com/smallbiznis/aurum/internal/config"
	customerrepo "github.com/smallbiznis/aurum/internal/customer/repository"
	customerservice "github.com/smallbiznis/aurum/internal/customer/service"
	goldraterepo "github.com/smallbiznis/aurum/internal/goldrate/repository"
	goldrateservice "github.com/smallbiznis/aurum/internal/goldrate/service"
	inventoryrepo "github.com/smallbiznis/aurum/internal/inventory/repository"
	inventoryservice "github.com/smallbiznis/aurum/internal/inventory/service"
	layawayrepo "github.com/smallbiznis/aurum/internal/layaway/repository"
	layawayservice "github.com/smallbiznis/aurum/internal/layaway/service"
	"github.com/smallbiznis/aurum/internal/migration"
	obsmetrics "github.com/smallbiznis/aurum/internal/observability/metrics"
	"github.com/smallbiznis/aurum/internal/providers/pdf"
	"github.com/smallbiznis/aurum/internal/server"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	fakeNow  *clock.FakeClock
	baseURL  string
	httpSrv  *httptest.Server
	shutdown func()
}

var env *testEnv

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	var err error
	env, err = startEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to start test environment:", err)
		os.Exit(1)
	}

	code := m.Run()
	env.shutdown()
	os.Exit(code)
}

func startEnv() (*testEnv, error) {
	db, err := gorm.Open(sqlite.Open("file:e2e?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := migration.RunMigrations(sqlDB, "sqlite"); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}

	cfg := config.Config{
		AppName:    "aurum",
		ListenAddr: ":0",
		Shop: config.ShopConfig{
			Name:      "Aurum Jewellers",
			Address:   "12 Bazaar St, Chennai",
			Phone:     "044-1234567",
			GSTIN:     "33AAAAA0000A1Z5",
			StateCode: "33",
		},
	}

	log := zap.NewNop()
	fakeNow := clock.NewFakeClock(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))

	customerSvc := customerservice.New(customerservice.Params{
		DB: db, Log: log, GenID: node, Clock: fakeNow, Repo: customerrepo.Provide(),
	})
	inventorySvc := inventoryservice.New(inventoryservice.Params{
		DB: db, Log: log, GenID: node, Clock: fakeNow, Repo: inventoryrepo.Provide(),
	})
	goldRateSvc := goldrateservice.New(goldrateservice.Params{
		DB: db, Log: log, GenID: node, Clock: fakeNow, Repo: goldraterepo.Provide(),
	})
	billingSvc := billingservice.New(billingservice.Params{
		Cfg: cfg, DB: db, Log: log, GenID: node, Clock: fakeNow,
		Repo:        billingrepo.Provide(),
		CustomerSvc: customerSvc,
		GoldRateSvc: goldRateSvc,
		PDF:         pdf.NewProvider(),
	})
	bookingSvc := bookingservice.New(bookingservice.Params{
		DB: db, Log: log, GenID: node, Clock: fakeNow, Repo: bookingrepo.Provide(),
	})
	layawaySvc := layawayservice.New(layawayservice.Params{
		DB: db, Log: log, GenID: node, Clock: fakeNow, Repo: layawayrepo.Provide(),
	})

	metrics, err := obsmetrics.New()
	if err != nil {
		return nil, err
	}

	engine := server.NewEngine(log, metrics)
	srv := server.NewServer(server.ServerParams{
		Gin:          engine,
		Cfg:          cfg,
		CustomerSvc:  customerSvc,
		InventorySvc: inventorySvc,
		GoldRateSvc:  goldRateSvc,
		BillingSvc:   billingSvc,
		BookingSvc:   bookingSvc,
		LayawaySvc:   layawaySvc,
		Metrics:      metrics,
	})

	httpSrv := httptest.NewServer(srv.Engine())
	return &testEnv{
		db:      db,
		fakeNow: fakeNow,
		baseURL: httpSrv.URL,
		httpSrv: httpSrv,
		shutdown: func() {
			httpSrv.Close()
			_ = sqlDB.Close()
		},
	}, nil
}

func resetDatabase(t *testing.T, db *gorm.DB) {
	t.Helper()
	tables := []string{
		"layaway_transactions", "layaway_plans", "advance_bookings",
		"old_gold_exchanges", "bill_items", "bills",
		"gold_rates", "items", "customers",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("reset %s: %v", table, err)
		}
	}
}

func doJSON(t *testing.T, method, url string, payload any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, data
}

func staffHeaders() map[string]string {
	return map[string]string{"X-Staff-Id": "42"}
}

func dataField(t *testing.T, body []byte, path ...string) map[string]any {
	t.Helper()

	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("decode body %q: %v", string(body), err)
	}
	node, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("no data object in %s", string(body))
	}
	for _, key := range path {
		node, ok = node[key].(map[string]any)
		if !ok {
			t.Fatalf("no %s object in %s", key, string(body))
		}
	}
	return node
}

func TestE2E_HealthCheck(t *testing.T) {
	resp, err := http.Get(env.baseURL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
}

func TestE2E_MutationsRequireStaffHeader(t *testing.T) {
	resetDatabase(t, env.db)

	resp, body := doJSON(t, http.MethodPost, env.baseURL+"/api/v1/customers", map[string]any{
		"name":  "Meena",
		"phone": "9876543210",
	}, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without staff header, got %d: %s", resp.StatusCode, string(body))
	}
}

func TestE2E_FullSaleFlow(t *testing.T) {
	resetDatabase(t, env.db)

	// Register the walk-in customer.
	resp, body := doJSON(t, http.MethodPost, env.baseURL+"/api/v1/customers", map[string]any{
		"name":  "Meena",
		"phone": "9876543210",
		"city":  "Chennai",
	}, staffHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create customer: %d %s", resp.StatusCode, string(body))
	}
	customerID := dataField(t, body)["id"].(string)

	// Stock the article and post today's rate.
	resp, body = doJSON(t, http.MethodPost, env.baseURL+"/api/v1/items", map[string]any{
		"barcode":        "BR-1001",
		"name":           "Gold Chain",
		"category":       "chain",
		"weight":         10.0,
		"purity":         "22K",
		"making_charges": 0.0,
		"hsn_code":       "7113",
	}, staffHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create item: %d %s", resp.StatusCode, string(body))
	}

	resp, body = doJSON(t, http.MethodPost, env.baseURL+"/api/v1/gold-rates", map[string]any{
		"rate_per_gram": 6441.27,
	}, staffHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("post gold rate: %d %s", resp.StatusCode, string(body))
	}

	// Scan resolves the stocked article.
	resp, body = doJSON(t, http.MethodGet, env.baseURL+"/api/v1/items/barcode/BR-1001", nil, staffHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("barcode lookup: %d %s", resp.StatusCode, string(body))
	}
	if found := dataField(t, body)["found"]; found != true {
		t.Fatalf("barcode lookup miss: %s", string(body))
	}

	// Preview, then bill the sale.
	saleReq := map[string]any{
		"customer_id": customerID,
		"sale_type":   "gst",
		"items": []map[string]any{
			{"barcode": "BR-1001", "item_name": "Gold Chain", "weight": 10.0, "rate": 1000.0},
		},
		"payments": []map[string]any{
			{"type": "cash", "amount": 10300.0},
		},
	}

	resp, body = doJSON(t, http.MethodPost, env.baseURL+"/api/v1/bills/preview", saleReq, staffHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("preview: %d %s", resp.StatusCode, string(body))
	}
	if grand := dataField(t, body, "totals")["grand_total"]; grand != 10300.0 {
		t.Fatalf("preview grand total = %v", grand)
	}

	resp, body = doJSON(t, http.MethodPost, env.baseURL+"/api/v1/bills", saleReq, staffHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create bill: %d %s", resp.StatusCode, string(body))
	}
	bill := dataField(t, body, "bill")
	billID := bill["id"].(string)
	if bill["bill_no"] != "SALE-20250115-0001" {
		t.Fatalf("bill no = %v", bill["bill_no"])
	}
	if bill["amount_payable"] != 10300.0 {
		t.Fatalf("amount payable = %v", bill["amount_payable"])
	}

	// The list screen finds it by number.
	resp, body = doJSON(t, http.MethodGet, env.baseURL+"/api/v1/bills?bill_no=SALE-20250115", nil, staffHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list bills: %d %s", resp.StatusCode, string(body))
	}
	if rows := dataField(t, body)["total_rows"]; rows != 1.0 {
		t.Fatalf("list rows = %v", rows)
	}

	// A single-day range covers bills stamped any time that day.
	resp, body = doJSON(t, http.MethodGet, env.baseURL+"/api/v1/bills?date_from=2025-01-15&date_to=2025-01-15", nil, staffHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list bills by date: %d %s", resp.StatusCode, string(body))
	}
	if rows := dataField(t, body)["total_rows"]; rows != 1.0 {
		t.Fatalf("same-day range rows = %v", rows)
	}

	// The printed receipt is a real PDF document.
	req, _ := http.NewRequest(http.MethodGet, env.baseURL+"/api/v1/bills/"+billID+"/receipt", nil)
	req.Header.Set("X-Staff-Id", "42")
	receiptResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("receipt: %v", err)
	}
	defer receiptResp.Body.Close()
	if receiptResp.StatusCode != http.StatusOK {
		t.Fatalf("receipt status = %d", receiptResp.StatusCode)
	}
	if ct := receiptResp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("receipt content type = %s", ct)
	}
	pdfBytes, _ := io.ReadAll(receiptResp.Body)
	if !strings.HasPrefix(string(pdfBytes), "%PDF") {
		t.Fatalf("receipt is not a pdf (%d bytes)", len(pdfBytes))
	}

	// Void closes the bill to edits.
	resp, body = doJSON(t, http.MethodPost, env.baseURL+"/api/v1/bills/"+billID+"/void", nil, staffHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("void: %d %s", resp.StatusCode, string(body))
	}

	resp, body = doJSON(t, http.MethodPut, env.baseURL+"/api/v1/bills/"+billID, saleReq, staffHeaders())
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("edit of void bill: %d %s", resp.StatusCode, string(body))
	}
}

func TestE2E_BookingAndLayaway(t *testing.T) {
	resetDatabase(t, env.db)

	resp, body := doJSON(t, http.MethodPost, env.baseURL+"/api/v1/customers", map[string]any{
		"name":  "Ravi",
		"phone": "9000011111",
	}, staffHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create customer: %d %s", resp.StatusCode, string(body))
	}
	customerID := dataField(t, body)["id"].(string)

	resp, body = doJSON(t, http.MethodPost, env.baseURL+"/api/v1/bookings", map[string]any{
		"customer_id":      customerID,
		"description":      "Bridal necklace set",
		"estimated_amount": 150000.0,
		"advance_paid":     50000.0,
		"expected_date":    "2025-03-01",
	}, staffHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create booking: %d %s", resp.StatusCode, string(body))
	}
	bookingID := dataField(t, body)["id"].(string)

	resp, body = doJSON(t, http.MethodPost, env.baseURL+"/api/v1/bookings/"+bookingID+"/status", map[string]any{
		"status": "delivered",
	}, staffHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("deliver booking: %d %s", resp.StatusCode, string(body))
	}
	if status := dataField(t, body)["status"]; status != "DELIVERED" {
		t.Fatalf("booking status = %v", status)
	}

	resp, body = doJSON(t, http.MethodPost, env.baseURL+"/api/v1/layaways", map[string]any{
		"customer_id":  customerID,
		"total_amount": 30000.0,
	}, staffHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create layaway: %d %s", resp.StatusCode, string(body))
	}
	planID := dataField(t, body)["id"].(string)

	resp, body = doJSON(t, http.MethodPost, env.baseURL+"/api/v1/layaways/"+planID+"/payments", map[string]any{
		"amount": 30000.0,
		"method": "upi",
	}, staffHeaders())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("layaway payment: %d %s", resp.StatusCode, string(body))
	}
	if status := dataField(t, body, "plan")["status"]; status != "COMPLETED" {
		t.Fatalf("plan status = %v", status)
	}
}
