package services_test

import (
	"errors"
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"dealflip/internal/domain"
	"dealflip/internal/repos"
	"dealflip/internal/services"
)

func newSalesService(t *testing.T) (*services.SalesService, *repos.InventoryRepo, *repos.SalesRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	invRepo := repos.NewInventoryRepo(db)
	salesRepo := repos.NewSalesRepo(db)
	return services.NewSalesService(salesRepo, invRepo), invRepo, salesRepo
}

func seedItem(t *testing.T, inv *repos.InventoryRepo, id string, purchasePrice float64) {
	t.Helper()
	err := inv.Create(&domain.InventoryItem{
		ID:            id,
		UserID:        repos.DemoUserID,
		Title:         "Test Item " + id,
		Category:      "Electronics",
		PurchasePrice: purchasePrice,
		Status:        "in_inventory",
	})
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}
}

func TestRecordSaleFlipsItemAndComputesProfit(t *testing.T) {
	svc, inv, _ := newSalesService(t)
	seedItem(t, inv, "it-1", 80)

	rec, err := svc.Record(&domain.SalesRecord{
		InventoryItemID: "it-1",
		Platform:        "eBay",
		SalePrice:       150,
		Fees:            15,
		ShippingCost:    5,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID == "" {
		t.Fatal("no sale id assigned")
	}
	if rec.UserID != repos.DemoUserID {
		t.Fatalf("user not inherited from item: %q", rec.UserID)
	}
	// 150 - 80 - 15 - 5
	if rec.Profit != 50 {
		t.Fatalf("want profit 50, got %g", rec.Profit)
	}

	item, err := inv.Get("it-1")
	if err != nil {
		t.Fatal(err)
	}
	if item.Status != "sold" {
		t.Fatalf("item not flipped, status=%q", item.Status)
	}
}

func TestRecordSaleKeepsCallerProfit(t *testing.T) {
	svc, inv, _ := newSalesService(t)
	seedItem(t, inv, "it-2", 80)

	profit := 42.0
	rec, err := svc.Record(&domain.SalesRecord{
		InventoryItemID: "it-2",
		SalePrice:       150,
	}, &profit)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Profit != 42 {
		t.Fatalf("caller-supplied profit overwritten: %g", rec.Profit)
	}
}

func TestRecordSaleKeepsExplicitZeroProfit(t *testing.T) {
	svc, inv, _ := newSalesService(t)
	seedItem(t, inv, "it-5", 80)

	// Break-even sale: profit 0 is a statement, not an omission.
	zero := 0.0
	rec, err := svc.Record(&domain.SalesRecord{
		InventoryItemID: "it-5",
		SalePrice:       150,
	}, &zero)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Profit != 0 {
		t.Fatalf("explicit zero profit recomputed to %g", rec.Profit)
	}
}

func TestRecordSaleUnknownItem(t *testing.T) {
	svc, _, sales := newSalesService(t)

	_, err := svc.Record(&domain.SalesRecord{InventoryItemID: "nope", SalePrice: 10}, nil)
	if !errors.Is(err, services.ErrItemNotFound) {
		t.Fatalf("want ErrItemNotFound, got %v", err)
	}
	recs, err := sales.ListByUser(repos.DemoUserID)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Fatalf("sale row written for missing item: %+v", recs)
	}
}

func TestRecordSaleFailureLeavesItemUntouched(t *testing.T) {
	svc, inv, _ := newSalesService(t)
	seedItem(t, inv, "it-3", 80)
	seedItem(t, inv, "it-4", 90)

	first, err := svc.Record(&domain.SalesRecord{InventoryItemID: "it-3", SalePrice: 100}, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Reusing the first sale's id makes the insert fail inside the
	// transaction; the second item's status must survive the rollback.
	_, err = svc.Record(&domain.SalesRecord{ID: first.ID, InventoryItemID: "it-4", SalePrice: 100}, nil)
	if err == nil {
		t.Fatal("duplicate sale id should fail")
	}

	item, err := inv.Get("it-4")
	if err != nil {
		t.Fatal(err)
	}
	if item.Status != "in_inventory" {
		t.Fatalf("rolled-back sale flipped the item: status=%q", item.Status)
	}
}
