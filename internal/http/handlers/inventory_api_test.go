package handlers_test

import (
	"net/http"
	"testing"

	"dealflip/internal/domain"
	"dealflip/internal/repos"
)

func TestInventoryCreateRoundTripsTags(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/api/inventory", map[string]any{
		"title":         "Sega Dreamcast",
		"category":      "Gaming",
		"purchasePrice": 55,
		"tags":          []string{"sega", "console", "retro"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}
	var item domain.InventoryItem
	decodeBody(t, resp, &item)

	if item.Status != "in_inventory" {
		t.Fatalf("status not defaulted: %q", item.Status)
	}
	if len(item.Tags) != 3 || item.Tags[0] != "sega" {
		t.Fatalf("tags not round-tripped: %+v", item.Tags)
	}

	resp2 := doJSON(t, app, "GET", "/api/inventory/"+item.ID, nil)
	var back domain.InventoryItem
	decodeBody(t, resp2, &back)
	if len(back.Tags) != 3 {
		t.Fatalf("tags lost on read: %+v", back.Tags)
	}
}

func TestInventoryCreateValidation(t *testing.T) {
	app, _ := newTestApp(t, nil)

	cases := []map[string]any{
		{"category": "Gaming"},                                    // no title
		{"title": "X"},                                            // no category
		{"title": "X", "category": "Gaming", "purchasePrice": -1}, // negative price
		{"title": "X", "category": "Gaming", "status": "lost"},    // bad status
	}
	for i, body := range cases {
		resp := doJSON(t, app, "POST", "/api/inventory", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("case %d: want 400, got %d", i, resp.StatusCode)
		}
	}
}

func TestInventoryPatchIsPartial(t *testing.T) {
	app, _ := newTestApp(t, nil)

	// Seeded item: purchase_price 35, status in_inventory.
	resp := doJSON(t, app, "PATCH", "/api/inventory/inv-lamp", map[string]any{
		"status": "listed",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var item domain.InventoryItem
	decodeBody(t, resp, &item)
	if item.Status != "listed" {
		t.Fatalf("status not updated: %q", item.Status)
	}
	if item.PurchasePrice != 35 || item.Title != "Brass Desk Lamp" {
		t.Fatalf("untouched fields changed: %+v", item)
	}
	if len(item.Tags) != 2 {
		t.Fatalf("tags dropped by patch: %+v", item.Tags)
	}
}

func TestInventoryPatchRefreshesUpdatedAt(t *testing.T) {
	app, db := newTestApp(t, nil)
	db.MustExec(`UPDATE inventory_items SET updated_at = '2000-01-01 00:00:00' WHERE id = 'inv-ipad'`)

	resp := doJSON(t, app, "PATCH", "/api/inventory/inv-ipad", map[string]any{
		"estimatedValue": 410,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var item domain.InventoryItem
	decodeBody(t, resp, &item)
	if item.UpdatedAt == "2000-01-01 00:00:00" || item.UpdatedAt == "" {
		t.Fatalf("updatedAt not refreshed: %q", item.UpdatedAt)
	}
}

func TestInventoryScopedToUser(t *testing.T) {
	app, _ := newTestApp(t, nil)

	var mine []domain.InventoryItem
	resp := doJSON(t, app, "GET", "/api/inventory/user/"+repos.DemoUserID, nil)
	decodeBody(t, resp, &mine)
	if len(mine) != 4 {
		t.Fatalf("want 4 seeded items, got %d", len(mine))
	}

	var theirs []domain.InventoryItem
	resp2 := doJSON(t, app, "GET", "/api/inventory/user/someone-else", nil)
	decodeBody(t, resp2, &theirs)
	if len(theirs) != 0 {
		t.Fatalf("foreign user sees %d items", len(theirs))
	}
}

func TestInventoryDelete(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "DELETE", "/api/inventory/inv-parka", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("want 204, got %d", resp.StatusCode)
	}
	resp2 := doJSON(t, app, "DELETE", "/api/inventory/inv-parka", nil)
	if resp2.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp2.StatusCode)
	}
}
