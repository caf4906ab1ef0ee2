package handlers_test

import (
	"net/http"
	"testing"

	"dealflip/internal/domain"
	"dealflip/internal/repos"
)

func TestDealCreateEchoesRow(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/api/deals", map[string]any{
		"title":         "Sony WH-1000XM4",
		"source":        "Facebook Marketplace",
		"originalPrice": 349.99,
		"currentPrice":  180,
		"matchScore":    140, // clamped to 100
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}
	var deal domain.Deal
	decodeBody(t, resp, &deal)

	if deal.ID == "" {
		t.Fatal("no id assigned")
	}
	if deal.UserID != repos.DemoUserID {
		t.Fatalf("user not defaulted to principal: %q", deal.UserID)
	}
	if deal.Status != "active" {
		t.Fatalf("status not defaulted: %q", deal.Status)
	}
	if deal.MatchScore != 100 {
		t.Fatalf("match score not clamped: %d", deal.MatchScore)
	}
	if deal.CreatedAt == "" || deal.UpdatedAt == "" {
		t.Fatalf("timestamps missing: %+v", deal)
	}

	// Row must be readable back at its new location.
	resp2 := doJSON(t, app, "GET", "/api/deals/"+deal.ID, nil)
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("readback want 200, got %d", resp2.StatusCode)
	}
}

func TestDealCreateValidation(t *testing.T) {
	app, _ := newTestApp(t, nil)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{"currentPrice": 10}},
		{"blank title", map[string]any{"title": "   ", "currentPrice": 10}},
		{"negative price", map[string]any{"title": "X", "currentPrice": -5}},
		{"bad status", map[string]any{"title": "X", "currentPrice": 10, "status": "archived"}},
	}
	for _, tc := range cases {
		resp := doJSON(t, app, "POST", "/api/deals", tc.body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d", tc.name, resp.StatusCode)
		}
	}
}

func TestDealPatchIsPartial(t *testing.T) {
	app, _ := newTestApp(t, nil)

	// Seeded deal: current_price 65, status active.
	resp := doJSON(t, app, "PATCH", "/api/deals/deal-pegasus", map[string]any{
		"status": "tracked",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var deal domain.Deal
	decodeBody(t, resp, &deal)

	if deal.Status != "tracked" {
		t.Fatalf("status not updated: %q", deal.Status)
	}
	if deal.CurrentPrice != 65 || deal.Title != "Nike Air Zoom Pegasus 38" {
		t.Fatalf("untouched fields changed: %+v", deal)
	}
}

func TestDealPatchRefreshesUpdatedAt(t *testing.T) {
	app, db := newTestApp(t, nil)
	db.MustExec(`UPDATE deals SET updated_at = '2000-01-01 00:00:00' WHERE id = 'deal-pegasus'`)

	resp := doJSON(t, app, "PATCH", "/api/deals/deal-pegasus", map[string]any{
		"description": "price dropped again",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var deal domain.Deal
	decodeBody(t, resp, &deal)
	if deal.UpdatedAt == "2000-01-01 00:00:00" {
		t.Fatal("updatedAt not refreshed by patch")
	}
	if deal.UpdatedAt == "" {
		t.Fatal("updatedAt missing after patch")
	}
}

func TestDealPatchRejectsBadStatus(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "PATCH", "/api/deals/deal-pegasus", map[string]any{"status": "gone"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}

func TestDealDelete(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "DELETE", "/api/deals/deal-chair", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("want 204, got %d", resp.StatusCode)
	}
	// A second delete finds nothing.
	resp2 := doJSON(t, app, "DELETE", "/api/deals/deal-chair", nil)
	if resp2.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp2.StatusCode)
	}
	resp3 := doJSON(t, app, "GET", "/api/deals/deal-chair", nil)
	if resp3.StatusCode != http.StatusNotFound {
		t.Fatalf("deleted deal still readable: %d", resp3.StatusCode)
	}
}

func TestDealListScopedToUser(t *testing.T) {
	app, _ := newTestApp(t, nil)

	var mine []domain.Deal
	resp := doJSON(t, app, "GET", "/api/deals/user/"+repos.DemoUserID, nil)
	decodeBody(t, resp, &mine)
	if len(mine) != 3 {
		t.Fatalf("want 3 seeded deals, got %d", len(mine))
	}

	var theirs []domain.Deal
	resp2 := doJSON(t, app, "GET", "/api/deals/user/someone-else", nil)
	decodeBody(t, resp2, &theirs)
	if len(theirs) != 0 {
		t.Fatalf("foreign user sees %d deals", len(theirs))
	}
}
