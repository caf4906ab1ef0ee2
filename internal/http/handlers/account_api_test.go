package handlers_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"dealflip/internal/domain"
	"dealflip/internal/repos"
)

func TestAuthUserStripsHash(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "GET", "/api/auth/user", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	if !strings.Contains(s, `"username":"alex"`) {
		t.Fatalf("principal missing from body: %s", s)
	}
	if strings.Contains(s, "password") || strings.Contains(s, "$2a$") || strings.Contains(s, "$2b$") {
		t.Fatalf("hash leaked: %s", s)
	}
}

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/api/auth/login", map[string]any{
		"username": "alex", "password": "Passw0rd!",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	resp2 := doJSON(t, app, "POST", "/api/auth/login", map[string]any{
		"username": "alex", "password": "wrong",
	})
	if resp2.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", resp2.StatusCode)
	}

	resp3 := doJSON(t, app, "POST", "/api/auth/login", map[string]any{"username": "alex"})
	if resp3.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp3.StatusCode)
	}
}

func TestSourcingSettingsUpsert(t *testing.T) {
	app, _ := newTestApp(t, nil)
	path := "/api/sourcing-settings/user/" + repos.DemoUserID

	// Never saved: defaults, not 404.
	resp := doJSON(t, app, "GET", path, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var s domain.SourcingSetting
	decodeBody(t, resp, &s)
	if s.UserID != repos.DemoUserID || s.MinProfit != 0 {
		t.Fatalf("bad defaults: %+v", s)
	}

	put := map[string]any{
		"categories":    []string{"Sneakers"},
		"minProfit":     40,
		"minMatchScore": 85,
		"sources":       []string{"Facebook Marketplace"},
		"autoAnalyze":   true,
	}
	resp2 := doJSON(t, app, "PUT", path, put)
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp2.StatusCode)
	}

	// Second PUT replaces the single row.
	put["minProfit"] = 60
	resp3 := doJSON(t, app, "PUT", path, put)
	if resp3.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp3.StatusCode)
	}
	var saved domain.SourcingSetting
	decodeBody(t, resp3, &saved)
	if saved.MinProfit != 60 || !saved.AutoAnalyze || len(saved.Categories) != 1 {
		t.Fatalf("upsert did not stick: %+v", saved)
	}

	resp4 := doJSON(t, app, "PUT", path, map[string]any{"minProfit": -1})
	if resp4.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative minProfit: want 400, got %d", resp4.StatusCode)
	}
}

func TestNotificationReadFlag(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/api/notifications", map[string]any{
		"title":   "Deal matched",
		"body":    "A tracked search matched a new deal",
		"type":    "deal_alert",
		"payload": map[string]any{"dealId": "deal-pegasus"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}
	var n domain.Notification
	decodeBody(t, resp, &n)
	if n.Read {
		t.Fatal("new notification should be unread")
	}
	if !strings.Contains(string(n.Payload), "deal-pegasus") {
		t.Fatalf("payload not carried through: %s", n.Payload)
	}

	resp2 := doJSON(t, app, "PATCH", "/api/notifications/"+n.ID+"/read", nil)
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp2.StatusCode)
	}
	var read domain.Notification
	decodeBody(t, resp2, &read)
	if !read.Read {
		t.Fatal("read flag not flipped")
	}
	if read.Title != "Deal matched" {
		t.Fatalf("other fields changed: %+v", read)
	}

	resp3 := doJSON(t, app, "PATCH", "/api/notifications/no-such/read", nil)
	if resp3.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp3.StatusCode)
	}
}

func TestReportingEndpoints(t *testing.T) {
	app, db := newTestApp(t, nil)
	reports := repos.NewReportingRepo(db)

	// A stat written for another tenant must not bleed into the demo user's
	// dashboard, and vice versa.
	if err := (repos.NewUserRepo(db)).Create(&domain.User{
		ID: "someone-else", Username: "someone-else", Hash: "x",
	}); err != nil {
		t.Fatal(err)
	}
	err := reports.CreateStat(&domain.Stat{
		ID: "stat-other", UserID: "someone-else", Name: "Active Deals", Value: 7,
	})
	if err != nil {
		t.Fatal(err)
	}

	var stats []domain.Stat
	resp := doJSON(t, app, "GET", "/api/stats/user/"+repos.DemoUserID, nil)
	decodeBody(t, resp, &stats)
	if len(stats) != 4 {
		t.Fatalf("want 4 seeded stats, got %d", len(stats))
	}

	var foreign []domain.Stat
	resp2 := doJSON(t, app, "GET", "/api/stats/user/someone-else", nil)
	decodeBody(t, resp2, &foreign)
	if len(foreign) != 1 || foreign[0].ID != "stat-other" {
		t.Fatalf("foreign user stats wrong: %+v", foreign)
	}

	err = reports.CreateMarketInsight(&domain.MarketInsight{
		ID: "mi-apparel", Title: "Outerwear season starting",
		ChangePercentage: 5.5, IconType: "trend-up", ColorType: "gold",
	})
	if err != nil {
		t.Fatal(err)
	}
	var insights []domain.MarketInsight
	resp3 := doJSON(t, app, "GET", "/api/market-insights", nil)
	decodeBody(t, resp3, &insights)
	if len(insights) != 4 {
		t.Fatalf("want 3 seeded + 1 created insights, got %d", len(insights))
	}

	// A date past any seeded row, so ordering puts it last.
	err = reports.AddPricePoint(&domain.PricePoint{
		ID: "ph-aj1-new", ProductID: "nike-air-jordan-1-retro", Date: "2999-01-01", Price: 212,
	})
	if err != nil {
		t.Fatal(err)
	}
	var history []domain.PricePoint
	resp4 := doJSON(t, app, "GET", "/api/price-history/nike-air-jordan-1-retro", nil)
	decodeBody(t, resp4, &history)
	if len(history) != 32 {
		t.Fatalf("want 31 seeded + 1 added price points, got %d", len(history))
	}
	if last := history[len(history)-1]; last.Date != "2999-01-01" || last.Price != 212 {
		t.Fatalf("added point not ordered by date: %+v", last)
	}

	var empty []domain.PricePoint
	resp5 := doJSON(t, app, "GET", "/api/price-history/unknown-product", nil)
	decodeBody(t, resp5, &empty)
	if len(empty) != 0 {
		t.Fatalf("unknown product has %d points", len(empty))
	}
}
