package handlers

import (
	"github.com/jmoiron/sqlx"

	"dealflip/internal/ai"
	"dealflip/internal/repos"
	"dealflip/internal/services"
)

type Deps struct {
	AuthHandler         *AuthHandler
	DealHandler         *DealHandler
	InventoryHandler    *InventoryHandler
	SalesHandler        *SalesHandler
	CompetitorHandler   *CompetitorHandler
	AlertHandler        *AlertHandler
	NotificationHandler *NotificationHandler
	TemplateHandler     *TemplateHandler
	ListingHandler      *ListingHandler
	SourcingHandler     *SourcingHandler
	ReportingHandler    *ReportingHandler
	AIHandler           *AIHandler
}

func NewDeps(db *sqlx.DB, llm ai.Completer) *Deps {
	userRepo := repos.NewUserRepo(db)
	dealRepo := repos.NewDealRepo(db)
	invRepo := repos.NewInventoryRepo(db)
	salesRepo := repos.NewSalesRepo(db)
	compRepo := repos.NewCompetitorRepo(db)
	alertRepo := repos.NewAlertRepo(db)
	notifRepo := repos.NewNotificationRepo(db)
	tmplRepo := repos.NewTemplateRepo(db)
	listRepo := repos.NewListingRepo(db)
	sourcingRepo := repos.NewSourcingRepo(db)
	reportRepo := repos.NewReportingRepo(db)

	authSvc := services.NewAuthService(userRepo)
	salesSvc := services.NewSalesService(salesRepo, invRepo)
	gateway := ai.NewGateway(llm)

	return &Deps{
		AuthHandler:         &AuthHandler{Auth: authSvc},
		DealHandler:         &DealHandler{Deals: dealRepo, Auth: authSvc},
		InventoryHandler:    &InventoryHandler{Inv: invRepo, Auth: authSvc},
		SalesHandler:        &SalesHandler{Sales: salesRepo, Svc: salesSvc},
		CompetitorHandler:   &CompetitorHandler{Prices: compRepo, Auth: authSvc},
		AlertHandler:        &AlertHandler{Alerts: alertRepo, Auth: authSvc},
		NotificationHandler: &NotificationHandler{Notifications: notifRepo, Auth: authSvc},
		TemplateHandler:     &TemplateHandler{Templates: tmplRepo, Auth: authSvc},
		ListingHandler:      &ListingHandler{Listings: listRepo, Auth: authSvc},
		SourcingHandler:     &SourcingHandler{Settings: sourcingRepo},
		ReportingHandler:    &ReportingHandler{Reports: reportRepo},
		AIHandler:           &AIHandler{Gateway: gateway},
	}
}
