package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"dealflip/internal/domain"
	"dealflip/internal/repos"
)

var ErrItemNotFound = errors.New("inventory item not found")

type SalesService struct {
	Sales *repos.SalesRepo
	Inv   *repos.InventoryRepo
}

func NewSalesService(sales *repos.SalesRepo, inv *repos.InventoryRepo) *SalesService {
	return &SalesService{Sales: sales, Inv: inv}
}

// Record inserts the sales record and flips the linked inventory item to
// "sold" in one transaction; a failure on either side leaves neither write.
// A nil profit means the caller did not supply one and it is computed as
// salePrice - purchasePrice - fees - shipping. An explicit zero is kept.
func (s *SalesService) Record(rec *domain.SalesRecord, profit *float64) (*domain.SalesRecord, error) {
	item, err := s.Inv.Get(rec.InventoryItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.UserID == "" {
		rec.UserID = item.UserID
	}
	if profit != nil {
		rec.Profit = *profit
	} else {
		rec.Profit = rec.SalePrice - item.PurchasePrice - rec.Fees - rec.ShippingCost
	}

	tx, err := s.Sales.DB().Beginx()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.Sales.CreateTx(tx, rec); err != nil {
		return nil, err
	}
	ok, err := s.Inv.MarkStatusTx(tx, item.ID, "sold")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrItemNotFound
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.Sales.Get(rec.ID)
}
