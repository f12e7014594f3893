package movements_test

import (
	"context"
	"time"

	"github.com/serodominguez/waresoft-api/internal/domain/entity"
	"github.com/serodominguez/waresoft-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Base de datos en memoria para los tests de flujos. El fakeTxRunner toma un
// snapshot antes de cada callback y lo restaura si falla, de modo que la
// atomicidad (rollback deshace cabecera, líneas y mutaciones de stock) se
// verifica de verdad y no por convención.
// ──────────────────────────────────────────────────────────────────────────────

type stockKey struct {
	storeID   int64
	productID int64
}

type memDB struct {
	seqs      map[string]*entity.Sequence
	stocks    map[stockKey]*entity.Stock
	receipts  map[int64]*entity.GoodsReceipt
	issues    map[int64]*entity.GoodsIssue
	transfers map[int64]*entity.Transfer
	users     map[int64]*entity.User
	nextID    int64
}

func newMemDB() *memDB {
	return &memDB{
		seqs:      make(map[string]*entity.Sequence),
		stocks:    make(map[stockKey]*entity.Stock),
		receipts:  make(map[int64]*entity.GoodsReceipt),
		issues:    make(map[int64]*entity.GoodsIssue),
		transfers: make(map[int64]*entity.Transfer),
		users:     make(map[int64]*entity.User),
	}
}

func (db *memDB) clone() *memDB {
	c := newMemDB()
	c.nextID = db.nextID
	for k, v := range db.seqs {
		cp := *v
		c.seqs[k] = &cp
	}
	for k, v := range db.stocks {
		cp := *v
		c.stocks[k] = &cp
	}
	for k, v := range db.receipts {
		cp := *v
		cp.Details = append([]entity.GoodsReceiptDetail(nil), v.Details...)
		c.receipts[k] = &cp
	}
	for k, v := range db.issues {
		cp := *v
		cp.Details = append([]entity.GoodsIssueDetail(nil), v.Details...)
		c.issues[k] = &cp
	}
	for k, v := range db.transfers {
		cp := *v
		cp.Details = append([]entity.TransferDetail(nil), v.Details...)
		c.transfers[k] = &cp
	}
	for k, v := range db.users {
		cp := *v
		c.users[k] = &cp
	}
	return c
}

func (db *memDB) restore(snap *memDB) {
	db.seqs = snap.seqs
	db.stocks = snap.stocks
	db.receipts = snap.receipts
	db.issues = snap.issues
	db.transfers = snap.transfers
	db.users = snap.users
	db.nextID = snap.nextID
}

func (db *memDB) seedStock(storeID, productID, available, inTransit int64) {
	db.stocks[stockKey{storeID, productID}] = &entity.Stock{
		StoreID:   storeID,
		ProductID: productID,
		Available: available,
		InTransit: inTransit,
		UnitPrice: decimal.Zero,
		UpdatedAt: time.Now(),
	}
}

func (db *memDB) stockAt(storeID, productID int64) *entity.Stock {
	return db.stocks[stockKey{storeID, productID}]
}

// ── Repositorios fake ─────────────────────────────────────────────────────────

type fakeSeqRepo struct{ db *memDB }

func (r *fakeSeqRepo) GetForUpdate(name string) (*entity.Sequence, error) {
	s, ok := r.db.seqs[name]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSeqRepo) Create(seq *entity.Sequence) error {
	cp := *seq
	r.db.seqs[seq.Name] = &cp
	return nil
}

func (r *fakeSeqRepo) Update(seq *entity.Sequence) error {
	cp := *seq
	r.db.seqs[seq.Name] = &cp
	return nil
}

type fakeStockRepo struct{ db *memDB }

func (r *fakeStockRepo) Get(storeID, productID int64) (*entity.Stock, error) {
	s, ok := r.db.stocks[stockKey{storeID, productID}]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStockRepo) GetForUpdate(storeID, productID int64) (*entity.Stock, error) {
	return r.Get(storeID, productID)
}

func (r *fakeStockRepo) Create(stock *entity.Stock) error {
	cp := *stock
	r.db.stocks[stockKey{stock.StoreID, stock.ProductID}] = &cp
	return nil
}

// AdjustQuantities solo persiste cantidades, como el adaptador real: el precio
// almacenado no se toca aunque el struct traiga otro valor.
func (r *fakeStockRepo) AdjustQuantities(stock *entity.Stock) error {
	s, ok := r.db.stocks[stockKey{stock.StoreID, stock.ProductID}]
	if !ok {
		return nil
	}
	s.Available = stock.Available
	s.InTransit = stock.InTransit
	s.UpdatedAt = stock.UpdatedAt
	return nil
}

func (r *fakeStockRepo) SetPrice(storeID, productID int64, price decimal.Decimal) error {
	if s, ok := r.db.stocks[stockKey{storeID, productID}]; ok {
		s.UnitPrice = price
	}
	return nil
}

func (r *fakeStockRepo) ListByStore(storeID int64, limit, offset int) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for _, s := range r.db.stocks {
		if s.StoreID == storeID {
			cp := *s
			list = append(list, &cp)
		}
	}
	return list, nil
}

type fakeReceiptRepo struct{ db *memDB }

func (r *fakeReceiptRepo) Create(receipt *entity.GoodsReceipt) error {
	r.db.nextID++
	receipt.ID = r.db.nextID
	cp := *receipt
	cp.Details = append([]entity.GoodsReceiptDetail(nil), receipt.Details...)
	r.db.receipts[receipt.ID] = &cp
	return nil
}

func (r *fakeReceiptRepo) GetByID(id int64) (*entity.GoodsReceipt, error) {
	rec, ok := r.db.receipts[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	cp.Details = append([]entity.GoodsReceiptDetail(nil), rec.Details...)
	return &cp, nil
}

func (r *fakeReceiptRepo) GetByCode(code string) (*entity.GoodsReceipt, error) {
	for _, rec := range r.db.receipts {
		if rec.Code == code {
			return r.GetByID(rec.ID)
		}
	}
	return nil, nil
}

func (r *fakeReceiptRepo) Cancel(receipt *entity.GoodsReceipt) error {
	rec, ok := r.db.receipts[receipt.ID]
	if !ok {
		return nil
	}
	rec.Status = receipt.Status
	rec.CancelledBy = receipt.CancelledBy
	rec.CancelledAt = receipt.CancelledAt
	return nil
}

func (r *fakeReceiptRepo) ListByStore(storeID int64, limit, offset int) ([]*entity.GoodsReceipt, error) {
	var list []*entity.GoodsReceipt
	for _, rec := range r.db.receipts {
		if rec.StoreID == storeID {
			cp, _ := r.GetByID(rec.ID)
			list = append(list, cp)
		}
	}
	return list, nil
}

type fakeIssueRepo struct{ db *memDB }

func (r *fakeIssueRepo) Create(issue *entity.GoodsIssue) error {
	r.db.nextID++
	issue.ID = r.db.nextID
	cp := *issue
	cp.Details = append([]entity.GoodsIssueDetail(nil), issue.Details...)
	r.db.issues[issue.ID] = &cp
	return nil
}

func (r *fakeIssueRepo) GetByID(id int64) (*entity.GoodsIssue, error) {
	is, ok := r.db.issues[id]
	if !ok {
		return nil, nil
	}
	cp := *is
	cp.Details = append([]entity.GoodsIssueDetail(nil), is.Details...)
	return &cp, nil
}

func (r *fakeIssueRepo) GetByCode(code string) (*entity.GoodsIssue, error) {
	for _, is := range r.db.issues {
		if is.Code == code {
			return r.GetByID(is.ID)
		}
	}
	return nil, nil
}

func (r *fakeIssueRepo) Cancel(issue *entity.GoodsIssue) error {
	is, ok := r.db.issues[issue.ID]
	if !ok {
		return nil
	}
	is.Status = issue.Status
	is.CancelledBy = issue.CancelledBy
	is.CancelledAt = issue.CancelledAt
	return nil
}

func (r *fakeIssueRepo) ListByStore(storeID int64, limit, offset int) ([]*entity.GoodsIssue, error) {
	var list []*entity.GoodsIssue
	for _, is := range r.db.issues {
		if is.StoreID == storeID {
			cp, _ := r.GetByID(is.ID)
			list = append(list, cp)
		}
	}
	return list, nil
}

type fakeTransferRepo struct{ db *memDB }

func (r *fakeTransferRepo) Create(transfer *entity.Transfer) error {
	r.db.nextID++
	transfer.ID = r.db.nextID
	cp := *transfer
	cp.Details = append([]entity.TransferDetail(nil), transfer.Details...)
	r.db.transfers[transfer.ID] = &cp
	return nil
}

func (r *fakeTransferRepo) GetByID(id int64) (*entity.Transfer, error) {
	t, ok := r.db.transfers[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	cp.Details = append([]entity.TransferDetail(nil), t.Details...)
	return &cp, nil
}

func (r *fakeTransferRepo) GetByCode(code string) (*entity.Transfer, error) {
	for _, t := range r.db.transfers {
		if t.Code == code {
			return r.GetByID(t.ID)
		}
	}
	return nil, nil
}

func (r *fakeTransferRepo) Receive(transfer *entity.Transfer) error {
	t, ok := r.db.transfers[transfer.ID]
	if !ok {
		return nil
	}
	t.Status = transfer.Status
	t.ReceiveDate = transfer.ReceiveDate
	t.ReceivedBy = transfer.ReceivedBy
	t.ReceivedAt = transfer.ReceivedAt
	return nil
}

func (r *fakeTransferRepo) Cancel(transfer *entity.Transfer) error {
	t, ok := r.db.transfers[transfer.ID]
	if !ok {
		return nil
	}
	t.Status = transfer.Status
	t.CancelledBy = transfer.CancelledBy
	t.CancelledAt = transfer.CancelledAt
	return nil
}

func (r *fakeTransferRepo) ListByStore(storeID int64, limit, offset int) ([]*entity.Transfer, error) {
	var list []*entity.Transfer
	for _, t := range r.db.transfers {
		if t.StoreOriginID == storeID || t.StoreDestinationID == storeID {
			cp, _ := r.GetByID(t.ID)
			list = append(list, cp)
		}
	}
	return list, nil
}

type fakeUserRepo struct{ db *memDB }

func (r *fakeUserRepo) Create(user *entity.User) error {
	r.db.nextID++
	user.ID = r.db.nextID
	cp := *user
	r.db.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.db.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByUserName(userName string) (*entity.User, error) {
	for _, u := range r.db.users {
		if u.UserName == userName {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) NamesByIDs(ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	for _, id := range ids {
		if u, ok := r.db.users[id]; ok {
			names[id] = u.FullName()
		}
	}
	return names, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.db.users {
		cp := *u
		list = append(list, &cp)
	}
	return list, nil
}

// fakeKardexRepo deriva los movimientos de los documentos no anulados, con la
// misma normalización que el adaptador SQL: entrada +, salida -, traslado -
// visto desde el origen y + visto desde el destino.
type fakeKardexRepo struct{ db *memDB }

func (r *fakeKardexRepo) ListMovements(storeID, productID int64) ([]entity.KardexMovement, error) {
	var movs []entity.KardexMovement
	for _, rec := range r.db.receipts {
		if rec.StoreID != storeID || rec.Status == entity.ReceiptCancelled {
			continue
		}
		for _, d := range rec.Details {
			if d.ProductID == productID {
				movs = append(movs, entity.KardexMovement{
					DocumentCode: rec.Code,
					DocumentDate: rec.CreatedAt,
					MovementType: entity.KardexMovementReceipt,
					DocumentInfo: rec.ReceiptType,
					Quantity:     d.Quantity,
					UnitPrice:    d.UnitCost,
				})
			}
		}
	}
	for _, is := range r.db.issues {
		if is.StoreID != storeID || is.Status == entity.IssueCancelled {
			continue
		}
		for _, d := range is.Details {
			if d.ProductID == productID {
				movs = append(movs, entity.KardexMovement{
					DocumentCode: is.Code,
					DocumentDate: is.CreatedAt,
					MovementType: entity.KardexMovementIssue,
					DocumentInfo: is.IssueType,
					Quantity:     -d.Quantity,
					UnitPrice:    d.UnitPrice,
				})
			}
		}
	}
	for _, t := range r.db.transfers {
		if t.Status == entity.TransferCancelled {
			continue
		}
		if t.StoreOriginID != storeID && t.StoreDestinationID != storeID {
			continue
		}
		for _, d := range t.Details {
			if d.ProductID != productID {
				continue
			}
			qty := d.Quantity
			if t.StoreOriginID == storeID {
				qty = -qty
			}
			movs = append(movs, entity.KardexMovement{
				DocumentCode: t.Code,
				DocumentDate: t.SendDate,
				MovementType: entity.KardexMovementTransfer,
				Quantity:     qty,
				UnitPrice:    d.UnitPrice,
			})
		}
	}
	return movs, nil
}

// ── TxRunner fake con rollback real ──────────────────────────────────────────

type fakeTxRunner struct{ db *memDB }

func (r *fakeTxRunner) RunReceipt(_ context.Context, fn func(
	repository.SequenceRepository,
	repository.StockRepository,
	repository.GoodsReceiptRepository,
) error) error {
	snap := r.db.clone()
	if err := fn(&fakeSeqRepo{r.db}, &fakeStockRepo{r.db}, &fakeReceiptRepo{r.db}); err != nil {
		r.db.restore(snap)
		return err
	}
	return nil
}

func (r *fakeTxRunner) RunIssue(_ context.Context, fn func(
	repository.SequenceRepository,
	repository.StockRepository,
	repository.GoodsIssueRepository,
) error) error {
	snap := r.db.clone()
	if err := fn(&fakeSeqRepo{r.db}, &fakeStockRepo{r.db}, &fakeIssueRepo{r.db}); err != nil {
		r.db.restore(snap)
		return err
	}
	return nil
}

func (r *fakeTxRunner) RunTransfer(_ context.Context, fn func(
	repository.SequenceRepository,
	repository.StockRepository,
	repository.TransferRepository,
) error) error {
	snap := r.db.clone()
	if err := fn(&fakeSeqRepo{r.db}, &fakeStockRepo{r.db}, &fakeTransferRepo{r.db}); err != nil {
		r.db.restore(snap)
		return err
	}
	return nil
}
