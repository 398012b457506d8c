package service

import (
	"errors"
	"sync"
	"time"

	"go-inventory-sales/internal/model"
	"go-inventory-sales/internal/repository"
	"go-inventory-sales/internal/ws"
	"go-inventory-sales/pkg/sorting"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoSales         = errors.New("no sales recorded")
)

type SaleStatus string

const (
	// SaleRecorded means stock was decremented and a ledger entry appended.
	SaleRecorded SaleStatus = "recorded"
	// SaleBackOrdered means the request was accepted but deferred into the
	// back-order queue because stock was insufficient.
	SaleBackOrdered SaleStatus = "back_ordered"
)

// SaleOutcome reports how a sale request was resolved. LowStock is set when a
// recorded sale pushed the product below its reorder level.
type SaleOutcome struct {
	Status    SaleStatus        `json:"status"`
	LowStock  bool              `json:"low_stock,omitempty"`
	Record    *model.SaleRecord `json:"record,omitempty"`
	BackOrder *model.BackOrder  `json:"back_order,omitempty"`
}

// BackOrderResult is the per-order outcome of one processing pass. Record is
// set only when the order was fulfilled.
type BackOrderResult struct {
	OrderID   uuid.UUID         `json:"order_id"`
	ProductID string            `json:"product_id"`
	Quantity  int               `json:"quantity"`
	Processed bool              `json:"processed"`
	Record    *model.SaleRecord `json:"record,omitempty"`
}

type InventoryService interface {
	AddProduct(product model.Product) (replaced bool)
	UpdateStock(id string, newQty int) bool
	RemoveProduct(id string) bool
	GetAllProducts() []model.Product
	RecordSale(productID string, qty int, discountPercent float64) (*SaleOutcome, error)
	ProcessBackOrders() []BackOrderResult
	PendingBackOrders() int
	GenerateEndOfDayReport() (*model.EndOfDayReport, error)
}

type inventoryService struct {
	// One mutex guards all three structures; none of them synchronize
	// themselves, and sale recording touches the catalog and the ledger in
	// one step.
	mu          sync.Mutex
	productRepo repository.ProductRepository
	backOrders  *repository.BackOrderQueue
	ledger      *repository.SalesLedger
	wsHub       *ws.Hub
}

// NewInventoryService wires the catalog, back-order queue, and sales ledger.
// A nil hub disables event broadcasting.
func NewInventoryService(pRepo repository.ProductRepository, queue *repository.BackOrderQueue, ledger *repository.SalesLedger, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		backOrders:  queue,
		ledger:      ledger,
		wsHub:       hub,
	}
}

func (s *inventoryService) AddProduct(product model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := s.productRepo.Put(product)
	s.publish(map[string]interface{}{
		"type":     "product_created",
		"replaced": replaced,
		"product":  product,
	})
	return replaced
}

func (s *inventoryService) UpdateStock(id string, newQty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.productRepo.UpdateQuantity(id, newQty) {
		return false
	}
	s.publish(map[string]interface{}{
		"type":       "stock_updated",
		"product_id": id,
		"new_stock":  newQty,
	})
	return true
}

func (s *inventoryService) RemoveProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.productRepo.Remove(id) {
		return false
	}
	s.publish(map[string]interface{}{
		"type":       "product_removed",
		"product_id": id,
	})
	return true
}

func (s *inventoryService) GetAllProducts() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.productRepo.FindAll()
}

// RecordSale attempts a sale. Unknown ids fail with ErrProductNotFound and no
// side effects; insufficient stock defers the request into the back-order
// queue, which still counts as an accepted sale.
func (s *inventoryService) RecordSale(productID string, qty int, discountPercent float64) (*SaleOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.productRepo.FindByID(productID)
	if !ok {
		return nil, ErrProductNotFound
	}

	if product.Quantity < qty {
		order := model.BackOrder{
			ID:              uuid.New(),
			ProductID:       productID,
			Quantity:        qty,
			DiscountPercent: discountPercent,
			QueuedAt:        time.Now(),
		}
		s.backOrders.Enqueue(order)
		s.publish(map[string]interface{}{
			"type":  "backorder_queued",
			"order": order,
		})
		return &SaleOutcome{Status: SaleBackOrdered, BackOrder: &order}, nil
	}

	record := s.completeSale(product, qty, discountPercent)
	outcome := &SaleOutcome{Status: SaleRecorded, Record: &record}
	if product.Quantity-qty < product.ReorderLevel {
		outcome.LowStock = true
		s.publish(map[string]interface{}{
			"type":          "low_stock_alert",
			"product_id":    product.ID,
			"new_stock":     product.Quantity - qty,
			"reorder_level": product.ReorderLevel,
		})
	}
	return outcome, nil
}

// ProcessBackOrders runs one bounded pass over the queue: the length is
// snapshotted first and exactly that many orders are dequeued, so orders
// re-enqueued during the pass wait for the next call and an unfulfillable
// order can never spin the loop.
func (s *inventoryService) ProcessBackOrders() []BackOrderResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.backOrders.Len()
	results := make([]BackOrderResult, 0, n)
	for i := 0; i < n; i++ {
		order, _ := s.backOrders.Dequeue()
		result := BackOrderResult{
			OrderID:   order.ID,
			ProductID: order.ProductID,
			Quantity:  order.Quantity,
		}
		product, ok := s.productRepo.FindByID(order.ProductID)
		if ok && product.Quantity >= order.Quantity {
			record := s.completeSale(product, order.Quantity, order.DiscountPercent)
			result.Processed = true
			result.Record = &record
			s.publish(map[string]interface{}{
				"type":   "backorder_processed",
				"order":  order,
				"record": record,
			})
		} else {
			// Product missing or still short: the same order returns to the
			// tail unchanged.
			s.backOrders.Enqueue(order)
		}
		results = append(results, result)
	}
	return results
}

func (s *inventoryService) PendingBackOrders() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.backOrders.Len()
}

// GenerateEndOfDayReport aggregates the ledger and clears it to start a fresh
// day. An empty ledger yields ErrNoSales and no mutation.
func (s *inventoryService) GenerateEndOfDayReport() (*model.EndOfDayReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger.IsEmpty() {
		return nil, ErrNoSales
	}
	sales := s.ledger.All()

	total := 0.0
	unitsByCategory := make(map[string]int)
	quantities := make([]int, 0, len(sales))
	for _, sale := range sales {
		total += sale.Amount
		// Categories resolve against the catalog at report time; a product
		// removed since the sale falls into the uncategorized bucket.
		category := model.UncategorizedBucket
		if product, ok := s.productRepo.FindByID(sale.ProductID); ok {
			category = product.Category
		}
		unitsByCategory[category] += sale.Quantity
		quantities = append(quantities, sale.Quantity)
	}

	sorted := sorting.MergeSort(quantities)
	minQty, maxQty := sorted[0], sorted[len(sorted)-1]

	report := &model.EndOfDayReport{
		TotalRevenue:    total,
		UnitsByCategory: unitsByCategory,
		TopSellers:      distinctSellersAt(sales, maxQty),
		BottomSellers:   distinctSellersAt(sales, minQty),
	}
	s.ledger.Clear()
	return report, nil
}

// completeSale decrements stock, prices the sale at the product's current
// price, and appends the ledger entry. The caller holds the lock and has
// already checked stock.
func (s *inventoryService) completeSale(product model.Product, qty int, discountPercent float64) model.SaleRecord {
	newQty := product.Quantity - qty
	s.productRepo.UpdateQuantity(product.ID, newQty)
	record := model.SaleRecord{
		ID:         uuid.New(),
		ProductID:  product.ID,
		Quantity:   qty,
		Amount:     float64(qty) * product.Price * (1 - discountPercent/100),
		RecordedAt: time.Now(),
	}
	s.ledger.Append(record)
	s.publish(map[string]interface{}{
		"type":      "sale_recorded",
		"record":    record,
		"new_stock": newQty,
	})
	return record
}

// distinctSellersAt returns the product ids of sales at the given quantity in
// first-occurrence order, deduplicated.
func distinctSellersAt(sales []model.SaleRecord, qty int) []string {
	seen := make(map[string]bool)
	ids := make([]string, 0, 1)
	for _, sale := range sales {
		if sale.Quantity == qty && !seen[sale.ProductID] {
			seen[sale.ProductID] = true
			ids = append(ids, sale.ProductID)
		}
	}
	return ids
}

func (s *inventoryService) publish(payload map[string]interface{}) {
	if s.wsHub == nil {
		return
	}
	// Broadcast off the lock path, as the hub channel has no buffer.
	go s.wsHub.Publish(payload)
}
