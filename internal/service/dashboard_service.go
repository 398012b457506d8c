package service

// DashboardStats is the overview snapshot recomputed from the in-memory store
// on each call.
type DashboardStats struct {
	TotalProducts     int     `json:"total_products"`
	LowStockCount     int     `json:"low_stock_count"`
	TotalValuation    float64 `json:"total_valuation"`
	PendingBackOrders int     `json:"pending_back_orders"`
}

type DashboardService interface {
	GetDashboardStats() *DashboardStats
}

type dashboardService struct {
	inventory InventoryService
}

func NewDashboardService(inventory InventoryService) DashboardService {
	return &dashboardService{inventory: inventory}
}

func (s *dashboardService) GetDashboardStats() *DashboardStats {
	stats := &DashboardStats{
		PendingBackOrders: s.inventory.PendingBackOrders(),
	}
	for _, product := range s.inventory.GetAllProducts() {
		stats.TotalProducts++
		if product.Quantity < product.ReorderLevel {
			stats.LowStockCount++
		}
		stats.TotalValuation += float64(product.Quantity) * product.Price
	}
	return stats
}
