package repository

import "go-inventory-sales/internal/model"

// BackOrderQueue holds deferred sale requests in strict FIFO order. There is
// no priority, cancellation, or deduplication: several back-orders for the
// same product coexist independently.
type BackOrderQueue struct {
	orders []model.BackOrder
}

func NewBackOrderQueue() *BackOrderQueue {
	return &BackOrderQueue{}
}

// Enqueue appends an order at the tail.
func (q *BackOrderQueue) Enqueue(order model.BackOrder) {
	q.orders = append(q.orders, order)
}

// Dequeue removes and returns the order at the head. The second return value
// is false when the queue is empty.
func (q *BackOrderQueue) Dequeue() (model.BackOrder, bool) {
	if len(q.orders) == 0 {
		return model.BackOrder{}, false
	}
	order := q.orders[0]
	q.orders = q.orders[1:]
	return order, true
}

func (q *BackOrderQueue) Len() int {
	return len(q.orders)
}

func (q *BackOrderQueue) IsEmpty() bool {
	return len(q.orders) == 0
}
