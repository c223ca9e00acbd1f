package entity

// OrderStatus is the fulfillment stage of an order. The zero value is a new order.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = ""
	OrderStatusPrepared  OrderStatus = "prepared"
	OrderStatusFinished  OrderStatus = "finished"
	OrderStatusDelivered OrderStatus = "delivered"
)

func (s OrderStatus) String() string {
	if s == OrderStatusNew {
		return "new"
	}
	return string(s)
}
