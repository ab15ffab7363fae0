package lookup

import "time"

// Customer is a read-only identity record. ID is the opaque external identifier.
type Customer struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Order belongs to exactly one customer. TotalPrice, OptIn and StoreID are nullable columns.
type Order struct {
	ID               string    `json:"id" db:"id"`
	CustomerID       string    `json:"customer_id" db:"customer_id"`
	Name             string    `json:"name" db:"name"`
	TotalPrice       *float64  `json:"total_price" db:"total_price"`
	OptIn            *bool     `json:"opt_in" db:"opt_in"`
	PaymentStatus    string    `json:"payment_status" db:"payment_status"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	ShippingCity     string    `json:"shipping_city" db:"shipping_city"`
	ShippingProvince string    `json:"shipping_province" db:"shipping_province"`
	ShippingCountry  string    `json:"shipping_country" db:"shipping_country"`
	StoreID          *int64    `json:"store_id" db:"store_id"`
	StoreName        string    `json:"store_name" db:"-"` // Заполняется сервисом из реестра магазинов
}

// Summary is derived from the fetched order set on every request.
type Summary struct {
	TotalOrders       int     `json:"total_orders"`
	TotalSpent        float64 `json:"total_spent"`
	AverageOrderValue float64 `json:"average_order_value"`
	OptInCount        int     `json:"opt_in_count"`
	OptOutCount       int     `json:"opt_out_count"`
	OptInRate         float64 `json:"opt_in_rate"`
}

// Result of a lookup. Customer and Summary are nil when no customer matched.
type Result struct {
	Customer *Customer
	Orders   []Order
	Summary  *Summary
	Message  string
}
