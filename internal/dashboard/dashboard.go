// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package dashboard serves the read-only admin and vendor dashboards.

The figures are a fixed demonstration set. Derived values (inventory status,
outstanding invoice total, amount display strings) are computed once when
the [Service] is built.
*/
package dashboard

import "github.com/taibuivan/traders/pkg/money"

// # Shared

// Tile is one headline figure, e.g. "Revenue ₹45.2L +15%".
type Tile struct {
	Title  string `json:"title" yaml:"title"`
	Value  string `json:"value" yaml:"value"`
	Change string `json:"change,omitempty" yaml:"change"`
}

// # Admin

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderCompleted  OrderStatus = "Completed"
	OrderProcessing OrderStatus = "Processing"
	OrderPending    OrderStatus = "Pending"
)

// OrderStatuses lists every [OrderStatus] in display order.
var OrderStatuses = []OrderStatus{OrderCompleted, OrderProcessing, OrderPending}

// RevenuePoint is one month of the revenue chart, in lakh rupees.
type RevenuePoint struct {
	Month   string `json:"month" yaml:"month"`
	Revenue int    `json:"revenue" yaml:"revenue"`
}

// CategoryShare is a category's percentage of platform sales.
type CategoryShare struct {
	Category string `json:"category" yaml:"category"`
	Percent  int    `json:"percent" yaml:"percent"`
}

type Order struct {
	ID            string       `json:"id" yaml:"id"`
	Vendor        string       `json:"vendor" yaml:"vendor"`
	Amount        money.Amount `json:"amount" yaml:"-"`
	AmountDisplay string       `json:"amount_display" yaml:"amount"`
	Status        OrderStatus  `json:"status" yaml:"status"`
}

// Admin is the platform-wide dashboard.
type Admin struct {
	Stats      []Tile          `json:"stats" yaml:"stats"`
	Revenue    []RevenuePoint  `json:"revenue" yaml:"revenue"`
	Categories []CategoryShare `json:"categories" yaml:"categories"`
	Orders     []Order         `json:"orders" yaml:"orders"`
}

// # Vendor

// InventoryStatus is derived from stock.
type InventoryStatus string

const (
	InventoryActive     InventoryStatus = "Active"
	InventoryOutOfStock InventoryStatus = "Out of Stock"
)

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "Paid"
	InvoicePending InvoiceStatus = "Pending"
)

type InventoryItem struct {
	ID           int             `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	Stock        int             `json:"stock" yaml:"stock"`
	Price        money.Amount    `json:"price" yaml:"-"`
	PriceDisplay string          `json:"price_display" yaml:"price"`
	Status       InventoryStatus `json:"status" yaml:"-"`
}

type Invoice struct {
	ID            string        `json:"id" yaml:"id"`
	Date          string        `json:"date" yaml:"date"`
	Amount        money.Amount  `json:"amount" yaml:"-"`
	AmountDisplay string        `json:"amount_display" yaml:"amount"`
	Status        InvoiceStatus `json:"status" yaml:"status"`
}

// Vendor is a single vendor's dashboard. Account and Name identify the
// token holder viewing it.
type Vendor struct {
	Account string `json:"account,omitempty" yaml:"-"`
	Name    string `json:"name,omitempty" yaml:"-"`

	Stats     []Tile          `json:"stats" yaml:"stats"`
	Inventory []InventoryItem `json:"inventory" yaml:"inventory"`
	Invoices  []Invoice       `json:"invoices" yaml:"invoices"`

	Outstanding        money.Amount `json:"outstanding" yaml:"-"`
	OutstandingDisplay string       `json:"outstanding_display" yaml:"-"`
}

// Data is the full dashboard data set.
type Data struct {
	Admin  Admin  `yaml:"admin"`
	Vendor Vendor `yaml:"vendor"`
}

// StatusFor derives the inventory status of a stock level.
func StatusFor(stock int) InventoryStatus {
	if stock == 0 {
		return InventoryOutOfStock
	}
	return InventoryActive
}
