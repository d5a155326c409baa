// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"slices"
	"strings"

	"github.com/taibuivan/traders/internal/platform/validate"
	"github.com/taibuivan/traders/pkg/money"
	"github.com/taibuivan/traders/pkg/slice"
)

// Service serves both dashboards from an immutable data set.
type Service struct {
	admin  Admin
	vendor Vendor
}

// NewService derives inventory statuses and the outstanding invoice total.
// Amounts must already be parsed; an invalid amount counts as zero towards
// the outstanding total.
func NewService(data Data) *Service {
	vendor := data.Vendor
	vendor.Inventory = slices.Clone(vendor.Inventory)
	for i := range vendor.Inventory {
		vendor.Inventory[i].Status = StatusFor(vendor.Inventory[i].Stock)
	}

	outstanding := slice.Reduce(vendor.Invoices, money.Amount(0), func(total money.Amount, invoice Invoice) money.Amount {
		if invoice.Status == InvoicePending && invoice.Amount.Valid() {
			return total + invoice.Amount
		}
		return total
	})
	vendor.Outstanding = outstanding
	vendor.OutstandingDisplay = money.FormatINR(outstanding)

	return &Service{admin: data.Admin, vendor: vendor}
}

func (service *Service) Admin() Admin {
	return service.admin
}

func (service *Service) Vendor() Vendor {
	return service.vendor
}

// VendorFor is [Service.Vendor] labelled with the viewing account.
func (service *Service) VendorFor(account, name string) Vendor {
	vendor := service.vendor
	vendor.Account = account
	vendor.Name = name
	return vendor
}

// Orders returns recent orders, optionally narrowed to a set of statuses.
// Statuses are matched case-insensitively; no status returns every order.
func (service *Service) Orders(statuses ...string) ([]Order, error) {
	if len(statuses) == 0 {
		return slices.Clone(service.admin.Orders), nil
	}

	wanted := make(map[OrderStatus]struct{}, len(statuses))
	v := &validate.Validator{}
	for _, status := range statuses {
		parsed, ok := parseOrderStatus(strings.TrimSpace(status))
		if !ok {
			v.OneOf("status", status, orderStatusNames()...)
			continue
		}
		wanted[parsed] = struct{}{}
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	orders := make([]Order, 0, len(service.admin.Orders))
	for _, order := range service.admin.Orders {
		if _, ok := wanted[order.Status]; ok {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func orderStatusNames() []string {
	return slice.Map(OrderStatuses, func(status OrderStatus) string { return string(status) })
}

func parseOrderStatus(value string) (OrderStatus, bool) {
	for _, status := range OrderStatuses {
		if strings.EqualFold(value, string(status)) {
			return status, true
		}
	}
	return "", false
}
