package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "Pending"},
		{"in progress", OrderStatusInProgress, "In Progress"},
		{"delivered", OrderStatusDelivered, "Delivered"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusInProgress, OrderStatusDelivered} {
		if !ValidOrderStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	for _, s := range []OrderStatus{"", "pending", "Shipped", "DELIVERED"} {
		if ValidOrderStatus(s) {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}

func TestFrozenTotalArithmeticIsExact(t *testing.T) {
	price := decimal.RequireFromString("2.99")
	qty := decimal.NewFromInt(3)
	total := price.Mul(qty)
	if total.String() != "8.97" {
		t.Fatalf("expected total 8.97, got %s", total)
	}
}
