package commands_test

import (
	"testing"
	"time"

	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/core/domain/model/order"
	"shiprelay/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func newTestCreatedOrder(t *testing.T) *order.Order {
	t.Helper()

	billing, err := order.NewBilling(
		"Asha Verma", "Pune", "411001", "Maharashtra", "India",
		"9876543210", "asha@example.com", "14 MG Road")
	require.NoError(t, err)

	item, err := order.NewItem("Kurta", "KRT-1", 2, 899, 50, 5, 6204)
	require.NoError(t, err)

	parcel, err := order.NewParcel(0.5, 30, 20, 5)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "ORD123", time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		"Primary", billing, []order.Item{item}, order.Prepaid, parcel)
	require.NoError(t, err)

	return aggregate
}

func newTestSubmittedOrder(t *testing.T) *order.Order {
	t.Helper()

	aggregate := newTestCreatedOrder(t)
	require.NoError(t, aggregate.MarkSubmitted(7001))
	return aggregate
}

func newTestShipment(t *testing.T) *shipment.Shipment {
	t.Helper()

	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), 9001)
	require.NoError(t, err)
	return s
}
