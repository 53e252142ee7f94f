package orders

import (
	"errors"
	"testing"
	"time"

	"backoffice-backend/internal/auth"
	"backoffice-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staffSession() *auth.Session {
	sess := auth.NewSession()
	sess.SetUser(&models.Account{ID: "2", Name: "Staff User", Role: models.RoleStaff})
	return sess
}

func sampleItems() []models.OrderItem {
	return []models.OrderItem{
		{ID: "1", Name: "Margherita Pizza", Quantity: 2, UnitPrice: 12.99},
		{ID: "2", Name: "Caesar Salad", Quantity: 1, UnitPrice: 9.99},
	}
}

func TestCreateComputesTotal(t *testing.T) {
	led := NewLedger(staffSession(), nil)

	order, err := led.Create("John Doe", sampleItems(), "extra crispy")
	require.NoError(t, err)

	assert.InDelta(t, 35.97, order.Total, 0.001)
	assert.Equal(t, models.StatusPlaced, order.Status)
	assert.Equal(t, "ORD-001", order.ID)
	assert.Equal(t, "extra crispy", order.Notes)
	assert.WithinDuration(t, time.Now(), order.Timestamp, time.Second)
}

func TestCreateValidation(t *testing.T) {
	led := NewLedger(staffSession(), nil)

	_, err := led.Create("  ", sampleItems(), "")
	assert.True(t, errors.Is(err, ErrEmptyCustomer))

	_, err = led.Create("John Doe", nil, "")
	assert.True(t, errors.Is(err, ErrNoItems))

	// Reddedilen denemeler deftere iz bırakmamalı
	assert.Empty(t, led.List())
}

func TestCreateRejectsInvalidLines(t *testing.T) {
	led := NewLedger(staffSession(), nil)

	// Taslak yardımcılarını atlayan doğrudan çağrılar da invariant'ı bozamaz
	_, err := led.Create("John Doe", []models.OrderItem{
		{ID: "1", Name: "Margherita Pizza", Quantity: 0, UnitPrice: 12.99},
	}, "")
	assert.True(t, errors.Is(err, ErrInvalidQuantity))

	_, err = led.Create("John Doe", []models.OrderItem{
		{ID: "1", Name: "Margherita Pizza", Quantity: -2, UnitPrice: 12.99},
	}, "")
	assert.True(t, errors.Is(err, ErrInvalidQuantity))

	_, err = led.Create("John Doe", []models.OrderItem{
		{ID: "1", Name: "Margherita Pizza", Quantity: 1, UnitPrice: -0.01},
	}, "")
	assert.True(t, errors.Is(err, ErrInvalidPrice))

	assert.Empty(t, led.List())
}

func TestCreateRequiresSignedInUser(t *testing.T) {
	led := NewLedger(auth.NewSession(), nil)

	_, err := led.Create("John Doe", sampleItems(), "")
	assert.True(t, errors.Is(err, auth.ErrForbidden))
	assert.Empty(t, led.List())
}

func TestCreateContinuesSeedSequence(t *testing.T) {
	led := NewLedger(staffSession(), []models.Order{
		{ID: "ORD-001", Status: models.StatusDelivered},
		{ID: "ORD-003", Status: models.StatusReady},
	})

	order, err := led.Create("Jane Smith", sampleItems(), "")
	require.NoError(t, err)
	assert.Equal(t, "ORD-004", order.ID)
}

func TestAdvanceWalksStatusChain(t *testing.T) {
	led := NewLedger(staffSession(), nil)
	order, err := led.Create("John Doe", sampleItems(), "")
	require.NoError(t, err)

	want := []models.OrderStatus{
		models.StatusPreparing,
		models.StatusReady,
		models.StatusDelivered,
	}
	for _, status := range want {
		got, err := led.Advance(order.ID)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}

	// Dördüncü çağrı terminal durumda reddedilir, durum değişmez
	_, err = led.Advance(order.ID)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	final, err := led.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, final.Status)
}

func TestAdvanceUnknownOrder(t *testing.T) {
	led := NewLedger(staffSession(), nil)

	_, err := led.Advance("ORD-999")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAdvanceRequiresSignedInUser(t *testing.T) {
	led := NewLedger(auth.NewSession(), []models.Order{
		{ID: "ORD-001", Status: models.StatusPlaced},
	})

	_, err := led.Advance("ORD-001")
	assert.True(t, errors.Is(err, auth.ErrForbidden))

	order, err := led.Get("ORD-001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPlaced, order.Status)
}

func TestNextStatus(t *testing.T) {
	tests := []struct {
		from models.OrderStatus
		want models.OrderStatus
		ok   bool
	}{
		{models.StatusPlaced, models.StatusPreparing, true},
		{models.StatusPreparing, models.StatusReady, true},
		{models.StatusReady, models.StatusDelivered, true},
		{models.StatusDelivered, models.StatusDelivered, false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NextStatus(tt.from)
		assert.Equal(t, tt.ok, ok, "NextStatus(%q)", tt.from)
		if tt.ok {
			assert.Equal(t, tt.want, got, "NextStatus(%q)", tt.from)
		}
	}
}

func TestElapsed(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		age  time.Duration
		want string
	}{
		{0, "0m ago"},
		{15 * time.Minute, "15m ago"},
		{59 * time.Minute, "59m ago"},
		{60 * time.Minute, "1h 0m ago"},
		{65 * time.Minute, "1h 5m ago"},
		{150 * time.Minute, "2h 30m ago"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Elapsed(now.Add(-tt.age), now))
	}
}

func TestListPreservesCreationOrder(t *testing.T) {
	led := NewLedger(staffSession(), nil)

	first, err := led.Create("John Doe", sampleItems(), "")
	require.NoError(t, err)
	second, err := led.Create("Jane Smith", sampleItems(), "")
	require.NoError(t, err)

	list := led.List()
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}
