package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazshoppe/internal/models"
)

func TestProfileUpdateAndRoleRules(t *testing.T) {
	profiles := newFakeProfileRepo()
	require.NoError(t, profiles.Create(&models.Profile{Email: "rica@example.com", FullName: "Rica Blanca", Role: string(models.RoleCustomer)}))
	svc := NewProfileService(profiles)

	updated, err := svc.Update(1, "Rica B. Blanca", "+639170000000", "12A Mango St., Quezon City")
	require.NoError(t, err)
	assert.Equal(t, "Rica B. Blanca", updated.FullName)
	assert.Equal(t, "12A Mango St., Quezon City", updated.Address)

	_, err = svc.Update(99, "Nobody", "", "")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = svc.UpdateRole(1, "Superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	promoted, err := svc.UpdateRole(1, string(models.RoleDelivery))
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleDelivery), promoted.Role)
}

func TestListUsers_Filters(t *testing.T) {
	profiles := newFakeProfileRepo()
	require.NoError(t, profiles.Create(&models.Profile{Email: "rica@example.com", FullName: "Rica Blanca", Role: string(models.RoleCustomer)}))
	require.NoError(t, profiles.Create(&models.Profile{Email: "admin@lazshoppe.ph", FullName: "Store Admin", Role: string(models.RoleAdmin)}))
	svc := NewProfileService(profiles)

	admins, err := svc.ListUsers("", string(models.RoleAdmin))
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "Store Admin", admins[0].FullName)

	byEmail, err := svc.ListUsers("RICA@", "")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Rica Blanca", byEmail[0].FullName)
}

func TestWishlistToggle(t *testing.T) {
	products := newFakeProductRepo()
	require.NoError(t, products.Create(&models.Product{Name: "Local Oranges", Price: 35}))
	svc := NewWishlistService(&fakeWishlistRepo{}, products)

	added, err := svc.Toggle(1, 1)
	require.NoError(t, err)
	assert.True(t, added)

	entries, err := svc.List(1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	removed, err := svc.Toggle(1, 1)
	require.NoError(t, err)
	assert.False(t, removed)

	entries, err = svc.List(1)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = svc.Toggle(1, 42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSupportLifecycle(t *testing.T) {
	svc := NewSupportService(newFakeSupportRepo())

	request, err := svc.Create("Rica Blanca", "rica@example.com", "Late delivery", "Order has not arrived yet.")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(request.Reference, "SUP-"))
	assert.Equal(t, string(models.SupportOpen), request.Status)

	resolved, err := svc.Resolve(request.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.SupportResolved), resolved.Status)

	_, err = svc.Resolve(999)
	assert.ErrorIs(t, err, ErrSupportNotFound)
}

func TestDashboardSummary(t *testing.T) {
	products := newFakeProductRepo()
	carts := newFakeCartRepo()
	orders := newFakeOrderRepo(products, carts)
	profiles := newFakeProfileRepo()

	require.NoError(t, products.Create(&models.Product{Name: "Local Oranges", Price: 35}))
	require.NoError(t, profiles.Create(&models.Profile{Email: "rica@example.com", FullName: "Rica Blanca"}))
	require.NoError(t, orders.Place(&models.Order{OrderNumber: "OGS-1", Status: string(models.OrderPending), UserID: 1}, []models.OrderItem{{ProductID: 1, Quantity: 1}}))

	svc := NewDashboardService(products, orders, profiles, newFakeCache())
	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.Products)
	assert.Equal(t, int64(1), summary.Orders)
	assert.Equal(t, int64(1), summary.Users)
	require.Len(t, summary.PendingOrders, 1)
	assert.Equal(t, "OGS-1", summary.PendingOrders[0].OrderNumber)
}
