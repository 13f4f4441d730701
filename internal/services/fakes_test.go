package services

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"lazshoppe/internal/models"
	"lazshoppe/internal/redis"
)

// In-memory repository doubles. They honor the same contracts as the gorm
// implementations, including the transactional behavior of order placement.

type fakeProductRepo struct {
	nextID   uint
	products map[uint]*models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1, products: make(map[uint]*models.Product)}
}

func (r *fakeProductRepo) Create(product *models.Product) error {
	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	} else if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	copy := *product
	r.products[product.ID] = &copy
	return nil
}

func (r *fakeProductRepo) GetByID(id uint) (*models.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *product
	return &copy, nil
}

func (r *fakeProductRepo) GetAll() ([]models.Product, error) {
	ids := make([]int, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, *r.products[uint(id)])
	}
	return products, nil
}

func (r *fakeProductRepo) Update(product *models.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copy := *product
	r.products[product.ID] = &copy
	return nil
}

func (r *fakeProductRepo) Delete(id uint) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Count() (int64, error) {
	return int64(len(r.products)), nil
}

type fakeCartRepo struct {
	nextID uint
	items  []models.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{nextID: 1}
}

func (r *fakeCartRepo) GetByUser(userID uint) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeCartRepo) GetByUserAndProduct(userID, productID uint) (*models.CartItem, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			copy := item
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCartRepo) Create(item *models.CartItem) error {
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeCartRepo) Update(item *models.CartItem) error {
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = *item
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeCartRepo) DeleteByProducts(userID uint, productIDs []uint) error {
	if len(productIDs) == 0 {
		return nil
	}
	wanted := make(map[uint]bool, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = true
	}
	kept := r.items[:0]
	for _, item := range r.items {
		if item.UserID == userID && wanted[item.ProductID] {
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	return nil
}

type fakeOrderRepo struct {
	nextID   uint
	orders   map[uint]*models.Order
	lines    map[uint][]models.OrderItem
	products *fakeProductRepo
	carts    *fakeCartRepo
	failNext bool
}

func newFakeOrderRepo(products *fakeProductRepo, carts *fakeCartRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		nextID:   1,
		orders:   make(map[uint]*models.Order),
		lines:    make(map[uint][]models.OrderItem),
		products: products,
		carts:    carts,
	}
}

func (r *fakeOrderRepo) Place(order *models.Order, lines []models.OrderItem) error {
	if r.failNext {
		r.failNext = false
		return fmt.Errorf("forced failure")
	}
	order.ID = r.nextID
	order.CreatedAt = time.Now()
	r.nextID++
	copy := *order
	r.orders[order.ID] = &copy

	productIDs := make([]uint, 0, len(lines))
	for i := range lines {
		lines[i].OrderID = order.ID
		productIDs = append(productIDs, lines[i].ProductID)
		if product, ok := r.products.products[lines[i].ProductID]; ok {
			product.Inventory -= lines[i].Quantity
			if product.Inventory < 0 {
				product.Inventory = 0
			}
		}
	}
	r.lines[order.ID] = append([]models.OrderItem(nil), lines...)
	return r.carts.DeleteByProducts(order.UserID, productIDs)
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *order
	return &copy, nil
}

func (r *fakeOrderRepo) GetByUser(userID uint) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders, nil
}

func (r *fakeOrderRepo) GetAll() ([]models.Order, error) {
	orders := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, *order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders, nil
}

func (r *fakeOrderRepo) GetByStatus(status models.OrderStatus) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	for _, order := range r.orders {
		if order.Status == string(status) {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) UpdateStatus(id uint, status models.OrderStatus) error {
	order, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = string(status)
	return nil
}

func (r *fakeOrderRepo) CancelRestock(order *models.Order) error {
	stored, ok := r.orders[order.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for _, line := range r.lines[order.ID] {
		if product, ok := r.products.products[line.ProductID]; ok {
			product.Inventory += line.Quantity
		}
	}
	stored.Status = string(models.OrderCancelled)
	return nil
}

func (r *fakeOrderRepo) Count() (int64, error) {
	return int64(len(r.orders)), nil
}

type fakeOrderItemRepo struct {
	orders *fakeOrderRepo
}

func (r *fakeOrderItemRepo) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	return append([]models.OrderItem(nil), r.orders.lines[orderID]...), nil
}

type fakeProfileRepo struct {
	nextID   uint
	profiles map[uint]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{nextID: 1, profiles: make(map[uint]*models.Profile)}
}

func (r *fakeProfileRepo) Create(profile *models.Profile) error {
	profile.ID = r.nextID
	r.nextID++
	copy := *profile
	r.profiles[profile.ID] = &copy
	return nil
}

func (r *fakeProfileRepo) GetByID(id uint) (*models.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *profile
	return &copy, nil
}

func (r *fakeProfileRepo) GetByEmail(email string) (*models.Profile, error) {
	for _, profile := range r.profiles {
		if profile.Email == email {
			copy := *profile
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProfileRepo) GetAll() ([]models.Profile, error) {
	profiles := make([]models.Profile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		profiles = append(profiles, *profile)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles, nil
}

func (r *fakeProfileRepo) Update(profile *models.Profile) error {
	if _, ok := r.profiles[profile.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copy := *profile
	r.profiles[profile.ID] = &copy
	return nil
}

func (r *fakeProfileRepo) Count() (int64, error) {
	return int64(len(r.profiles)), nil
}

type fakeWishlistRepo struct {
	nextID  uint
	entries []models.Wishlist
}

func (r *fakeWishlistRepo) GetByUser(userID uint) ([]models.Wishlist, error) {
	entries := make([]models.Wishlist, 0)
	for _, entry := range r.entries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (r *fakeWishlistRepo) GetByUserAndProduct(userID, productID uint) (*models.Wishlist, error) {
	for _, entry := range r.entries {
		if entry.UserID == userID && entry.ProductID == productID {
			copy := entry
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeWishlistRepo) Create(entry *models.Wishlist) error {
	r.nextID++
	entry.ID = r.nextID
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeWishlistRepo) Delete(userID, productID uint) error {
	kept := r.entries[:0]
	for _, entry := range r.entries {
		if entry.UserID == userID && entry.ProductID == productID {
			continue
		}
		kept = append(kept, entry)
	}
	r.entries = kept
	return nil
}

type fakeSupportRepo struct {
	nextID   uint
	requests map[uint]*models.SupportRequest
}

func newFakeSupportRepo() *fakeSupportRepo {
	return &fakeSupportRepo{requests: make(map[uint]*models.SupportRequest)}
}

func (r *fakeSupportRepo) Create(request *models.SupportRequest) error {
	r.nextID++
	request.ID = r.nextID
	copy := *request
	r.requests[request.ID] = &copy
	return nil
}

func (r *fakeSupportRepo) GetByID(id uint) (*models.SupportRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *request
	return &copy, nil
}

func (r *fakeSupportRepo) GetAll() ([]models.SupportRequest, error) {
	requests := make([]models.SupportRequest, 0, len(r.requests))
	for _, request := range r.requests {
		requests = append(requests, *request)
	}
	return requests, nil
}

func (r *fakeSupportRepo) Update(request *models.SupportRequest) error {
	if _, ok := r.requests[request.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copy := *request
	r.requests[request.ID] = &copy
	return nil
}

// fakeCache covers every redis-backed seam: cart mirror, checkout selection,
// sessions, and temp data.
type fakeCache struct {
	carts      map[uint][]models.CartItem
	selections map[uint][]uint
	sessions   map[string]*redis.SessionData
	temp       map[string]interface{}
	failCarts  bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		carts:      make(map[uint][]models.CartItem),
		selections: make(map[uint][]uint),
		sessions:   make(map[string]*redis.SessionData),
		temp:       make(map[string]interface{}),
	}
}

func (c *fakeCache) SetCart(userID uint, items []models.CartItem) error {
	if c.failCarts {
		return fmt.Errorf("cache unavailable")
	}
	c.carts[userID] = append([]models.CartItem(nil), items...)
	return nil
}

func (c *fakeCache) DeleteCart(userID uint) error {
	delete(c.carts, userID)
	return nil
}

func (c *fakeCache) SetSelection(userID uint, productIDs []uint, _ time.Duration) error {
	c.selections[userID] = append([]uint(nil), productIDs...)
	return nil
}

func (c *fakeCache) GetSelection(userID uint) ([]uint, error) {
	ids, ok := c.selections[userID]
	if !ok {
		return nil, fmt.Errorf("checkout selection not found")
	}
	return ids, nil
}

func (c *fakeCache) ClearSelection(userID uint) error {
	delete(c.selections, userID)
	return nil
}

func (c *fakeCache) SetSession(token string, data *redis.SessionData, _ time.Duration) error {
	c.sessions[token] = data
	return nil
}

func (c *fakeCache) GetSession(token string) (*redis.SessionData, error) {
	session, ok := c.sessions[token]
	if !ok {
		return nil, fmt.Errorf("session not found")
	}
	return session, nil
}

func (c *fakeCache) DeleteSession(token string) error {
	delete(c.sessions, token)
	return nil
}

func (c *fakeCache) SetTempData(key string, value interface{}, _ time.Duration) error {
	c.temp[key] = value
	return nil
}

func (c *fakeCache) GetTempData(key string, _ interface{}) error {
	if _, ok := c.temp[key]; !ok {
		return fmt.Errorf("temp data not found")
	}
	// Tests only exercise the miss path; a hit would need JSON round-tripping.
	return fmt.Errorf("temp data not found")
}

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) SendTextMessage(phone, message string) error {
	n.messages = append(n.messages, fmt.Sprintf("%s: %s", phone, message))
	return nil
}
