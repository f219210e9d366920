package service

import (
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"naijavalue/config"
	"naijavalue/internal/domain"
	"naijavalue/internal/models"
	"naijavalue/pkg/logger"

	"gorm.io/gorm"
)

// memStore is an in-memory implementation of every repository interface,
// shared by the service tests. Not safe for concurrent use; tests that
// exercise locking drive the services sequentially.
type memStore struct {
	users         map[uint]*models.User
	transactions  []models.Transaction
	referrals     []models.Referral
	withdrawals   map[uint]*models.Withdrawal
	payments      map[uint]*models.Payment
	ads           map[uint]*models.Advertisement
	products      map[uint]*models.Product
	orders        map[uint]*models.Order
	orderItems    []models.OrderItem
	notifications []models.Notification
	settings      map[string]string
	nextID        uint

	failWithdrawalCreate bool
	failOrderCreate      bool
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[uint]*models.User),
		withdrawals: make(map[uint]*models.Withdrawal),
		payments:    make(map[uint]*models.Payment),
		ads:         make(map[uint]*models.Advertisement),
		products:    make(map[uint]*models.Product),
		orders:      make(map[uint]*models.Order),
		settings:    make(map[string]string),
	}
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

// --- UserStore ---

func (m *memStore) Create(u *models.User) error {
	u.ID = m.id()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memStore) GetByID(id uint) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) GetByUsername(username string) (*models.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) GetByReferralCode(code string) (*models.User, error) {
	for _, u := range m.users {
		if u.ReferralCode == code {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) GetByGoogleID(googleID string) (*models.User, error) {
	for _, u := range m.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) UpdateFields(id uint, fields map[string]interface{}) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range fields {
		switch k {
		case "full_name":
			u.FullName = v.(string)
		case "email":
			u.Email = v.(string)
		case "bank_name":
			u.BankName = v.(string)
		case "account_number":
			u.AccountNumber = v.(string)
		case "account_name":
			u.AccountName = v.(string)
		}
	}
	return nil
}

func (m *memStore) IncrementReferralCount(id uint) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.ReferralCount++
	return nil
}

func (m *memStore) SetReferredBy(id, referrerID uint) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.ReferredBy = &referrerID
	return nil
}

func (m *memStore) SetDailyBonusClaimed(id uint, at time.Time) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.DailyBonusLastClaimed = &at
	return nil
}

func (m *memStore) List() ([]models.User, error) {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) SetBanned(id uint, banned bool) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.IsBanned = banned
	return nil
}

func (m *memStore) Count() (int64, error) {
	return int64(len(m.users)), nil
}

// --- LedgerStore ---

func (m *memStore) ApplyDelta(userID uint, delta int64, txType, description, metadata string) (*models.Transaction, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	u.Balance += delta
	tx := models.Transaction{
		ID:          m.id(),
		UserID:      userID,
		Type:        txType,
		Amount:      delta,
		Description: description,
		Status:      domain.StatusCompleted,
		Metadata:    metadata,
		CreatedAt:   time.Now(),
	}
	m.transactions = append(m.transactions, tx)
	return &tx, nil
}

func (m *memStore) SetAdvertisementEnabled(userID uint, enabled bool) error {
	u, ok := m.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.AdvertisementEnabled = enabled
	return nil
}

func (m *memStore) SetContactGainStatus(userID uint, status string) error {
	u, ok := m.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.ContactGainStatus = status
	return nil
}

// --- TransactionStore ---

func (m *memStore) ListByUser(userID uint) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range m.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

// sumTransactions verifies the ledger invariant in tests.
func (m *memStore) sumTransactions(userID uint) int64 {
	var sum int64
	for _, tx := range m.transactions {
		if tx.UserID == userID {
			sum += tx.Amount
		}
	}
	return sum
}

// --- ReferralStore ---

func (m *memStore) CreateReferral(ref *models.Referral) error {
	ref.ID = m.id()
	m.referrals = append(m.referrals, *ref)
	return nil
}

func (m *memStore) ListByReferrer(referrerID uint) ([]models.Referral, error) {
	var out []models.Referral
	for _, r := range m.referrals {
		if r.ReferrerID == referrerID {
			out = append(out, r)
		}
	}
	return out, nil
}

// --- WithdrawalStore ---

func (m *memStore) CreateWithdrawal(w *models.Withdrawal) error {
	if m.failWithdrawalCreate {
		return errors.New("storage failure")
	}
	w.ID = m.id()
	cp := *w
	m.withdrawals[w.ID] = &cp
	return nil
}

func (m *memStore) GetWithdrawal(id uint) (*models.Withdrawal, error) {
	w, ok := m.withdrawals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *w
	return &cp, nil
}

func (m *memStore) UpdateWithdrawal(w *models.Withdrawal) error {
	if _, ok := m.withdrawals[w.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *w
	m.withdrawals[w.ID] = &cp
	return nil
}

func (m *memStore) ListWithdrawals(status string) ([]models.Withdrawal, error) {
	var out []models.Withdrawal
	for _, w := range m.withdrawals {
		if status == "" || w.Status == status {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (m *memStore) ListWithdrawalsByUser(userID uint) ([]models.Withdrawal, error) {
	var out []models.Withdrawal
	for _, w := range m.withdrawals {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	return out, nil
}

// --- PaymentStore ---

func (m *memStore) CreatePayment(p *models.Payment) error {
	p.ID = m.id()
	cp := *p
	m.payments[p.ID] = &cp
	return nil
}

func (m *memStore) GetPayment(id uint) (*models.Payment, error) {
	p, ok := m.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memStore) UpdatePayment(p *models.Payment) error {
	if _, ok := m.payments[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	m.payments[p.ID] = &cp
	return nil
}

func (m *memStore) ListPayments(status string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range m.payments {
		if status == "" || p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memStore) ListPaymentsByUser(userID uint) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range m.payments {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// --- AdvertisementStore ---

func (m *memStore) CreateAdvertisement(a *models.Advertisement) error {
	a.ID = m.id()
	cp := *a
	m.ads[a.ID] = &cp
	return nil
}

func (m *memStore) GetAdvertisement(id uint) (*models.Advertisement, error) {
	a, ok := m.ads[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memStore) UpdateAdvertisement(a *models.Advertisement) error {
	if _, ok := m.ads[a.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *a
	m.ads[a.ID] = &cp
	return nil
}

func (m *memStore) ListAdvertisements(status string) ([]models.Advertisement, error) {
	var out []models.Advertisement
	for _, a := range m.ads {
		if status == "" || a.Status == status {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memStore) ListAdvertisementsByUser(userID uint) ([]models.Advertisement, error) {
	var out []models.Advertisement
	for _, a := range m.ads {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

// --- ProductStore ---

func (m *memStore) CreateProduct(p *models.Product) error {
	p.ID = m.id()
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memStore) GetProduct(id uint) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memStore) UpdateProductFields(id uint, fields map[string]interface{}) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := fields["in_stock"]; ok {
		p.InStock = v.(bool)
	}
	if v, ok := fields["price"]; ok {
		p.Price = v.(int64)
	}
	cp := *p
	return &cp, nil
}

func (m *memStore) ListProducts(category string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if category == "" || p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

// --- OrderStore ---

func (m *memStore) CreateWithItems(order *models.Order, items []models.OrderItem, debit *models.Transaction) error {
	if m.failOrderCreate {
		return errors.New("storage failure")
	}
	order.ID = m.id()
	cp := *order
	m.orders[order.ID] = &cp
	for i := range items {
		items[i].ID = m.id()
		items[i].OrderID = order.ID
		m.orderItems = append(m.orderItems, items[i])
	}
	u, ok := m.users[debit.UserID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Balance += debit.Amount
	debit.ID = m.id()
	m.transactions = append(m.transactions, *debit)
	return nil
}

func (m *memStore) GetOrder(id uint) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memStore) Items(orderID uint) ([]models.OrderItem, error) {
	var out []models.OrderItem
	for _, it := range m.orderItems {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memStore) ListOrdersByUser(userID uint) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *memStore) ListOrders(status string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if status == "" || o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *memStore) UpdateOrderStatus(id uint, status string) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	o.Status = status
	cp := *o
	return &cp, nil
}

// --- NotificationStore ---

func (m *memStore) CreateNotification(n *models.Notification) error {
	n.ID = m.id()
	m.notifications = append(m.notifications, *n)
	return nil
}

func (m *memStore) ListNotificationsForUser(userID uint) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range m.notifications {
		if n.IsGlobal || (n.UserID != nil && *n.UserID == userID) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memStore) MarkRead(id uint) error {
	for i := range m.notifications {
		if m.notifications[i].ID == id {
			m.notifications[i].IsRead = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// --- SettingStore ---

func (m *memStore) Get(key string) (string, error) {
	v, ok := m.settings[key]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return v, nil
}

func (m *memStore) Set(key, value string) error {
	m.settings[key] = value
	return nil
}

func (m *memStore) GetAll() ([]models.SystemSetting, error) {
	out := make([]models.SystemSetting, 0, len(m.settings))
	for k, v := range m.settings {
		out = append(out, models.SystemSetting{Key: k, Value: v})
	}
	return out, nil
}

func (m *memStore) SeedDefaults(defaults map[string]string) error {
	for k, v := range defaults {
		if _, ok := m.settings[k]; !ok {
			m.settings[k] = v
		}
	}
	return nil
}

// Per-store views over memStore. The interfaces share method names (Create,
// GetByID, ListByUser), so each store gets a thin wrapper.

type fakeReferrals struct{ m *memStore }

func (f fakeReferrals) Create(ref *models.Referral) error { return f.m.CreateReferral(ref) }
func (f fakeReferrals) ListByReferrer(referrerID uint) ([]models.Referral, error) {
	return f.m.ListByReferrer(referrerID)
}

type fakeWithdrawals struct{ m *memStore }

func (f fakeWithdrawals) Create(w *models.Withdrawal) error { return f.m.CreateWithdrawal(w) }
func (f fakeWithdrawals) GetByID(id uint) (*models.Withdrawal, error) { return f.m.GetWithdrawal(id) }
func (f fakeWithdrawals) Update(w *models.Withdrawal) error { return f.m.UpdateWithdrawal(w) }
func (f fakeWithdrawals) List(status string) ([]models.Withdrawal, error) {
	return f.m.ListWithdrawals(status)
}
func (f fakeWithdrawals) ListByUser(userID uint) ([]models.Withdrawal, error) {
	return f.m.ListWithdrawalsByUser(userID)
}

type fakePayments struct{ m *memStore }

func (f fakePayments) Create(p *models.Payment) error { return f.m.CreatePayment(p) }
func (f fakePayments) GetByID(id uint) (*models.Payment, error) { return f.m.GetPayment(id) }
func (f fakePayments) Update(p *models.Payment) error { return f.m.UpdatePayment(p) }
func (f fakePayments) List(status string) ([]models.Payment, error) {
	return f.m.ListPayments(status)
}
func (f fakePayments) ListByUser(userID uint) ([]models.Payment, error) {
	return f.m.ListPaymentsByUser(userID)
}

type fakeAds struct{ m *memStore }

func (f fakeAds) Create(a *models.Advertisement) error { return f.m.CreateAdvertisement(a) }
func (f fakeAds) GetByID(id uint) (*models.Advertisement, error) {
	return f.m.GetAdvertisement(id)
}
func (f fakeAds) Update(a *models.Advertisement) error { return f.m.UpdateAdvertisement(a) }
func (f fakeAds) List(status string) ([]models.Advertisement, error) {
	return f.m.ListAdvertisements(status)
}
func (f fakeAds) ListByUser(userID uint) ([]models.Advertisement, error) {
	return f.m.ListAdvertisementsByUser(userID)
}

type fakeProducts struct{ m *memStore }

func (f fakeProducts) Create(p *models.Product) error { return f.m.CreateProduct(p) }
func (f fakeProducts) GetByID(id uint) (*models.Product, error) { return f.m.GetProduct(id) }
func (f fakeProducts) UpdateFields(id uint, fields map[string]interface{}) (*models.Product, error) {
	return f.m.UpdateProductFields(id, fields)
}
func (f fakeProducts) List(category string) ([]models.Product, error) {
	return f.m.ListProducts(category)
}

type fakeOrders struct{ m *memStore }

func (f fakeOrders) CreateWithItems(order *models.Order, items []models.OrderItem, debit *models.Transaction) error {
	return f.m.CreateWithItems(order, items, debit)
}
func (f fakeOrders) GetByID(id uint) (*models.Order, error) { return f.m.GetOrder(id) }
func (f fakeOrders) Items(orderID uint) ([]models.OrderItem, error) {
	return f.m.Items(orderID)
}
func (f fakeOrders) ListByUser(userID uint) ([]models.Order, error) {
	return f.m.ListOrdersByUser(userID)
}
func (f fakeOrders) List(status string) ([]models.Order, error) { return f.m.ListOrders(status) }
func (f fakeOrders) UpdateStatus(id uint, status string) (*models.Order, error) {
	return f.m.UpdateOrderStatus(id, status)
}

type fakeNotifications struct{ m *memStore }

func (f fakeNotifications) Create(n *models.Notification) error { return f.m.CreateNotification(n) }
func (f fakeNotifications) ListForUser(userID uint) ([]models.Notification, error) {
	return f.m.ListNotificationsForUser(userID)
}
func (f fakeNotifications) MarkRead(id uint) error { return f.m.MarkRead(id) }

// testEnv wires the full service graph over one memStore.
type testEnv struct {
	store       *memStore
	ledger      *LedgerService
	settings    *SettingsService
	notifier    *NotificationService
	referrals   *ReferralService
	auth        *AuthService
	bonus       *BonusService
	withdrawals *WithdrawalService
	payments    *PaymentService
	orders      *OrderService
	ads         *AdvertisementService
}

func newTestEnv() *testEnv {
	m := newMemStore()
	_ = m.SeedDefaults(domain.DefaultSettings())
	log := logger.New("test")
	ledger := NewLedgerService(m)
	settings := NewSettingsService(m)
	notifier := NewNotificationService(fakeNotifications{m}, nil, log)
	referrals := NewReferralService(m, fakeReferrals{m}, ledger, settings, log)
	cfg := &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:  "test-access",
			RefreshSecret: "test-refresh",
			AccessExpiry:  time.Minute,
			RefreshExpiry: time.Hour,
			Issuer:        "test",
		},
	}
	return &testEnv{
		store:       m,
		ledger:      ledger,
		settings:    settings,
		notifier:    notifier,
		referrals:   referrals,
		auth:        NewAuthService(cfg, m, referrals),
		bonus:       NewBonusService(m, ledger, settings),
		withdrawals: NewWithdrawalService(m, fakeWithdrawals{m}, ledger, settings, notifier),
		payments:    NewPaymentService(m, fakePayments{m}, ledger, settings, notifier),
		orders:      NewOrderService(m, fakeProducts{m}, fakeOrders{m}, ledger, notifier),
		ads:         NewAdvertisementService(m, fakeAds{m}, ledger, notifier),
	}
}

// addUser inserts a user directly into the store and returns its id.
func (e *testEnv) addUser(u models.User) uint {
	if u.ContactGainStatus == "" {
		u.ContactGainStatus = domain.ContactGainInactive
	}
	_ = e.store.Create(&u)
	return u.ID
}

// checkLedger fails the test when a user's balance and transaction rows
// disagree.
func (e *testEnv) checkLedger(t testing.TB, userID uint) {
	t.Helper()
	u, err := e.store.GetByID(userID)
	if err != nil {
		t.Fatalf("user %d: %v", userID, err)
	}
	if sum := e.store.sumTransactions(userID); sum != u.Balance {
		t.Fatalf("ledger mismatch for user %d: balance=%d sum(transactions)=%d", userID, u.Balance, sum)
	}
}

// checkLedgerFrom is checkLedger for users whose starting balance was seeded
// directly rather than credited through the ledger.
func (e *testEnv) checkLedgerFrom(t testing.TB, userID uint, seeded int64) {
	t.Helper()
	u, err := e.store.GetByID(userID)
	if err != nil {
		t.Fatalf("user %d: %v", userID, err)
	}
	if sum := e.store.sumTransactions(userID); seeded+sum != u.Balance {
		t.Fatalf("ledger mismatch for user %d: balance=%d seeded=%d sum(transactions)=%d", userID, u.Balance, seeded, sum)
	}
}
