package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go-retail-crm/internal/commit"
	"go-retail-crm/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection keys in the local store.
const (
	keyProducts  = "products"
	keyCustomers = "customers"
	keyOrders    = "orders"
	keySession   = "session"
)

// collection is one locally persisted collection snapshot. The store is
// key-addressable only: read the whole collection, mutate, write it back.
type collection struct {
	Key       string `gorm:"primaryKey;type:varchar(32)"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// LocalStore persists the three collections as whole-JSON snapshots. It is
// the offline fallback: every piece of business logic that runs against it
// comes from the commit package, never from here.
type LocalStore struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewLocalStore(db *gorm.DB) *LocalStore {
	return &LocalStore{db: db}
}

// Migrate creates the snapshot table and seeds any collection that has never
// been written, so a first run offline still has data to work with.
func (s *LocalStore) Migrate() error {
	if err := s.db.AutoMigrate(&collection{}); err != nil {
		return fmt.Errorf("migrating local store: %w", err)
	}

	seeds := map[string]interface{}{
		keyProducts:  SeedProducts(),
		keyCustomers: SeedCustomers(),
		keyOrders:    SeedOrders(),
	}
	for key, data := range seeds {
		var existing collection
		err := s.db.First(&existing, "key = ?", key).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := s.write(key, data); err != nil {
			return fmt.Errorf("seeding %s: %w", key, err)
		}
	}
	return nil
}

func (s *LocalStore) Products(ctx context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readCollection[model.Product](s, keyProducts)
}

func (s *LocalStore) SaveProduct(ctx context.Context, p model.Product) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := readCollection[model.Product](s, keyProducts)
	if err != nil {
		return model.Product{}, err
	}
	updated := false
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			updated = true
			break
		}
	}
	if !updated {
		products = append(products, p)
	}
	return p, s.write(keyProducts, products)
}

func (s *LocalStore) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := readCollection[model.Product](s, keyProducts)
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.write(keyProducts, kept)
}

func (s *LocalStore) Customers(ctx context.Context) ([]model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readCollection[model.Customer](s, keyCustomers)
}

func (s *LocalStore) SaveCustomer(ctx context.Context, c model.Customer) (model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := readCollection[model.Customer](s, keyCustomers)
	if err != nil {
		return model.Customer{}, err
	}
	updated := false
	for i := range customers {
		if customers[i].ID == c.ID {
			customers[i] = c
			updated = true
			break
		}
	}
	if !updated {
		customers = append(customers, c)
	}
	return c, s.write(keyCustomers, customers)
}

func (s *LocalStore) Orders(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readCollection[model.Order](s, keyOrders)
}

// CommitOrder applies the shared commit transaction to the local snapshots.
// Each collection write completes before the next begins; there is no
// cross-collection transaction boundary, which is accepted for the
// single-writer offline path.
func (s *LocalStore) CommitOrder(ctx context.Context, o model.Order) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.snapshot()
	if err != nil {
		return model.Order{}, err
	}

	res := commit.Apply(snap, o)

	if err := s.write(keyOrders, res.Orders); err != nil {
		return model.Order{}, err
	}
	if err := s.write(keyProducts, res.Products); err != nil {
		return model.Order{}, err
	}
	if err := s.write(keyCustomers, res.Customers); err != nil {
		return model.Order{}, err
	}
	return res.Order, nil
}

// Snapshot reads all three collections. Held under the lock so a commit in
// progress is never observed halfway.
func (s *LocalStore) Snapshot(ctx context.Context) (model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *LocalStore) snapshot() (model.Snapshot, error) {
	products, err := readCollection[model.Product](s, keyProducts)
	if err != nil {
		return model.Snapshot{}, err
	}
	customers, err := readCollection[model.Customer](s, keyCustomers)
	if err != nil {
		return model.Snapshot{}, err
	}
	orders, err := readCollection[model.Order](s, keyOrders)
	if err != nil {
		return model.Snapshot{}, err
	}
	return model.Snapshot{Products: products, Customers: customers, Orders: orders}, nil
}

// SaveSession persists the current user record; Session and ClearSession read
// and drop it. The session is local-only state, never sent to the remote
// service.
func (s *LocalStore) SaveSession(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(keySession, user)
}

func (s *LocalStore) Session() (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var row collection
	err := s.db.First(&row, "key = ?", keySession).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := json.Unmarshal(row.Data, &user); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return &user, nil
}

func (s *LocalStore) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Delete(&collection{}, "key = ?", keySession).Error
}

func readCollection[T any](s *LocalStore, key string) ([]T, error) {
	var row collection
	err := s.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(row.Data, &items); err != nil {
		return nil, fmt.Errorf("decoding %s snapshot: %w", key, err)
	}
	return items, nil
}

func (s *LocalStore) write(key string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding %s snapshot: %w", key, err)
	}
	row := collection{Key: key, Data: raw, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
}
