package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"go-retail-crm/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// remoteStub mimics the remote persistence service contract: read-all and
// upsert-by-id for products and customers, append and list-newest-first for
// orders.
type remoteStub struct {
	mu        sync.Mutex
	products  []model.Product
	customers []model.Customer
	orders    []model.Order
}

func (r *remoteStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, req *http.Request) {
		r.mu.Lock()
		defer r.mu.Unlock()
		switch req.Method {
		case http.MethodHead:
			w.WriteHeader(http.StatusOK)
		case http.MethodGet:
			json.NewEncoder(w).Encode(r.products)
		case http.MethodPost:
			var p model.Product
			json.NewDecoder(req.Body).Decode(&p)
			replaced := false
			for i := range r.products {
				if r.products[i].ID == p.ID {
					r.products[i] = p
					replaced = true
				}
			}
			if !replaced {
				r.products = append(r.products, p)
			}
			json.NewEncoder(w).Encode(p)
		}
	})
	mux.HandleFunc("/products/", func(w http.ResponseWriter, req *http.Request) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if req.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		id := strings.TrimPrefix(req.URL.Path, "/products/")
		kept := r.products[:0]
		for _, p := range r.products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		r.products = kept
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/customers", func(w http.ResponseWriter, req *http.Request) {
		r.mu.Lock()
		defer r.mu.Unlock()
		switch req.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(r.customers)
		case http.MethodPost:
			var c model.Customer
			json.NewDecoder(req.Body).Decode(&c)
			replaced := false
			for i := range r.customers {
				if r.customers[i].ID == c.ID {
					r.customers[i] = c
					replaced = true
				}
			}
			if !replaced {
				r.customers = append(r.customers, c)
			}
			json.NewEncoder(w).Encode(c)
		}
	})
	mux.HandleFunc("/orders", func(w http.ResponseWriter, req *http.Request) {
		r.mu.Lock()
		defer r.mu.Unlock()
		switch req.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(r.orders)
		case http.MethodPost:
			var o model.Order
			json.NewDecoder(req.Body).Decode(&o)
			r.orders = append([]model.Order{o}, r.orders...)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(o)
		}
	})
	return mux
}

func newFallbackFixture(t *testing.T, baseURL string) *FallbackStore {
	t.Helper()
	remote := NewRemoteStore(baseURL, time.Second, zerolog.Nop())
	return NewFallbackStore(remote, newTestLocalStore(t), zerolog.Nop())
}

func deadServerURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return srv.URL
}

func testOrder() model.Order {
	return model.Order{
		ID:           "ORD-2001",
		CustomerID:   "C001",
		CustomerName: "John Doe",
		Items: []model.OrderItem{
			{ProductID: "P001", Name: "Organic Avocados", Quantity: 4, Price: decimal.NewFromFloat(1.50)},
		},
		TotalAmount:   decimal.NewFromFloat(6.00),
		Status:        model.OrderPending,
		OrderDate:     time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		PaymentMethod: model.PaymentCard,
	}
}

func TestReadsPreferRemote(t *testing.T) {
	stub := &remoteStub{products: []model.Product{{ID: "R001", Name: "Remote Only"}}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	store := newFallbackFixture(t, srv.URL)

	products, err := store.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "R001", products[0].ID)
}

func TestReadsFallBackToLocalSeeds(t *testing.T) {
	store := newFallbackFixture(t, deadServerURL(t))

	products, err := store.Products(context.Background())
	require.NoError(t, err, "degradation must not surface as an error")
	assert.Len(t, products, 3, "local seed data served while remote is down")
}

func TestCommitOrderFallsBackToLocal(t *testing.T) {
	store := newFallbackFixture(t, deadServerURL(t))
	ctx := context.Background()

	_, err := store.CommitOrder(ctx, testOrder())
	require.NoError(t, err)

	products, err := store.local.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, 116, products[0].Quantity)

	customers, err := store.local.Customers(ctx)
	require.NoError(t, err)
	assert.True(t, customers[0].TotalSpent.Equal(decimal.NewFromFloat(456.75)))
	assert.Equal(t, 1256, customers[0].LoyaltyPoints)
}

// Committing the same order against the same starting snapshot must end in the
// same state whether it runs through the remote service or the local store.
func TestOnlineOfflineCommitEquivalence(t *testing.T) {
	ctx := context.Background()

	stub := &remoteStub{
		products:  SeedProducts(),
		customers: SeedCustomers(),
		orders:    SeedOrders(),
	}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	online := newFallbackFixture(t, srv.URL)
	offline := newFallbackFixture(t, deadServerURL(t))

	_, err := online.CommitOrder(ctx, testOrder())
	require.NoError(t, err)
	_, err = offline.CommitOrder(ctx, testOrder())
	require.NoError(t, err)

	onlineProducts, err := online.Products(ctx)
	require.NoError(t, err)
	offlineProducts, err := offline.Products(ctx)
	require.NoError(t, err)
	require.Len(t, offlineProducts, len(onlineProducts))
	for i := range onlineProducts {
		assert.Equal(t, onlineProducts[i].ID, offlineProducts[i].ID)
		assert.Equal(t, onlineProducts[i].Quantity, offlineProducts[i].Quantity)
	}

	onlineCustomers, err := online.Customers(ctx)
	require.NoError(t, err)
	offlineCustomers, err := offline.Customers(ctx)
	require.NoError(t, err)
	require.Len(t, offlineCustomers, len(onlineCustomers))
	for i := range onlineCustomers {
		assert.Equal(t, onlineCustomers[i].LoyaltyPoints, offlineCustomers[i].LoyaltyPoints)
		assert.True(t, onlineCustomers[i].TotalSpent.Equal(offlineCustomers[i].TotalSpent),
			"customer %s: %s vs %s", onlineCustomers[i].ID, onlineCustomers[i].TotalSpent, offlineCustomers[i].TotalSpent)
	}

	onlineOrders, err := online.Orders(ctx)
	require.NoError(t, err)
	offlineOrders, err := offline.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, offlineOrders, len(onlineOrders))
	assert.Equal(t, "ORD-2001", onlineOrders[0].ID)
	assert.Equal(t, "ORD-2001", offlineOrders[0].ID)
}

func TestProbeTracksOfflineState(t *testing.T) {
	stub := &remoteStub{}
	srv := httptest.NewServer(stub.handler())

	store := newFallbackFixture(t, srv.URL)
	ctx := context.Background()

	assert.True(t, store.Probe(ctx))
	assert.False(t, store.Offline())

	srv.Close()
	assert.False(t, store.Probe(ctx))
	assert.True(t, store.Offline())
}

func TestSaveProductFallsBackToLocal(t *testing.T) {
	store := newFallbackFixture(t, deadServerURL(t))
	ctx := context.Background()

	p := model.Product{ID: "P050", Name: "Sparkling Water", Category: model.CategoryBeverages, Price: decimal.NewFromFloat(0.99), Quantity: 200}
	saved, err := store.SaveProduct(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "P050", saved.ID)

	products, err := store.local.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)
}
