// Package commit holds the one implementation of the order-commit transaction.
// Both the remote-backed path and the local fallback path persist what Apply
// computes; only the storage differs. Keeping the business logic here is what
// stops the two paths from drifting apart.
package commit

import (
	"go-retail-crm/internal/model"
)

// Result is the outcome of applying an order against the current collections.
// Products, Customers and Orders are the full post-commit collections (for
// whole-snapshot stores); ChangedProducts and ChangedCustomer carry only the
// records the commit touched (for upsert-by-id stores).
type Result struct {
	Order     model.Order
	Products  []model.Product
	Customers []model.Customer
	Orders    []model.Order

	ChangedProducts []model.Product
	ChangedCustomer *model.Customer
}

// Apply runs the commit transaction against an in-memory snapshot and returns
// the updated state. The input snapshot is not mutated.
//
// Effects, in order of intent:
//  1. The order is prepended to the order collection (newest first).
//  2. Every item deducts its quantity from the matching product's stock,
//     clamped at zero. Items referencing unknown products are skipped.
//  3. A resolvable customer is credited with the order total and one loyalty
//     point per whole currency unit. Guest or unknown customer ids are a no-op.
//
// TotalAmount is trusted as computed by the caller; Apply does not recompute
// or verify it against the items.
func Apply(snap model.Snapshot, order model.Order) Result {
	res := Result{
		Order:  order,
		Orders: prepend(order, snap.Orders),
	}

	res.Products = make([]model.Product, len(snap.Products))
	copy(res.Products, snap.Products)

	changed := map[string]int{} // product id -> index in res.Products
	for _, item := range order.Items {
		for i := range res.Products {
			if res.Products[i].ID != item.ProductID {
				continue
			}
			res.Products[i].Quantity = deduct(res.Products[i].Quantity, item.Quantity)
			changed[item.ProductID] = i
			break
		}
	}
	for _, item := range order.Items {
		// preserve item order, one entry per product
		if i, ok := changed[item.ProductID]; ok {
			res.ChangedProducts = append(res.ChangedProducts, res.Products[i])
			delete(changed, item.ProductID)
		}
	}

	res.Customers = make([]model.Customer, len(snap.Customers))
	copy(res.Customers, snap.Customers)

	if order.CustomerID != "" {
		for i := range res.Customers {
			if res.Customers[i].ID != order.CustomerID {
				continue
			}
			res.Customers[i].TotalSpent = res.Customers[i].TotalSpent.Add(order.TotalAmount)
			res.Customers[i].LoyaltyPoints += LoyaltyPoints(order)
			credited := res.Customers[i]
			res.ChangedCustomer = &credited
			break
		}
	}

	return res
}

// LoyaltyPoints returns the points an order accrues: one per whole currency
// unit of the total.
func LoyaltyPoints(order model.Order) int {
	return int(order.TotalAmount.Floor().IntPart())
}

// deduct clamps at zero: a commit never drives stock negative.
func deduct(stock, qty int) int {
	if qty >= stock {
		return 0
	}
	return stock - qty
}

func prepend(order model.Order, orders []model.Order) []model.Order {
	out := make([]model.Order, 0, len(orders)+1)
	out = append(out, order)
	return append(out, orders...)
}
