package product

import "context"

// DemoCatalog is the fixed catalog inserted by /seed.
func DemoCatalog() []Product {
	return []Product{
		{Name: "Bananas", Price: 0.79, Unit: "each", Stock: 200, Category: "Produce", InStock: true,
			Image: "https://images.unsplash.com/photo-1571772996211-2f02c9727629?w=400&q=80"},
		{Name: "Milk", Price: 2.49, Unit: "1L", Stock: 120, Category: "Dairy", InStock: true,
			Image: "https://images.unsplash.com/photo-1580910051074-3eb694886505?w=400&q=80"},
		{Name: "Bread", Price: 1.99, Unit: "loaf", Stock: 80, Category: "Bakery", InStock: true,
			Image: "https://images.unsplash.com/photo-1542838132-92c53300491e?w=400&q=80"},
		{Name: "Eggs", Price: 3.49, Unit: "12", Stock: 90, Category: "Dairy", InStock: true,
			Image: "https://images.unsplash.com/photo-1517959105821-eaf2591984dd?w=400&q=80"},
	}
}

// Seed inserts the demo catalog only when the collection is empty.
// It reports whether anything was written.
func Seed(ctx context.Context, r Repository) (bool, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := r.InsertMany(ctx, DemoCatalog()); err != nil {
		return false, err
	}
	return true, nil
}
