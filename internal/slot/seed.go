package slot

import "context"

// DemoSlots is the fixed set of pickup windows inserted by /seed.
func DemoSlots() []Slot {
	return []Slot{
		{Label: "Today 10:00–10:30", Capacity: 10, Booked: 0},
		{Label: "Today 10:30–11:00", Capacity: 10, Booked: 0},
		{Label: "Today 5:00–5:30", Capacity: 12, Booked: 0},
		{Label: "Tomorrow 10:00–10:30", Capacity: 10, Booked: 0},
		{Label: "Tomorrow 5:00–5:30", Capacity: 12, Booked: 0},
	}
}

// Seed inserts the demo slots only when the collection is empty.
// It reports whether anything was written.
func Seed(ctx context.Context, r Repository) (bool, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := r.InsertMany(ctx, DemoSlots()); err != nil {
		return false, err
	}
	return true, nil
}
