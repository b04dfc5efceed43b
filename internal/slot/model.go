package slot

import "go.mongodb.org/mongo-driver/bson/primitive"

// Slot is a bounded-capacity pickup window. Booked only ever moves up,
// one unit per placed order.
type Slot struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Label    string             `json:"label" bson:"label"`
	Capacity int                `json:"capacity" bson:"capacity"`
	Booked   int                `json:"booked" bson:"booked"`
}

// Available is capacity minus booked, clamped at zero: an over-booked
// slot still reports zero, never a negative number.
func (s Slot) Available() int {
	if a := s.Capacity - s.Booked; a > 0 {
		return a
	}
	return 0
}
