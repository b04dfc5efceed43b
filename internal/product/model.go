package product

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a catalog entry. Records are seeded once and never updated
// by the service, order items snapshot the fields they need.
type Product struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Price    float64            `json:"price" bson:"price"`
	Unit     string             `json:"unit" bson:"unit"`
	Stock    int                `json:"stock" bson:"stock"`
	Image    string             `json:"image,omitempty" bson:"image,omitempty"`
	Category string             `json:"category,omitempty" bson:"category,omitempty"`
	InStock  bool               `json:"in_stock" bson:"in_stock"`
}
