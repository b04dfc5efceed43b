package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusConfirmed is the only status an order ever has: there is no
// cancellation or fulfillment state machine in this service.
const StatusConfirmed = "confirmed"

type Order struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerName string             `json:"customer_name" bson:"customer_name"`
	Phone        string             `json:"phone" bson:"phone"`
	SlotID       string             `json:"slot_id" bson:"slot_id"`
	Items        []Item             `json:"items" bson:"items"`
	Note         string             `json:"note,omitempty" bson:"note,omitempty"`
	Total        float64            `json:"total" bson:"total"`
	Status       string             `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// Item snapshots name, unit and price from the product at placement
// time so later catalog edits never alter historical orders.
type Item struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Unit      string  `json:"unit" bson:"unit"`
	Price     float64 `json:"price" bson:"price"`
	Qty       int     `json:"qty" bson:"qty"`
	LineTotal float64 `json:"line_total" bson:"line_total"`
}
