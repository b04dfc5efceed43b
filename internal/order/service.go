package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MikeMC777/grocery-pickup/internal/product"
	"github.com/MikeMC777/grocery-pickup/internal/slot"
)

var (
	ErrInvalidID       = errors.New("invalid ID format")
	ErrSlotNotFound    = errors.New("slot not found")
	ErrSlotFull        = errors.New("selected slot is full")
	ErrProductNotFound = errors.New("product not found")
)

// Service implements order placement: validate the slot, verify every
// product, compute the total server-side, persist the order and bump
// the slot's booked counter. All validation happens before any write,
// a failed request leaves the store untouched.
type Service struct {
	products product.Repository
	slots    slot.Repository
	orders   Repository
}

func NewService(products product.Repository, slots slot.Repository, orders Repository) *Service {
	return &Service{products: products, slots: slots, orders: orders}
}

func (s *Service) Place(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	slotID, err := primitive.ObjectIDFromHex(req.SlotID)
	if err != nil {
		return nil, ErrInvalidID
	}

	sl, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slot.ErrNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	// Each order consumes exactly one capacity unit, regardless of how
	// many items it has.
	if sl.Available() <= 0 {
		return nil, ErrSlotFull
	}

	total := decimal.Zero
	items := make([]Item, 0, len(req.Items))
	for _, it := range req.Items {
		pid, err := primitive.ObjectIDFromHex(it.ProductID)
		if err != nil {
			return nil, ErrInvalidID
		}
		p, err := s.products.GetInStock(ctx, pid)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrProductNotFound, it.ProductID)
			}
			return nil, err
		}
		line := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(it.Qty)))
		total = total.Add(line)
		items = append(items, Item{
			ProductID: it.ProductID,
			Name:      p.Name,
			Unit:      p.Unit,
			Price:     p.Price,
			Qty:       it.Qty,
			LineTotal: line.InexactFloat64(),
		})
	}

	o := &Order{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		SlotID:       req.SlotID,
		Items:        items,
		Note:         req.Note,
		Total:        total.Round(2).InexactFloat64(),
		Status:       StatusConfirmed,
		CreatedAt:    time.Now().UTC(),
	}
	id, err := s.orders.Insert(ctx, o)
	if err != nil {
		return nil, err
	}

	if err := s.slots.IncrementBooked(ctx, slotID); err != nil {
		return nil, err
	}

	return &CreateOrderResponse{OrderID: id.Hex(), Total: o.Total, Status: o.Status}, nil
}
