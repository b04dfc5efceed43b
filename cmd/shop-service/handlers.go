package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MikeMC777/grocery-pickup/internal/metrics"
	"github.com/MikeMC777/grocery-pickup/internal/order"
	"github.com/MikeMC777/grocery-pickup/internal/product"
	"github.com/MikeMC777/grocery-pickup/internal/slot"
)

// httpError represents a standard error in JSON.
// swagger:model
type httpError struct {
	// Error message
	// example: slot not found
	Error string `json:"error"`
}

// messageResponse wraps a human-readable confirmation.
// swagger:model
type messageResponse struct {
	Message string `json:"message"`
}

// slotView adds the derived availability to a slot.
// swagger:model
type slotView struct {
	slot.Slot
	Available int `json:"available"`
}

// seedHandler inserts the demo catalog and pickup slots, once.
//
//	@Summary		Seed demo data
//	@Description	Idempotent: inserts demo products and slots only into empty collections.
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	messageResponse
//	@Failure		500	{object}	httpError
//	@Router			/seed [post]
func seedHandler(products product.Repository, slots slot.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := product.Seed(c.Request.Context(), products); err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: "database not available"})
			return
		}
		if _, err := slot.Seed(c.Request.Context(), slots); err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: "database not available"})
			return
		}
		c.JSON(http.StatusOK, messageResponse{Message: "Seed complete"})
	}
}

// listProductsHandler returns the purchasable catalog.
//
//	@Summary	List in-stock products
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}		product.Product
//	@Failure	500	{object}	httpError
//	@Router		/products [get]
func listProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.ListInStock(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: "database not available"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// listSlotsHandler returns every pickup slot with its derived availability.
//
//	@Summary	List pickup slots
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}		slotView
//	@Failure	500	{object}	httpError
//	@Router		/slots [get]
func listSlotsHandler(repo slot.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		slots, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: "database not available"})
			return
		}
		out := make([]slotView, 0, len(slots))
		for _, s := range slots {
			out = append(out, slotView{Slot: s, Available: s.Available()})
		}
		c.JSON(http.StatusOK, out)
	}
}

// createOrderHandler places an order against a pickup slot.
//
//	@Summary		Place an order
//	@Description	Validates slot capacity and product availability, computes the total server-side.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		order.CreateOrderRequest	true	"order to place"
//	@Success		201		{object}	order.CreateOrderResponse
//	@Failure		400		{object}	httpError	"invalid id, malformed payload or slot full"
//	@Failure		404		{object}	httpError	"slot or product not found"
//	@Failure		500		{object}	httpError
//	@Router			/orders [post]
func createOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: "invalid request: " + err.Error()})
			return
		}

		res, err := svc.Place(c.Request.Context(), req)
		if err != nil {
			metrics.OrdersTotal.WithLabelValues("rejected").Inc()
			switch {
			case errors.Is(err, order.ErrInvalidID), errors.Is(err, order.ErrSlotFull):
				c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
			case errors.Is(err, order.ErrSlotNotFound), errors.Is(err, order.ErrProductNotFound):
				c.JSON(http.StatusNotFound, httpError{Error: err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, httpError{Error: "database not available"})
			}
			return
		}

		metrics.OrdersTotal.WithLabelValues(res.Status).Inc()
		c.JSON(http.StatusCreated, res)
	}
}

// diagResponse reports backend and database connectivity.
// swagger:model
type diagResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// testHandler is a connectivity diagnostic for the deployed stack.
//
//	@Summary	Backend and database diagnostic
//	@Tags		ops
//	@Produce	json
//	@Success	200	{object}	diagResponse
//	@Router		/test [get]
func testHandler(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := diagResponse{
			Backend:          "running",
			Database:         "not available",
			DatabaseURL:      "not set",
			DatabaseName:     "not set",
			ConnectionStatus: "not connected",
			Collections:      []string{},
		}
		if db == nil {
			c.JSON(http.StatusOK, res)
			return
		}
		if os.Getenv("DATABASE_URL") != "" {
			res.DatabaseURL = "set"
		}
		if os.Getenv("DATABASE_NAME") != "" {
			res.DatabaseName = "set"
		}
		res.Database = "available"
		res.ConnectionStatus = "connected"
		names, err := db.ListCollectionNames(c.Request.Context(), bson.M{})
		if err != nil {
			res.Database = "connected but error: " + err.Error()
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			res.Database = "connected and working"
			res.Collections = names
		}
		c.JSON(http.StatusOK, res)
	}
}

// rootHandler is the liveness probe.
//
//	@Summary	Liveness
//	@Tags		ops
//	@Produce	json
//	@Success	200	{object}	messageResponse
//	@Router		/ [get]
func rootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, messageResponse{Message: "Grocery Shop API running"})
	}
}
