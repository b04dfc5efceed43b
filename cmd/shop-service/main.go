package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/grocery-pickup/docs"
	"github.com/MikeMC777/grocery-pickup/internal/config"
	"github.com/MikeMC777/grocery-pickup/internal/httpx"
	"github.com/MikeMC777/grocery-pickup/internal/metrics"
	"github.com/MikeMC777/grocery-pickup/internal/mongox"
	"github.com/MikeMC777/grocery-pickup/internal/order"
	"github.com/MikeMC777/grocery-pickup/internal/product"
	"github.com/MikeMC777/grocery-pickup/internal/slot"
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
}

//	@title			Grocery Shop API
//	@version		1.0
//	@description	Backend for a grocery pickup storefront: catalog, pickup slots and order placement.
//	@BasePath		/
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := mongox.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	cancel()
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	log.Infof("connected to MongoDB, database %q", cfg.DatabaseName)

	products := product.NewMongoRepo(db)
	slots := slot.NewMongoRepo(db)
	orders := order.NewMongoRepo(db)
	svc := order.NewService(products, slots, orders)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestID())
	r.Use(httpx.Logger())
	r.Use(httpx.CORS())
	r.Use(metrics.PrometheusMiddleware("shop-service"))

	r.POST("/seed", seedHandler(products, slots))
	r.GET("/products", listProductsHandler(products))
	r.GET("/slots", listSlotsHandler(slots))
	r.POST("/orders", createOrderHandler(svc))
	r.GET("/test", testHandler(db))
	r.GET("/", rootHandler())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	go func() {
		log.Infof("shop-service listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	_ = db.Client().Disconnect(shutdownCtx)
}
