package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/kioskworks/kiosk-backend/docs"
	"github.com/kioskworks/kiosk-backend/internal/config"
	"github.com/kioskworks/kiosk-backend/internal/httpx"
	"github.com/kioskworks/kiosk-backend/internal/images"
	"github.com/kioskworks/kiosk-backend/internal/menu"
	"github.com/kioskworks/kiosk-backend/internal/order"
	"github.com/kioskworks/kiosk-backend/internal/storage"
)

// newRouter wires the handlers onto a gin engine. Services come in as
// explicit arguments; there is no ambient global state.
func newRouter(ms menuService, os orderService, ir imageResolver) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	m := r.Group("/menu")
	{
		m.GET("", readMenuHandler(ms))
		m.GET("/categories", listCategoriesHandler(ms))
		m.GET("/categories/:category_id", categoryItemsHandler(ms))
		m.GET("/item", filteredItemsHandler(ms))
		m.GET("/item/:item_id", getItemHandler(ms))
	}

	o := r.Group("/order")
	{
		o.POST("", createOrderHandler(os))
		o.GET("", listOrdersHandler(os))
		o.GET("/:order_id", getOrderHandler(os))
	}

	r.GET("/image", getImageHandler(ir))
	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// @title        Kiosk API
// @version      1.0
// @description  Self-service kiosk backend: menu catalog, orders and images.
// @BasePath     /
func main() {
	cfg := config.Load()

	ctx := context.Background()
	store, err := storage.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDBName,
		time.Duration(cfg.ConnectTimeout)*time.Millisecond,
		time.Duration(cfg.SocketTimeout)*time.Millisecond)
	if err != nil {
		log.Fatalf("[main] mongo: %v", err)
	}
	defer func() { _ = store.Close(ctx) }()

	r := newRouter(
		menu.NewService(store),
		order.NewService(store),
		images.NewResolver(cfg.ImagesDir),
	)

	log.Printf("kiosk-api listening on %s", cfg.HTTPAddr)
	log.Fatal(r.Run(cfg.HTTPAddr))
}
