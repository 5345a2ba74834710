package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kioskworks/kiosk-backend/internal/menu"
	"github.com/kioskworks/kiosk-backend/internal/order"
	"github.com/kioskworks/kiosk-backend/internal/storage"
	"github.com/kioskworks/kiosk-backend/internal/validation"
)

// Services are injected through these interfaces so tests can stub them.
type menuService interface {
	Categories(ctx context.Context) ([]menu.Category, error)
	CategoryItems(ctx context.Context, categoryID int) ([]menu.Item, error)
	Item(ctx context.Context, itemID int) (*menu.Item, error)
	FilteredItems(ctx context.Context, filter *menu.ItemFilter) ([]menu.Item, error)
	CountItems(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
}

type orderService interface {
	Create(ctx context.Context, o *order.Order) (string, error)
	Orders(ctx context.Context) ([]order.Order, error)
	Order(ctx context.Context, id string) (*order.Order, error)
}

type imageResolver interface {
	Resolve(name string) (string, error)
}

// HTTPError is the standard JSON error body.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

// MenuSummary reports catalog cardinalities.
// swagger:model
type MenuSummary struct {
	MenuItems  int64 `json:"menu_items" example:"42"`
	Categories int64 `json:"categories" example:"6"`
}

// writeError maps the error taxonomy onto status codes: request validation
// errors are the client's fault, everything else is a server failure.
// Storage errors are checked first because a corrupt stored document wraps
// the validation failure that exposed it, and that is still a server problem.
func writeError(c *gin.Context, err error) {
	var serr *storage.Error
	if errors.As(err, &serr) {
		c.JSON(http.StatusInternalServerError, HTTPError{Error: serr.Error()})
		return
	}
	var verr validation.Error
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, HTTPError{Error: verr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, HTTPError{Error: err.Error()})
}

// readMenuHandler godoc
// @Summary  Menu summary
// @Produce  json
// @Success  200 {object} MenuSummary
// @Failure  500 {object} HTTPError
// @Router   /menu [get]
func readMenuHandler(ms menuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemsCount, err := ms.CountItems(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		categoriesCount, err := ms.CountCategories(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, MenuSummary{MenuItems: itemsCount, Categories: categoriesCount})
	}
}

// listCategoriesHandler godoc
// @Summary  List categories
// @Produce  json
// @Success  200 {object} map[string][]menu.Category
// @Failure  500 {object} HTTPError
// @Router   /menu/categories [get]
func listCategoriesHandler(ms menuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := ms.Categories(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		if categories == nil {
			categories = []menu.Category{}
		}
		c.JSON(http.StatusOK, gin.H{"data": categories})
	}
}

// categoryItemsHandler godoc
// @Summary  List items of a category
// @Param    category_id path int true "Category ID"
// @Produce  json
// @Success  200 {object} map[string][]menu.Item
// @Failure  400 {object} HTTPError
// @Router   /menu/categories/{category_id} [get]
func categoryItemsHandler(ms menuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.Atoi(c.Param("category_id"))
		if err != nil {
			writeError(c, validation.Error{Field: "category_id", Message: "must be an integer"})
			return
		}
		items, err := ms.CategoryItems(c.Request.Context(), categoryID)
		if err != nil {
			writeError(c, err)
			return
		}
		if items == nil {
			items = []menu.Item{}
		}
		c.JSON(http.StatusOK, gin.H{"data": items})
	}
}

// filteredItemsHandler godoc
// @Summary  Search items
// @Param    name        query string false "case-insensitive name match"
// @Param    category_id query int    false "exact category match"
// @Param    price_from  query number false "inclusive lower price bound"
// @Param    price_to    query number false "inclusive upper price bound"
// @Produce  json
// @Success  200 {object} map[string][]menu.Item
// @Failure  400 {object} HTTPError
// @Router   /menu/item [get]
func filteredItemsHandler(ms menuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter menu.ItemFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			writeError(c, validation.Error{Field: "filter", Message: err.Error()})
			return
		}
		items, err := ms.FilteredItems(c.Request.Context(), &filter)
		if err != nil {
			writeError(c, err)
			return
		}
		if items == nil {
			items = []menu.Item{}
		}
		c.JSON(http.StatusOK, gin.H{"data": items})
	}
}

// getItemHandler godoc
// @Summary  Get one item
// @Param    item_id path int true "Item ID"
// @Produce  json
// @Success  200 {object} map[string]menu.Item
// @Failure  404 {object} HTTPError
// @Router   /menu/item/{item_id} [get]
func getItemHandler(ms menuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("item_id"))
		if err != nil {
			writeError(c, validation.Error{Field: "item_id", Message: "must be an integer"})
			return
		}
		item, err := ms.Item(c.Request.Context(), itemID)
		if err != nil {
			writeError(c, err)
			return
		}
		if item == nil {
			c.JSON(http.StatusNotFound, HTTPError{Error: "item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": item})
	}
}

// createOrderHandler godoc
// @Summary  Create an order
// @Accept   json
// @Param    order body order.Order true "order without id"
// @Produce  json
// @Success  201 {object} map[string]string
// @Failure  400 {object} HTTPError
// @Router   /order [post]
func createOrderHandler(os orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var o order.Order
		if err := c.ShouldBindJSON(&o); err != nil {
			writeError(c, validation.Error{Field: "order", Message: err.Error()})
			return
		}
		id, err := os.Create(c.Request.Context(), &o)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"status": "success", "order_id": id})
	}
}

// listOrdersHandler godoc
// @Summary  List orders
// @Produce  json
// @Success  200 {object} map[string][]order.Order
// @Failure  500 {object} HTTPError
// @Router   /order [get]
func listOrdersHandler(os orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := os.Orders(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		if orders == nil {
			orders = []order.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"data": orders})
	}
}

// getOrderHandler godoc
// @Summary  Get one order
// @Param    order_id path string true "Order ID"
// @Produce  json
// @Success  200 {object} map[string]order.Order
// @Failure  404 {object} HTTPError
// @Router   /order/{order_id} [get]
func getOrderHandler(os orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := os.Order(c.Request.Context(), c.Param("order_id"))
		if err != nil {
			writeError(c, err)
			return
		}
		if o == nil {
			c.JSON(http.StatusNotFound, HTTPError{Error: "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": o})
	}
}

// getImageHandler godoc
// @Summary  Serve an item image
// @Param    image query string true "image filename, .jpg only"
// @Produce  jpeg
// @Success  200
// @Failure  404 {object} HTTPError
// @Router   /image [get]
func getImageHandler(ir imageResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("image")
		if name == "" {
			writeError(c, validation.Error{Field: "image", Message: "image filename is required"})
			return
		}
		if !strings.HasSuffix(name, ".jpg") {
			writeError(c, validation.Error{Field: "image", Message: "invalid image format, accepted format: .jpg"})
			return
		}
		path, err := ir.Resolve(name)
		if err != nil {
			c.JSON(http.StatusNotFound, HTTPError{Error: "image not found"})
			return
		}
		c.File(path)
	}
}
