package api

import (
	"encoding/json" // JSON decoding with per-field control
	"net/http"      // HTTP status codes

	"github.com/mogzealio/rest-api-v3-heroku/internal/domain" // Domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// ItemRequest is the create/update payload. Pointer fields so a missing
// field and a zero value are distinguishable.
type ItemRequest struct {
	Price   *float64 `json:"price"`    // Item price, required
	StoreID *uint    `json:"store_id"` // Owning store, required
}

// itemFieldMessages maps payload fields to their validation messages
var itemFieldMessages = map[string]string{
	"price":    "Every item needs a price.",
	"store_id": "Every item needs a store id.",
}

// bindItemPayload decodes and validates the item payload. Returns the
// failing field's message when a required field is missing or malformed.
// Validation runs before any persistence operation.
func bindItemPayload(c *gin.Context) (*ItemRequest, gin.H) {
	var req ItemRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		// A type mismatch names the offending field; anything else is
		// reported against price, the first declared field
		if ute, ok := err.(*json.UnmarshalTypeError); ok {
			if msg, found := itemFieldMessages[ute.Field]; found {
				return nil, gin.H{ute.Field: msg}
			}
		}
		return nil, gin.H{"price": itemFieldMessages["price"]}
	}
	if req.Price == nil {
		return nil, gin.H{"price": itemFieldMessages["price"]}
	}
	if req.StoreID == nil {
		return nil, gin.H{"store_id": itemFieldMessages["store_id"]}
	}
	return &req, nil
}

// GetItemHandler returns a single item by name
func GetItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := domain.FindItemByName(db, c.Param("name"))
		if err != nil || item == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found."})
			return
		}
		c.JSON(http.StatusOK, item.JSON())
	}
}

// CreateItemHandler creates a new item. The existence check runs before the
// payload is parsed: a conflict on the name is reported even when the body
// is malformed.
func CreateItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		// FIRST check the name is free, since item names are unique
		existing, err := domain.FindItemByName(db, name)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"item":  name,
				"error": err.Error(),
			}).Error("Item lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred inserting the item."})
			return
		}
		if existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "an item with name " + name + " already exists."})
			return
		}
		// THEN parse the payload - no point decoding it if the check fails
		req, fieldErr := bindItemPayload(c)
		if fieldErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": fieldErr})
			return
		}
		item := domain.Item{Name: name, Price: *req.Price, StoreID: *req.StoreID}
		// The insert fails at the database if store_id references no store
		if err := item.Save(db); err != nil {
			logrus.WithFields(logrus.Fields{
				"item":     name,
				"store_id": *req.StoreID,
				"error":    err.Error(),
			}).Error("Failed to insert item")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred inserting the item."})
			return
		}
		c.JSON(http.StatusCreated, item.JSON())
	}
}

// UpdateItemHandler creates or overwrites an item (upsert). Both branches
// need the payload, so it is parsed up front.
func UpdateItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		req, fieldErr := bindItemPayload(c)
		if fieldErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": fieldErr})
			return
		}
		item, err := domain.FindItemByName(db, name)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"item":  name,
				"error": err.Error(),
			}).Error("Item lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred updating the item."})
			return
		}
		if item == nil {
			item = &domain.Item{Name: name, Price: *req.Price, StoreID: *req.StoreID}
		} else {
			item.Price = *req.Price
			item.StoreID = *req.StoreID
		}
		if err := item.Save(db); err != nil {
			logrus.WithFields(logrus.Fields{
				"item":     name,
				"store_id": *req.StoreID,
				"error":    err.Error(),
			}).Error("Failed to save item")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred updating the item."})
			return
		}
		c.JSON(http.StatusOK, item.JSON())
	}
}

// DeleteItemHandler removes an item by name. Idempotent: the response is
// the same whether or not the item existed.
func DeleteItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		item, err := domain.FindItemByName(db, name)
		if err == nil && item != nil {
			if err := item.Delete(db); err != nil {
				logrus.WithFields(logrus.Fields{
					"item":  name,
					"error": err.Error(),
				}).Error("Failed to delete item")
				c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred deleting the item."})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
	}
}

// ListItemsHandler returns every item
func ListItemsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := domain.ListItems(db)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to list items")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred fetching the items."})
			return
		}
		out := make([]domain.ItemJSON, 0, len(items))
		for i := range items {
			out = append(out, items[i].JSON())
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}
