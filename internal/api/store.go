package api

import (
	"net/http" // HTTP status codes

	"github.com/mogzealio/rest-api-v3-heroku/internal/domain" // Domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// GetStoreHandler returns a single store with its items nested
func GetStoreHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := domain.FindStoreByName(db, c.Param("name"))
		if err != nil || store == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Store not found."})
			return
		}
		out, err := store.JSON(db)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"store": store.Name,
				"error": err.Error(),
			}).Error("Failed to load store items")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred fetching the store."})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// CreateStoreHandler creates a new, empty store. No request body is read;
// the name comes from the path.
func CreateStoreHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		// Check the name is free; uniqueness is application-level
		existing, err := domain.FindStoreByName(db, name)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"store": name,
				"error": err.Error(),
			}).Error("Store lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while creating the store."})
			return
		}
		if existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A store with name '" + name + "' already exists."})
			return
		}
		store := domain.Store{Name: name}
		if err := store.Save(db); err != nil {
			logrus.WithFields(logrus.Fields{
				"store": name,
				"error": err.Error(),
			}).Error("Failed to create store")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while creating the store."})
			return
		}
		// A new store has no items, so its JSON never needs the lazy query
		c.JSON(http.StatusCreated, domain.StoreJSON{Name: store.Name, Items: []domain.ItemJSON{}})
	}
}

// DeleteStoreHandler removes a store by name. Idempotent for a missing
// store; a store still referenced by items is rejected rather than letting
// the foreign key constraint surface as a 500.
func DeleteStoreHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		store, err := domain.FindStoreByName(db, name)
		if err == nil && store != nil {
			items, err := store.FindItems(db)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"store": name,
					"error": err.Error(),
				}).Error("Failed to check store items")
				c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred deleting the store."})
				return
			}
			if len(items) > 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Store cannot be deleted while items reference it."})
				return
			}
			if err := store.Delete(db); err != nil {
				logrus.WithFields(logrus.Fields{
					"store": name,
					"error": err.Error(),
				}).Error("Failed to delete store")
				c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred deleting the store."})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Store deleted."})
	}
}

// ListStoresHandler returns every store, each with its items nested
func ListStoresHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stores, err := domain.ListStores(db)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to list stores")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred fetching the stores."})
			return
		}
		out := make([]domain.StoreJSON, 0, len(stores))
		for i := range stores {
			js, err := stores[i].JSON(db)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"store": stores[i].Name,
					"error": err.Error(),
				}).Error("Failed to load store items")
				c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred fetching the stores."})
				return
			}
			out = append(out, js)
		}
		c.JSON(http.StatusOK, gin.H{"stores": out})
	}
}
