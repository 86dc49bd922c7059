package domain

import (
	"errors" // For gorm.ErrRecordNotFound checks

	"gorm.io/gorm" // GORM ORM library
)

// Item Model
type Item struct {
	ID      uint    `gorm:"primaryKey" json:"id"` // Primary key
	Name    string  `gorm:"size:80" json:"name"`  // Uniqueness enforced by lookup-before-insert, not a constraint
	Price   float64 `json:"price"`                // Item price
	StoreID uint    `json:"store_id"`             // Foreign key to Store; the database rejects dangling references
	Store   *Store  `json:"-"`                    // Owning store relationship
}

// ItemJSON is the external representation of an item.
type ItemJSON struct {
	Name  string  `json:"name"`  // Item name
	Price float64 `json:"price"` // Item price
}

// JSON builds the item's external representation.
func (i *Item) JSON() ItemJSON {
	return ItemJSON{Name: i.Name, Price: i.Price}
}

// FindItemByName looks up an item by name.
// Returns (nil, nil) when no such item exists.
func FindItemByName(db *gorm.DB, name string) (*Item, error) {
	var item Item
	err := db.Where("name = ?", name).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Not found is not an error for callers
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems returns every item. Full-table scan, no paging.
func ListItems(db *gorm.DB) ([]Item, error) {
	var items []Item
	if err := db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save inserts or updates the item, covering both halves of the upsert.
func (i *Item) Save(db *gorm.DB) error {
	return db.Save(i).Error
}

// Delete removes the item row.
func (i *Item) Delete(db *gorm.DB) error {
	return db.Delete(i).Error
}
