package domain

import (
	"errors" // For gorm.ErrRecordNotFound checks

	"gorm.io/gorm" // GORM ORM library
)

// Store Model
type Store struct {
	ID    uint   `gorm:"primaryKey" json:"id"` // Primary key
	Name  string `gorm:"size:80" json:"name"`  // Uniqueness enforced by lookup-before-insert, not a constraint
	Items []Item `json:"-"`                    // One-to-many relationship with Item
}

// StoreJSON is the external representation of a store, nesting its items.
type StoreJSON struct {
	Name  string     `json:"name"`  // Store name
	Items []ItemJSON `json:"items"` // Items belonging to the store
}

// JSON builds the store's external representation. Items are loaded lazily
// with a per-store query at serialization time, unbounded and unpaged.
func (s *Store) JSON(db *gorm.DB) (StoreJSON, error) {
	items, err := s.FindItems(db)
	if err != nil {
		return StoreJSON{}, err
	}
	out := StoreJSON{Name: s.Name, Items: make([]ItemJSON, 0, len(items))}
	for i := range items {
		out.Items = append(out.Items, items[i].JSON())
	}
	return out, nil
}

// FindItems returns every item referencing this store.
func (s *Store) FindItems(db *gorm.DB) ([]Item, error) {
	var items []Item
	if err := db.Where("store_id = ?", s.ID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindStoreByName looks up a store by name.
// Returns (nil, nil) when no such store exists.
func FindStoreByName(db *gorm.DB, name string) (*Store, error) {
	var store Store
	err := db.Where("name = ?", name).First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Not found is not an error for callers
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// ListStores returns every store. Full-table scan, no paging.
func ListStores(db *gorm.DB) ([]Store, error) {
	var stores []Store
	if err := db.Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// Save inserts or updates the store.
func (s *Store) Save(db *gorm.DB) error {
	return db.Save(s).Error
}

// Delete removes the store row.
func (s *Store) Delete(db *gorm.DB) error {
	return db.Delete(s).Error
}
