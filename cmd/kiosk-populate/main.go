// Command kiosk-populate seeds the catalog collections from a JSON fixture.
// Prices arrive as strings ("9.90") and are parsed as decimals so values
// survive the trip into float fields without drift from string formatting.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kioskworks/kiosk-backend/internal/config"
	"github.com/kioskworks/kiosk-backend/internal/menu"
	"github.com/kioskworks/kiosk-backend/internal/storage"
)

type fixtureCategory struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	ImageID string `json:"image_id"`
}

type fixtureItem struct {
	ID         int    `json:"id"`
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
	ImageID    string `json:"image_id"`
	Price      string `json:"price"`
}

type fixture struct {
	Categories []fixtureCategory `json:"categories"`
	Items      []fixtureItem     `json:"items"`
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

func main() {
	fixturePath := flag.String("fixture", "resources/fixtures/menu.json", "path to the catalog fixture")
	drop := flag.Bool("drop", false, "drop the catalog collections before seeding")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	store, err := storage.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDBName,
		time.Duration(cfg.ConnectTimeout)*time.Millisecond,
		time.Duration(cfg.SocketTimeout)*time.Millisecond)
	if err != nil {
		log.Fatalf("[populate] mongo: %v", err)
	}
	defer func() { _ = store.Close(ctx) }()

	f, err := loadFixture(*fixturePath)
	if err != nil {
		log.Fatalf("[populate] fixture: %v", err)
	}

	if *drop {
		for _, coll := range []string{"categories", "menu_items"} {
			if err := store.Drop(ctx, coll); err != nil {
				log.Fatalf("[populate] drop %s: %v", coll, err)
			}
			log.Printf("[populate] dropped %s", coll)
		}
	}

	for _, fc := range f.Categories {
		category := menu.Category{ID: fc.ID, Name: fc.Name, ImageID: fc.ImageID}
		if err := category.Validate(); err != nil {
			log.Fatalf("[populate] category %d: %v", fc.ID, err)
		}
		if _, err := store.InsertOne(ctx, "categories", category); err != nil {
			log.Fatalf("[populate] category %d: %v", fc.ID, err)
		}
	}
	log.Printf("[populate] inserted %d categories", len(f.Categories))

	for _, fi := range f.Items {
		price, err := decimal.NewFromString(fi.Price)
		if err != nil {
			log.Fatalf("[populate] item %d: bad price %q: %v", fi.ID, fi.Price, err)
		}
		item := menu.Item{
			ID:         fi.ID,
			CategoryID: fi.CategoryID,
			Name:       fi.Name,
			ImageID:    fi.ImageID,
			Price:      price.InexactFloat64(),
		}
		if err := item.Validate(); err != nil {
			log.Fatalf("[populate] item %d: %v", fi.ID, err)
		}
		if _, err := store.InsertOne(ctx, "menu_items", item); err != nil {
			log.Fatalf("[populate] item %d: %v", fi.ID, err)
		}
	}
	log.Printf("[populate] inserted %d items", len(f.Items))
}
