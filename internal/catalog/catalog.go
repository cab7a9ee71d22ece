// Package catalog loads the unlockable rewards catalog and writes it to
// the store.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"aura/internal/logger"
	"aura/internal/model"
	"aura/internal/repository"
)

// Item is the file representation of one catalog entry.
type Item struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=255"`
	ItemType    string `json:"item_type" validate:"max=50"`
	PointsCost  int    `json:"points_cost" validate:"gte=0"`
}

// Result counts what a Seed call did.
type Result struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// Default is the catalog shipped with the binary.
func Default() []Item {
	return []Item{
		{Name: "Paz", Description: "Tema base en tonos suaves", ItemType: "theme", PointsCost: 0},
		{Name: "Océano", Description: "Azules profundos y turquesa", ItemType: "theme", PointsCost: 100},
		{Name: "Bosque", Description: "Verdes y tierra", ItemType: "theme", PointsCost: 150},
		{Name: "Atardecer", Description: "Naranjas y violetas", ItemType: "theme", PointsCost: 200},
		{Name: "Lluvia", Description: "Sonido de lluvia para meditar", ItemType: "sound", PointsCost: 120},
		{Name: "Olas", Description: "Sonido de olas", ItemType: "sound", PointsCost: 120},
		{Name: "Respiración guiada", Description: "Sesión guiada de cinco minutos", ItemType: "session", PointsCost: 300},
	}
}

var validate = validator.New()

// Decode reads a JSON array of items and validates every entry.
func Decode(r io.Reader) ([]Item, error) {
	var items []Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i, item := range items {
		if err := validate.Struct(item); err != nil {
			return nil, fmt.Errorf("catalog item %d: %w", i, err)
		}
	}
	return items, nil
}

// Seed upserts every item by name.
func Seed(ctx context.Context, repo repository.UnlockableRepository, items []Item) (Result, error) {
	var res Result
	for _, item := range items {
		unlockable := &model.Unlockable{
			Name:        item.Name,
			Description: item.Description,
			ItemType:    item.ItemType,
			PointsCost:  item.PointsCost,
		}
		created, err := repo.Upsert(ctx, unlockable)
		if err != nil {
			return res, err
		}
		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}

	logger.FromContext(ctx).Info().
		Int("created", res.Created).
		Int("updated", res.Updated).
		Msg("catalog seeded")
	return res, nil
}
