package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"pizzeria/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

//go:embed default_menu.json
var defaultMenu []byte

// menuSeedItem is one catalogue line in a seed file.
type menuSeedItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Available   *bool  `json:"available"`
}

// menuNamespace keys deterministic item IDs so reseeding updates rows in place.
var menuNamespace = uuid.MustParse("6f1c2b56-8f0e-4c8a-9d4e-3b7a1e5c2d90")

func runSeedMenu(ctx context.Context, deps *ctlDeps, file string) error {
	data := defaultMenu
	if file != "" {
		var err error
		if data, err = os.ReadFile(file); err != nil {
			return errors.Wrap(err, "failed to read menu file")
		}
	}

	items, err := parseMenu(data, time.Now())
	if err != nil {
		return err
	}

	if err := deps.MenuRepo.UpsertMenuItems(ctx, items); err != nil {
		return errors.Wrap(err, "failed to seed menu")
	}

	fmt.Printf("Seeded %d menu items\n", len(items))

	return nil
}

func parseMenu(data []byte, now time.Time) ([]*entity.MenuItem, error) {
	var lines []menuSeedItem
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, errors.Wrap(err, "invalid menu file")
	}

	items := make([]*entity.MenuItem, 0, len(lines))
	for i, line := range lines {
		name := strings.TrimSpace(line.Name)
		category := strings.ToLower(strings.TrimSpace(line.Category))
		if name == "" || category == "" {
			return nil, errors.Errorf("menu item %d: name and category are required", i)
		}
		if line.Price < 0 {
			return nil, errors.Errorf("menu item %q: price must not be negative", name)
		}

		available := true
		if line.Available != nil {
			available = *line.Available
		}

		items = append(items, &entity.MenuItem{
			ID:          uuid.NewSHA1(menuNamespace, []byte(category+"/"+name)),
			Name:        name,
			Description: line.Description,
			Category:    category,
			Price:       line.Price,
			Available:   available,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return items, nil
}
