package main

import (
	"context"
	"fmt"

	"pizzeria/internal/infra/persistence/postgres"
)

func runMigrate(ctx context.Context, deps *ctlDeps) error {
	if err := postgres.Migrate(ctx, deps.DB); err != nil {
		return err
	}

	fmt.Println("Schema is up to date")

	return nil
}
