package main

import (
	"context"
	"fmt"
	"time"

	"pizzeria/internal/domain/entity"
)

func runStatus(ctx context.Context, deps *ctlDeps) error {
	status, err := deps.Gate.FetchStatus(ctx)
	if err != nil {
		return err
	}

	printStatus(status, deps.Gate.FormattedHours())

	return nil
}

func runToggle(ctx context.Context, deps *ctlDeps, actor string) error {
	status, err := deps.Gate.Toggle(ctx, actor)
	if err != nil {
		return err
	}

	printStatus(status, deps.Gate.FormattedHours())

	return nil
}

func printStatus(status *entity.StoreStatus, hours string) {
	state := "CLOSED"
	if status.IsOpen {
		state = "OPEN"
	}

	fmt.Printf("Store:        %s\n", state)
	fmt.Printf("Hours:        %s\n", hours)
	fmt.Printf("Last updated: %s\n", status.LastUpdated.Format(time.RFC3339))
	if status.UpdatedBy != "" {
		fmt.Printf("Updated by:   %s\n", status.UpdatedBy)
	}
}
