package main

import (
	"context"
	"fmt"

	"pizzeria/internal/domain/entity"
	"pizzeria/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

func staffInput(flags staffFlags) *usecase.CreateStaffInput {
	name := *flags.name
	if name == "" {
		name = *flags.username
	}

	// Unknown roles pass through so CreateStaff reports them.
	role, _ := entity.ParseRole(*flags.role)

	return &usecase.CreateStaffInput{
		Username:    *flags.username,
		DisplayName: name,
		Password:    *flags.password,
		Role:        role,
	}
}

func runCreateStaff(ctx context.Context, deps *ctlDeps, input *usecase.CreateStaffInput) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(input); err != nil {
		return errors.Wrap(err, "invalid staff account")
	}

	staff, err := deps.StaffAuth.CreateStaff(ctx, input)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s account %q (%s)\n", staff.Role, staff.Username, staff.ID)

	return nil
}
