package commands

import (
	"context"
	"errors"
	"fmt"

	"drones/internal/core/domain/model/medication"
	"drones/internal/pkg/errs"
)

type RegisterMedicationCommandHandler struct {
	uowFactory MedicationUoWFactory
}

func NewRegisterMedicationCommandHandler(uowFactory MedicationUoWFactory) RegisterMedicationCommandHandler {
	return RegisterMedicationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with medication.ErrMedicationAlreadyExists for a known code.
func (h RegisterMedicationCommandHandler) Handle(ctx context.Context, cmd RegisterMedicationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := medication.NewMedication(cmd.Code(), cmd.Name(), cmd.Weight())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	medicationRepo := uow.MedicationRepository()

	exists, err := medicationRepo.Exists(ctx, aggregate.Code())
	if err != nil {
		return err
	}
	if exists {
		return medicationAlreadyExists(aggregate.Code())
	}

	if err = medicationRepo.Add(ctx, aggregate); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return medicationAlreadyExists(aggregate.Code())
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return medicationAlreadyExists(aggregate.Code())
		}
		return err
	}

	return nil
}

func medicationAlreadyExists(code string) error {
	return fmt.Errorf("%w: %s", medication.ErrMedicationAlreadyExists, code)
}
