// Package medication provides the Medication catalog item loaded onto drones.
package medication

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"drones/internal/pkg/errs"
)

var (
	ErrMedicationNotFound         = errors.New("medication not found")
	ErrMedicationAlreadyExists    = errors.New("medication already exists")
	ErrMedicationIsNotConstructed = errors.New(
		"Medication must be created via NewMedication or RestoreMedication constructor",
	)
)

var (
	codePattern = regexp.MustCompile(`^[A-Z0-9_]+$`)
	namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// Medication is identified by its code. Name and weight are catalog data only.
type Medication struct {
	code   string
	name   string
	weight int

	isConstructed bool
}

// NewMedication validates a catalog entry.
// Codes allow upper-case letters, digits and underscore; names allow letters,
// digits, '-' and '_'; weight is in grams and must be positive.
func NewMedication(code, name string, weight int) (*Medication, error) {
	m := &Medication{isConstructed: true}

	if err := errors.Join(
		m.setCode(code),
		m.setName(name),
		m.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMedication rebuilds a medication from persisted values.
func RestoreMedication(code, name string, weight int) (*Medication, error) {
	return NewMedication(code, name, weight)
}

func (m *Medication) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMedicationIsNotConstructed
	}
	return nil
}

func (m *Medication) Code() string {
	return m.code
}

func (m *Medication) Name() string {
	return m.name
}

func (m *Medication) Weight() int {
	return m.weight
}

func (m *Medication) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if !codePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause("code", fmt.Errorf("%q has characters other than A-Z, 0-9 and _", code))
	}
	m.code = code
	return nil
}

func (m *Medication) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if !namePattern.MatchString(name) {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("%q has characters other than letters, digits, - and _", name))
	}
	m.name = name
	return nil
}

func (m *Medication) setWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%d is not greater than 0", weight))
	}
	m.weight = weight
	return nil
}
