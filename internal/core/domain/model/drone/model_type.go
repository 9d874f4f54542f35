package drone

import (
	"fmt"
	"strings"

	"drones/internal/pkg/errs"
)

// ModelType is the drone model, fixed at registration.
type ModelType int

const (
	UnknownModel ModelType = iota
	Lightweight
	Middleweight
	Cruiserweight
	Heavyweight
)

func getModelTypeStrings() map[ModelType]string {
	return map[ModelType]string{
		UnknownModel:  "Unknown",
		Lightweight:   "Lightweight",
		Middleweight:  "Middleweight",
		Cruiserweight: "Cruiserweight",
		Heavyweight:   "Heavyweight",
	}
}

// ParseModelType converts a model name (case-insensitive) into a ModelType.
func ParseModelType(s string) (ModelType, error) {
	name := strings.TrimSpace(s)
	for modelType, str := range getModelTypeStrings() {
		if modelType != UnknownModel && strings.EqualFold(str, name) {
			return modelType, nil
		}
	}
	return UnknownModel, errs.NewValueIsInvalidErrorWithCause("model type", fmt.Errorf("%q is not a valid model type", s))
}

func (m ModelType) Validate() error {
	if m <= UnknownModel || m > Heavyweight {
		return errs.NewValueIsInvalidErrorWithCause("model type", fmt.Errorf("%d is not a valid model type", m))
	}
	return nil
}

func (m ModelType) String() string {
	if str, ok := getModelTypeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
