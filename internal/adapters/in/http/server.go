package http

import (
	"context"
	"errors"
	"net/http"

	"drones/internal/core/application/usecases/commands"
	"drones/internal/core/application/usecases/queries"
	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/medication"
	"drones/internal/generated/servers"
	"drones/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// FleetService is the application surface the HTTP server exposes.
type FleetService interface {
	RegisterDrone(ctx context.Context, number string, modelType drone.ModelType) (commands.RegisteredDrone, error)
	LoadDrone(ctx context.Context, droneNumber, medicationCode string) error
	RegisterMedication(ctx context.Context, code, name string, weight int) error
	CheckMedicationItems(ctx context.Context, droneNumber string) ([]string, error)
	CheckAvailableDrones(ctx context.Context) ([]string, error)
	CheckBatteryCapacity(ctx context.Context, droneNumber string) (int, error)
	CheckDroneLoadedItemAmounts(ctx context.Context) ([]queries.DroneLoadedItemAmount, error)
	GetDroneEvents(ctx context.Context, droneNumber string) ([]queries.DroneEvent, error)
}

// Server implements the ServerInterface for handling HTTP requests.
type Server struct {
	fleet FleetService
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(fleet FleetService) *Server {
	return &Server{fleet: fleet}
}

// GetHealth handles GET /api/v1/health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Status: "ok"})
}

// RegisterDrone handles POST /api/v1/drones.
func (s *Server) RegisterDrone(ctx echo.Context) error {
	var body servers.RegisterDroneJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	modelType, err := drone.ParseModelType(string(body.Model))
	if err != nil {
		return errorResponse(ctx, err)
	}

	registered, err := s.fleet.RegisterDrone(ctx.Request().Context(), body.Number, modelType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Drone{
		Number:          registered.Number,
		Model:           registered.ModelType.String(),
		State:           registered.State.String(),
		BatteryCapacity: registered.BatteryCapacity,
	})
}

// LoadDrone handles POST /api/v1/drones/load.
func (s *Server) LoadDrone(ctx echo.Context) error {
	var body servers.LoadDroneJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	if err := s.fleet.LoadDrone(ctx.Request().Context(), body.DroneNumber, body.MedicationCode); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterMedication handles POST /api/v1/medications.
func (s *Server) RegisterMedication(ctx echo.Context) error {
	var body servers.RegisterMedicationJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	if err := s.fleet.RegisterMedication(ctx.Request().Context(), body.Code, body.Name, body.Weight); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetAvailableDrones handles GET /api/v1/drones/available.
func (s *Server) GetAvailableDrones(ctx echo.Context) error {
	numbers, err := s.fleet.CheckAvailableDrones(ctx.Request().Context())
	if err != nil {
		return errorResponse(ctx, err)
	}
	if numbers == nil {
		numbers = []string{}
	}
	return ctx.JSON(http.StatusOK, numbers)
}

// GetLoadedItemAmounts handles GET /api/v1/drones/amounts.
func (s *Server) GetLoadedItemAmounts(ctx echo.Context) error {
	amounts, err := s.fleet.CheckDroneLoadedItemAmounts(ctx.Request().Context())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.LoadedItemAmount, len(amounts))
	for i, amount := range amounts {
		response[i] = servers.LoadedItemAmount{DroneNumber: amount.Number, Amount: amount.Amount}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetDroneMedications handles GET /api/v1/drones/{number}/medications.
func (s *Server) GetDroneMedications(ctx echo.Context, number servers.DroneNumber) error {
	items, err := s.fleet.CheckMedicationItems(ctx.Request().Context(), number)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if items == nil {
		items = []string{}
	}
	return ctx.JSON(http.StatusOK, servers.MedicationItems{DroneNumber: number, Medications: items})
}

// GetDroneBattery handles GET /api/v1/drones/{number}/battery.
func (s *Server) GetDroneBattery(ctx echo.Context, number servers.DroneNumber) error {
	capacity, err := s.fleet.CheckBatteryCapacity(ctx.Request().Context(), number)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.BatteryLevel{DroneNumber: number, BatteryCapacity: capacity})
}

// GetDroneEvents handles GET /api/v1/drones/{number}/events.
func (s *Server) GetDroneEvents(ctx echo.Context, number servers.DroneNumber) error {
	events, err := s.fleet.GetDroneEvents(ctx.Request().Context(), number)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.DroneEvent, len(events))
	for i, event := range events {
		response[i] = servers.DroneEvent{
			Id:              event.ID.Bytes(),
			DroneNumber:     event.DroneNumber,
			State:           event.State.String(),
			MedicationCode:  event.MedicationCode,
			BatteryCapacity: event.BatteryCapacity,
			Timestamp:       event.Timestamp,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}
	return nil
}

// errorResponse writes the status matching a use case error.
func errorResponse(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, drone.ErrDroneNotFound),
		errors.Is(err, medication.ErrMedicationNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, drone.ErrDroneAlreadyExists),
		errors.Is(err, medication.ErrMedicationAlreadyExists),
		errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, drone.ErrIllegalDroneState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
