package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Register a drone
	// (POST /drones)
	RegisterDrone(ctx echo.Context) error
	// Loaded item count for every drone, ascending by number
	// (GET /drones/amounts)
	GetLoadedItemAmounts(ctx echo.Context) error
	// Numbers of drones that can be loaded, ascending
	// (GET /drones/available)
	GetAvailableDrones(ctx echo.Context) error
	// Load one medication item onto an idle drone
	// (POST /drones/load)
	LoadDrone(ctx echo.Context) error
	// Battery capacity of a drone
	// (GET /drones/{number}/battery)
	GetDroneBattery(ctx echo.Context, number DroneNumber) error
	// Event log of a drone, in append order
	// (GET /drones/{number}/events)
	GetDroneEvents(ctx echo.Context, number DroneNumber) error
	// Medication codes loaded onto a drone, in load order
	// (GET /drones/{number}/medications)
	GetDroneMedications(ctx echo.Context, number DroneNumber) error
	// Liveness check
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// Add a medication to the catalog
	// (POST /medications)
	RegisterMedication(ctx echo.Context) error
}

// ServerInterfaceWrapper binds path parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindDroneNumber(ctx echo.Context) (DroneNumber, error) {
	var number DroneNumber
	err := runtime.BindStyledParameterWithOptions("simple", "number", ctx.Param("number"), &number,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter number: %s", err))
	}
	return number, nil
}

func (w *ServerInterfaceWrapper) RegisterDrone(ctx echo.Context) error {
	return w.Handler.RegisterDrone(ctx)
}

func (w *ServerInterfaceWrapper) GetLoadedItemAmounts(ctx echo.Context) error {
	return w.Handler.GetLoadedItemAmounts(ctx)
}

func (w *ServerInterfaceWrapper) GetAvailableDrones(ctx echo.Context) error {
	return w.Handler.GetAvailableDrones(ctx)
}

func (w *ServerInterfaceWrapper) LoadDrone(ctx echo.Context) error {
	return w.Handler.LoadDrone(ctx)
}

func (w *ServerInterfaceWrapper) GetDroneBattery(ctx echo.Context) error {
	number, err := bindDroneNumber(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetDroneBattery(ctx, number)
}

func (w *ServerInterfaceWrapper) GetDroneEvents(ctx echo.Context) error {
	number, err := bindDroneNumber(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetDroneEvents(ctx, number)
}

func (w *ServerInterfaceWrapper) GetDroneMedications(ctx echo.Context) error {
	number, err := bindDroneNumber(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetDroneMedications(ctx, number)
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) RegisterMedication(ctx echo.Context) error {
	return w.Handler.RegisterMedication(ctx)
}

// EchoRouter is satisfied by both echo.Echo and echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL adds each server route under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/drones", wrapper.RegisterDrone)
	router.GET(baseURL+"/drones/amounts", wrapper.GetLoadedItemAmounts)
	router.GET(baseURL+"/drones/available", wrapper.GetAvailableDrones)
	router.POST(baseURL+"/drones/load", wrapper.LoadDrone)
	router.GET(baseURL+"/drones/:number/battery", wrapper.GetDroneBattery)
	router.GET(baseURL+"/drones/:number/events", wrapper.GetDroneEvents)
	router.GET(baseURL+"/drones/:number/medications", wrapper.GetDroneMedications)
	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.POST(baseURL+"/medications", wrapper.RegisterMedication)
}
