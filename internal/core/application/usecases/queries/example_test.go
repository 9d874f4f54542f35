package queries_test

import (
	"context"
	"fmt"
	"time"

	"drones/internal/adapters/out/memory"
	"drones/internal/core/application/usecases/queries"
	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/eventlog"
)

func ExampleCheckDroneLoadedItemAmountsQueryHandler_Handle() {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())

	uow := factory.Create()
	_ = uow.Begin(ctx)
	for _, number := range []string{"Drone-2", "Drone-1"} {
		d, _ := drone.NewDrone(number, drone.Lightweight)
		_ = uow.DroneRepository().Add(ctx, d)
		if number == "Drone-1" {
			_ = d.Load()
			entry, _ := eventlog.NewLoadingEntry(d, "MED_1", time.Now())
			_ = uow.EventLogRepository().Append(ctx, entry)
		}
	}
	_ = uow.Commit(ctx)

	handler := queries.NewCheckDroneLoadedItemAmountsQueryHandler(factory)
	amounts, err := handler.Handle(ctx, queries.NewCheckDroneLoadedItemAmountsQuery())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, a := range amounts {
		fmt.Printf("%s: %d\n", a.Number, a.Amount)
	}
	// Output:
	// Drone-1: 1
	// Drone-2: 0
}

func ExampleCheckBatteryCapacityQueryHandler_Handle() {
	ctx := context.Background()
	factory := memory.NewUnitOfWorkFactory(memory.NewStore())

	uow := factory.Create()
	_ = uow.Begin(ctx)
	d, _ := drone.RestoreDrone("Drone-3", drone.Heavyweight, drone.Idle, 55)
	_ = uow.DroneRepository().Add(ctx, d)
	_ = uow.Commit(ctx)

	query, _ := queries.NewCheckBatteryCapacityQuery(" Drone-3 ")
	capacity, err := queries.NewCheckBatteryCapacityQueryHandler(factory).Handle(ctx, query)
	fmt.Println(capacity, err)
	// Output: 55 <nil>
}
