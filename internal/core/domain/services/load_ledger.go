package services

import (
	"sort"

	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/eventlog"
)

// LoadedAmount is the number of medication items loaded onto one drone.
type LoadedAmount struct {
	Number string
	Amount int64
}

// LoadLedger is a replay of event log entries keyed by drone number.
// Only entries carrying a medication code count as loaded items.
type LoadLedger struct {
	items map[string][]string
}

// NewLoadLedger replays entries in the given order.
func NewLoadLedger(entries []*eventlog.EventLog) LoadLedger {
	items := make(map[string][]string)
	for _, entry := range entries {
		code, ok := entry.MedicationCode()
		if !ok {
			continue
		}
		items[entry.DroneNumber()] = append(items[entry.DroneNumber()], code)
	}
	return LoadLedger{items: items}
}

// ItemsOf returns the medication codes loaded onto the drone, in log order.
// A drone without loads yields an empty, non-nil slice.
func (l LoadLedger) ItemsOf(number string) []string {
	codes := l.items[number]
	result := make([]string, len(codes))
	copy(result, codes)
	return result
}

// Amounts returns one LoadedAmount per drone, ascending by number. Drones
// without any load are reported with amount 0, and entries of drones missing
// from drones are ignored.
func (l LoadLedger) Amounts(drones []*drone.Drone) []LoadedAmount {
	amounts := make([]LoadedAmount, 0, len(drones))
	for _, d := range drones {
		amounts = append(amounts, LoadedAmount{
			Number: d.Number(),
			Amount: int64(len(l.items[d.Number()])),
		})
	}

	sort.Slice(amounts, func(i, j int) bool {
		return amounts[i].Number < amounts[j].Number
	})

	return amounts
}
