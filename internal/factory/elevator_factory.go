// Package factory builds the elevator fleet a simulation run starts
// with, grounded on the teacher's internal/factory/elevatorFactory.go
// interface-plus-standard-implementation shape.
package factory

import (
	"fmt"

	"github.com/mkaranasou/elevatorsim/internal/elevator"
	"github.com/mkaranasou/elevatorsim/internal/infra/config"
)

// ElevatorFactory builds the elevators for a simulation run from its
// configuration.
type ElevatorFactory interface {
	CreateFleet(cfg *config.Config) ([]*elevator.Elevator, error)
}

// StandardElevatorFactory builds a fleet of cfg.NumberOfElevators
// elevators, each bounded [1, cfg.NumberOfFloors], starting at floor 1
// per spec.md §6, named with the config's elevator name prefix plus a
// 1-based index.
type StandardElevatorFactory struct{}

// CreateFleet implements ElevatorFactory.
func (f StandardElevatorFactory) CreateFleet(cfg *config.Config) ([]*elevator.Elevator, error) {
	fleet := make([]*elevator.Elevator, 0, cfg.NumberOfElevators)
	for i := 1; i <= cfg.NumberOfElevators; i++ {
		name := fmt.Sprintf("%s%d", cfg.ElevatorNamePrefix(), i)
		e, err := elevator.New(name, 1, 1, cfg.NumberOfFloors, cfg.MaxCapacityOfElevator)
		if err != nil {
			return nil, fmt.Errorf("creating elevator %s: %w", name, err)
		}
		fleet = append(fleet, e)
	}
	return fleet, nil
}
