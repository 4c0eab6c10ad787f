// Package dispatcher_benchmarks measures dispatch-cost and full-run
// scaling, grounded on the teacher's
// tests/benchmarks/elevator/elevator_benchmark_test.go style
// (b.ReportAllocs, b.ResetTimer, N-scaled fixtures).
package dispatcher_benchmarks

import (
	"context"
	"strconv"
	"testing"

	"github.com/mkaranasou/elevatorsim/internal/dispatcher"
	"github.com/mkaranasou/elevatorsim/internal/domain"
	"github.com/mkaranasou/elevatorsim/internal/elevator"
	"github.com/mkaranasou/elevatorsim/internal/engine"
)

func buildFleet(b *testing.B, count int) []*elevator.Elevator {
	b.Helper()
	fleet := make([]*elevator.Elevator, 0, count)
	for i := 0; i < count; i++ {
		e, err := elevator.New("E", i%50+1, 1, 100, 8)
		if err != nil {
			b.Fatal(err)
		}
		fleet = append(fleet, e)
	}
	return fleet
}

// BenchmarkDispatch_SingleRequest measures one Dispatch call against a
// fleet of idle elevators.
func BenchmarkDispatch_SingleRequest(b *testing.B) {
	fleet := buildFleet(b, 10)
	d := dispatcher.New()
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		r := domain.NewCallRequest("bench", 0, domain.NewFloor(i%90+1), domain.NewFloor(i%90+2))
		if _, _, err := d.Dispatch(ctx, fleet, r); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDispatch_BusyFleet measures Dispatch once every elevator
// already carries a multi-stop plan, exercising the monotone-subplan
// search path rather than the empty-plan fast path.
func BenchmarkDispatch_BusyFleet(b *testing.B) {
	fleet := buildFleet(b, 10)
	d := dispatcher.New()
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		r := domain.NewCallRequest("seed-"+strconv.Itoa(i), 0, domain.NewFloor(i%90+1), domain.NewFloor(i%90+10))
		winner, plan, err := d.Dispatch(ctx, fleet, r)
		if err != nil {
			b.Fatal(err)
		}
		winner.ReplacePlan(plan)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		r := domain.NewCallRequest("bench", 0, domain.NewFloor(i%90+1), domain.NewFloor(i%90+5))
		if _, _, err := d.Dispatch(ctx, fleet, r); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEngine_Run measures a full tick-by-tick simulation run
// scaled by the number of requests.
func BenchmarkEngine_Run(b *testing.B) {
	for _, n := range []int{10, 100, 500} {
		b.Run(benchName(n), func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				fleet := buildFleet(b, 5)
				requests := make([]*domain.CallRequest, 0, n)
				for j := 0; j < n; j++ {
					requests = append(requests, domain.NewCallRequest(
						"r", j%50, domain.NewFloor(j%90+1), domain.NewFloor((j+30)%90+1)))
				}

				eng := engine.New(fleet, requests, dispatcher.New())
				if err := eng.Run(context.Background()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func benchName(n int) string {
	switch n {
	case 10:
		return "requests=10"
	case 100:
		return "requests=100"
	default:
		return "requests=500"
	}
}
