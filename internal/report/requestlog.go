package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mkaranasou/elevatorsim/internal/domain"
)

// WriteRequestLog renders one row per request, per spec.md §6's
// Request log: {call_time, "source->target", pickup_time,
// dropoff_time, wait, total, elevator_name}.
func WriteRequestLog(w io.Writer, requests []*domain.CallRequest) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"id", "call_time", "route", "pickup_time", "dropoff_time", "wait", "total", "elevator"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range requests {
		record := []string{
			r.ID,
			fmt.Sprintf("%d", r.CallTime),
			fmt.Sprintf("%d->%d", r.SourceFloor.Value(), r.TargetFloor.Value()),
			fmt.Sprintf("%d", r.PickupTime),
			fmt.Sprintf("%d", r.DropoffTime),
			fmt.Sprintf("%d", r.WaitTime()),
			fmt.Sprintf("%d", r.TotalTime()),
			r.AssignedElevator,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	return cw.Error()
}
