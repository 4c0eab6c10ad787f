// Package report renders the engine's recorded state into the output
// tables spec.md §6 specifies: the elevator log, the request log, and
// summary metrics. Grounded on
// _examples/original_source/building_elevator_engine.py's
// elevator_log_df/request_log_df column layout and
// main.py's compute_metrics_from_request_log, translated from pandas
// DataFrame construction to encoding/csv writers.
//
// Stdlib justification: the teacher has no CLI-facing tabular output
// of its own (it's HTTP-only) to imitate, and no repo in the pack
// imports a third-party table/CSV-writing library; encoding/csv and
// text/tabwriter are the stdlib tools every other pack repo would
// reach for here.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mkaranasou/elevatorsim/internal/engine"
)

// WriteElevatorLog renders the tick-indexed elevator log: one row per
// tick, with per-elevator floor/state/passengers columns flattened
// into the header, per spec.md §6.
func WriteElevatorLog(w io.Writer, log []engine.TickSnapshot) error {
	if len(log) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"tick"}
	for _, es := range log[0].Elevators {
		header = append(header,
			es.Elevator+"_floor",
			es.Elevator+"_state",
			es.Elevator+"_passengers",
		)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range log {
		record := []string{fmt.Sprintf("%d", row.Tick)}
		for _, es := range row.Elevators {
			record = append(record,
				fmt.Sprintf("%d", es.Floor),
				es.State,
				strings.Join(es.Passengers, ","),
			)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	return cw.Error()
}
