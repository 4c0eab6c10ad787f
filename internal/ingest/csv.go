// Package ingest loads the call-request table spec.md §6 describes as
// an abstract time-sorted iterator, from CSV. Grounded structurally on
// _examples/original_source/main.py's validate_call_requests
// (empty table / duplicate id / non-negative time / positive floors /
// source != dest), translated from a pandas DataFrame to Go structs.
//
// Stdlib justification: no repo in the pack or other_examples/ imports
// a third-party CSV library (gocsv, csvutil, go-csvutil, etc.) for
// reading tabular input — encoding/csv is what this corpus reaches for
// because nothing in it reaches for anything else.
package ingest

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mkaranasou/elevatorsim/internal/domain"
)

// columns is the fixed header this loader accepts, matching
// main.py's read_csv(usecols=["time", "id", "source", "dest"]).
var columns = []string{"time", "id", "source", "dest"}

// LoadCSV reads call requests from r and validates them, per spec.md
// §6's input stream contract.
func LoadCSV(r io.Reader) ([]*domain.CallRequest, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, domain.NewValidationError("no call requests found", nil)
	}
	if err != nil {
		return nil, domain.NewValidationError("failed to read csv header", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var requests []*domain.CallRequest
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.NewValidationError("failed to read csv row", err)
		}

		r, err := parseRow(row, index)
		if err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}

	if err := validate(requests); err != nil {
		return nil, err
	}

	return requests, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(columns))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range columns {
		if _, ok := index[name]; !ok {
			return nil, domain.NewValidationError("missing required csv column", nil).
				WithContext("column", name)
		}
	}
	return index, nil
}

func parseRow(row []string, index map[string]int) (*domain.CallRequest, error) {
	callTime, err := strconv.Atoi(row[index["time"]])
	if err != nil {
		return nil, domain.NewValidationError("time must be an integer", err).
			WithContext("value", row[index["time"]])
	}

	id := row[index["id"]]

	source, err := strconv.Atoi(row[index["source"]])
	if err != nil {
		return nil, domain.NewValidationError("source must be an integer", err).
			WithContext("value", row[index["source"]])
	}

	dest, err := strconv.Atoi(row[index["dest"]])
	if err != nil {
		return nil, domain.NewValidationError("dest must be an integer", err).
			WithContext("value", row[index["dest"]])
	}

	return domain.NewCallRequest(id, callTime, domain.NewFloor(source), domain.NewFloor(dest)), nil
}

// validate applies spec.md §6/§7's InputValidation rules.
func validate(requests []*domain.CallRequest) error {
	if len(requests) == 0 {
		return domain.NewValidationError("no call requests found", nil)
	}

	seen := make(map[string]struct{}, len(requests))
	for _, r := range requests {
		if _, dup := seen[r.ID]; dup {
			return domain.NewValidationError("request ids must be unique", nil).
				WithContext("id", r.ID)
		}
		seen[r.ID] = struct{}{}

		if r.CallTime < 0 {
			return domain.NewValidationError("time must be non-negative", nil).
				WithContext("id", r.ID).WithContext("time", r.CallTime)
		}
		if r.SourceFloor.Value() <= 0 || r.TargetFloor.Value() <= 0 {
			return domain.NewValidationError("floors must be positive", nil).
				WithContext("id", r.ID)
		}
		if r.SourceFloor == r.TargetFloor {
			return domain.NewValidationError("source and dest floor cannot be the same", nil).
				WithContext("id", r.ID).
				WithContext("floor", r.SourceFloor.Value())
		}
	}

	return nil
}
