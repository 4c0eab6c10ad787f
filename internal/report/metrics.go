package report

import "github.com/mkaranasou/elevatorsim/internal/domain"

// Summary is the min/max/mean of wait and total time across all
// requests, per spec.md §6's Summary metrics and main.py's
// compute_metrics_from_request_log.
type Summary struct {
	MinWait, MaxWait   int
	MeanWait           float64
	MinTotal, MaxTotal int
	MeanTotal          float64
}

// Summarize computes Summary over requests. requests must all be
// complete (IsComplete); the engine guarantees this on termination.
func Summarize(requests []*domain.CallRequest) Summary {
	if len(requests) == 0 {
		return Summary{}
	}

	s := Summary{
		MinWait:  requests[0].WaitTime(),
		MaxWait:  requests[0].WaitTime(),
		MinTotal: requests[0].TotalTime(),
		MaxTotal: requests[0].TotalTime(),
	}

	var waitSum, totalSum int
	for _, r := range requests {
		wait := r.WaitTime()
		total := r.TotalTime()

		waitSum += wait
		totalSum += total

		if wait < s.MinWait {
			s.MinWait = wait
		}
		if wait > s.MaxWait {
			s.MaxWait = wait
		}
		if total < s.MinTotal {
			s.MinTotal = total
		}
		if total > s.MaxTotal {
			s.MaxTotal = total
		}
	}

	n := float64(len(requests))
	s.MeanWait = float64(waitSum) / n
	s.MeanTotal = float64(totalSum) / n

	return s
}
