package board

import "github.com/fleetops/opsboard/internal/domain"

// Summary holds the aggregate counts for one board snapshot. Histogram
// buckets sum to the respective input lengths.
type Summary struct {
	LoadsByStatus       map[domain.LoadStatus]int  `json:"loads_by_status"`
	PODByStatus         map[domain.PODStatus]int   `json:"pod_by_status"`
	DeliveredWithoutPOD int                        `json:"delivered_without_pod"`
	ProblemLoads        int                        `json:"problem_loads"`
	AtRiskLoads         int                        `json:"at_risk_loads"`
	DriversAvailable    int                        `json:"drivers_available"`
	DriversBusy         int                        `json:"drivers_busy"`
	DriversTruth        map[domain.TruthStatus]int `json:"drivers_truth"`
	AssignmentConflicts int                        `json:"assignment_conflicts"`
}

// Summarize walks the enriched loads and drivers once each. DriversAvailable
// and DriversBusy count raw self-reported statuses and are kept for consumers
// that predate truth statuses.
func Summarize(loads []EnrichedLoad, drivers []EnrichedDriver, conflicts int) Summary {
	s := Summary{
		LoadsByStatus:       make(map[domain.LoadStatus]int),
		PODByStatus:         make(map[domain.PODStatus]int),
		DriversTruth:        make(map[domain.TruthStatus]int, 5),
		AssignmentConflicts: conflicts,
	}
	for _, t := range domain.TruthStatuses() {
		s.DriversTruth[t] = 0
	}

	for _, l := range loads {
		status := l.Status.Normalize()
		if status == "" {
			status = domain.StatusUnknown
		}
		s.LoadsByStatus[status]++

		pod := l.PODStatus.Normalize()
		if pod == "" {
			pod = domain.PODNone
		}
		s.PODByStatus[pod]++

		if status == domain.LoadDelivered && !l.PODStatus.Received() {
			s.DeliveredWithoutPOD++
		}
		if l.Status.Exception() {
			s.ProblemLoads++
		}
		if l.Status.ScheduleRisk() {
			s.AtRiskLoads++
		}
	}

	for _, d := range drivers {
		if d.Status.Normalize() == domain.DriverAvailable {
			s.DriversAvailable++
		}
		if d.Status.Busy() {
			s.DriversBusy++
		}
		s.DriversTruth[d.Truth]++
	}

	return s
}
