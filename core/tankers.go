package core

import "math"

// PlanTankers returns the minimum number of tanker refuelling missions that
// closes a delta-v shortfall, given the gain per tanker. Callers must only
// invoke it for vehicles with perTankerKmS > 0.
//
// The division must round up: truncation would under-provision the mission
// by up to one tanker's worth of delta-v.
func PlanTankers(shortfallKmS, perTankerKmS float64) int {
	if shortfallKmS <= 0 {
		return 0
	}
	return int(math.Ceil(shortfallKmS / perTankerKmS))
}
