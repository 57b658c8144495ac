// Package report renders mission plan results as plain text or Markdown
// documents suitable for saving alongside mission paperwork.
package report

import (
	"fmt"
	"time"

	"github.com/signalsfoundry/mission-planner/model"
)

// Report bundles a plan result with its launch window table and a timestamp.
type Report struct {
	GeneratedAt time.Time
	Result      model.MissionResult
	Windows     []model.LaunchWindow
}

// New builds a report stamped with the provided generation time.
func New(result model.MissionResult, windows []model.LaunchWindow, generatedAt time.Time) *Report {
	return &Report{
		GeneratedAt: generatedAt.UTC(),
		Result:      result,
		Windows:     windows,
	}
}

// Filename returns a timestamped file name for saving the report to disk.
func (r *Report) Filename() string {
	return fmt.Sprintf("mission_%s.txt", r.GeneratedAt.Format("20060102_1504"))
}
