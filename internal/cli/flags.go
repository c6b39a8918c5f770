package cli

import (
	"time"

	"semrun/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Filter       string
	FailFast     bool
	Timeout      time.Duration
	NoProgress   bool
	NoColor      bool
	OpenFailures bool
	History      bool
	Limit        int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Filter:       f.Filter,
		FailFast:     f.FailFast,
		Timeout:      f.Timeout,
		NoProgress:   f.NoProgress,
		NoColor:      f.NoColor,
		OpenFailures: f.OpenFailures,
		History:      f.History,
	}
}
