package forksort

// Option is a functional option for configuring a sort.
type Option func(*sortConfig)

type sortConfig struct {
	spawnLimit int // Max concurrently live spawned tasks; 0 means unlimited
	limitSet   bool
}

func defaultSortConfig() *sortConfig {
	return &sortConfig{
		spawnLimit: 0, // Unlimited by default; cutoff already caps fan-out at 2^cutoff
	}
}

// WithSpawnLimit bounds how many spawned child tasks may be live at once.
// When a fan-out node cannot reserve budget for both of its children, it
// sorts its whole range with the serial algorithm instead. n = 0 permits no
// spawning at all (every range is sorted serially regardless of cutoff).
// Negative n is rejected by Sort.
func WithSpawnLimit(n int) Option {
	return func(c *sortConfig) {
		c.spawnLimit = n
		c.limitSet = true
	}
}
