package daemon

import "time"

// interval fires on its first check and then whenever more than period has
// passed since it last fired.
type interval struct {
	period time.Duration
	last   time.Time
	fired  bool
}

func newInterval(period time.Duration) *interval {
	return &interval{period: period}
}

func (i *interval) due(now time.Time) bool {
	if i.fired && now.Sub(i.last) <= i.period {
		return false
	}
	i.last = now
	i.fired = true
	return true
}

// trigger makes the interval fire on the next check
func (i *interval) trigger() {
	i.fired = false
}
