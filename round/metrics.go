package round

import (
	"sync/atomic"

	"github.com/lixenwraith/whack-a-mole/status"
)

// Metric keys published to the status registry
const (
	MetricSpawns       = "round.spawns"
	MetricDespawns     = "round.despawns"
	MetricHits         = "round.hits"
	MetricStaleHits    = "round.stale_hits"
	MetricRounds       = "round.rounds"
	MetricTimeFraction = "round.time_fraction"
	MetricState        = "round.state"
)

// metrics caches registry pointers so hot paths write atomics directly
type metrics struct {
	spawns    *atomic.Int64
	despawns  *atomic.Int64
	hits      *atomic.Int64
	staleHits *atomic.Int64
	rounds    *atomic.Int64
	fraction  *status.AtomicFloat
	state     *status.AtomicString
}

func newMetrics(reg *status.Registry) *metrics {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &metrics{
		spawns:    reg.Ints.Get(MetricSpawns),
		despawns:  reg.Ints.Get(MetricDespawns),
		hits:      reg.Ints.Get(MetricHits),
		staleHits: reg.Ints.Get(MetricStaleHits),
		rounds:    reg.Ints.Get(MetricRounds),
		fraction:  reg.Floats.Get(MetricTimeFraction),
		state:     reg.Strings.Get(MetricState),
	}
}
