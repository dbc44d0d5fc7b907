package stats

import "sort"

// PlayerAggregate accumulates raw counters for one player across hands.
// Fields are sums only, so aggregates merge associatively and
// commutatively regardless of processing order.
type PlayerAggregate struct {
	Hands int

	VPIP int
	PFR  int
	Limp int

	TwoBet       int
	ThreeBet     int
	TwoBetOpps   int
	ThreeBetOpps int

	FoldToRaise int
	CallToRaise int

	Steals    int
	StealOpps int

	Aggressive int
	Passive    int

	Profit   float64
	ProfitBB float64 // profit normalized by each hand's big blind
}

// Rates is the derived per-player rate report.
type Rates struct {
	Name  string
	Hands int

	VPIP     float64 // percent
	PFR      float64 // percent
	Limp     float64 // percent
	ThreeBet float64 // percent of hands where the player faced a raise
	Steal    float64 // percent of first-in late-position opportunities
	AF       float64 // aggressive / max(1, passive)
	BB100    float64 // big blinds won per 100 hands
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithPlayerRange restricts aggregation to hands whose player count falls
// in the inclusive range, separating short-handed from full-ring samples.
func WithPlayerRange(min, max int) Option {
	return func(a *Aggregator) {
		a.minPlayers = min
		a.maxPlayers = max
	}
}

// Aggregator folds per-hand statistics into per-player counters. It never
// mutates the HandStats records it consumes.
type Aggregator struct {
	minPlayers int
	maxPlayers int
	players    map[string]*PlayerAggregate
}

// NewAggregator creates an empty aggregator.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{players: make(map[string]*PlayerAggregate)}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// accepts reports whether a hand passes the player-count filter.
func (a *Aggregator) accepts(hs *HandStats) bool {
	if a.minPlayers > 0 && hs.NumberPlayers < a.minPlayers {
		return false
	}
	if a.maxPlayers > 0 && hs.NumberPlayers > a.maxPlayers {
		return false
	}
	return true
}

// Add folds one hand's statistics into the aggregate.
func (a *Aggregator) Add(hs *HandStats) {
	if hs == nil || !a.accepts(hs) {
		return
	}
	for name, ps := range hs.Players {
		if !ps.Participated {
			continue
		}
		agg := a.players[name]
		if agg == nil {
			agg = &PlayerAggregate{}
			a.players[name] = agg
		}
		agg.Hands++
		agg.VPIP += b2i(ps.VPIP)
		agg.PFR += b2i(ps.PFR)
		agg.Limp += b2i(ps.Limp)
		agg.TwoBet += b2i(ps.TwoBet)
		agg.ThreeBet += b2i(ps.ThreeBet)
		agg.TwoBetOpps += b2i(ps.TwoBetOpportunity)
		agg.ThreeBetOpps += b2i(ps.ThreeBetOpportunity)
		agg.FoldToRaise += b2i(ps.FoldToRaise)
		agg.CallToRaise += b2i(ps.CallToRaise)
		agg.Steals += b2i(ps.AttemptedSteal)
		agg.StealOpps += b2i(ps.StealOpportunity)
		agg.Aggressive += ps.Aggressive
		agg.Passive += ps.Passive
		agg.Profit += ps.Profit
		if hs.BigBlind > 0 {
			agg.ProfitBB += ps.Profit / hs.BigBlind
		}
	}
}

// Merge folds another aggregator's counters into this one. Both must use
// the same filter for the result to be meaningful.
func (a *Aggregator) Merge(other *Aggregator) {
	for name, o := range other.players {
		agg := a.players[name]
		if agg == nil {
			agg = &PlayerAggregate{}
			a.players[name] = agg
		}
		agg.Hands += o.Hands
		agg.VPIP += o.VPIP
		agg.PFR += o.PFR
		agg.Limp += o.Limp
		agg.TwoBet += o.TwoBet
		agg.ThreeBet += o.ThreeBet
		agg.TwoBetOpps += o.TwoBetOpps
		agg.ThreeBetOpps += o.ThreeBetOpps
		agg.FoldToRaise += o.FoldToRaise
		agg.CallToRaise += o.CallToRaise
		agg.Steals += o.Steals
		agg.StealOpps += o.StealOpps
		agg.Aggressive += o.Aggressive
		agg.Passive += o.Passive
		agg.Profit += o.Profit
		agg.ProfitBB += o.ProfitBB
	}
}

// Player returns the raw counters for a player, or nil if unseen.
func (a *Aggregator) Player(name string) *PlayerAggregate {
	return a.players[name]
}

// Rates derives the final rate statistics for every player, sorted by
// hands played descending. Every ratio guards a zero denominator by
// reporting 0.
func (a *Aggregator) Rates() []Rates {
	out := make([]Rates, 0, len(a.players))
	for name, agg := range a.players {
		out = append(out, agg.rates(name))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hands != out[j].Hands {
			return out[i].Hands > out[j].Hands
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// PlayerRates derives rate statistics for a single player.
func (a *Aggregator) PlayerRates(name string) (Rates, bool) {
	agg := a.players[name]
	if agg == nil {
		return Rates{Name: name}, false
	}
	return agg.rates(name), true
}

func (agg *PlayerAggregate) rates(name string) Rates {
	r := Rates{Name: name, Hands: agg.Hands}
	r.VPIP = percent(agg.VPIP, agg.Hands)
	r.PFR = percent(agg.PFR, agg.Hands)
	r.Limp = percent(agg.Limp, agg.Hands)
	r.ThreeBet = percent(agg.ThreeBet, agg.ThreeBet+agg.FoldToRaise+agg.CallToRaise)
	r.Steal = percent(agg.Steals, agg.StealOpps)
	if agg.Passive > 0 {
		r.AF = float64(agg.Aggressive) / float64(agg.Passive)
	} else {
		r.AF = float64(agg.Aggressive)
	}
	if agg.Hands > 0 {
		r.BB100 = agg.ProfitBB / float64(agg.Hands) * 100
	}
	return r
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

func b2i(v bool) int {
	if v {
		return 1
	}
	return 0
}
