package indicator

import (
	"fmt"
	"time"

	"github.com/billythedummy/ta-go/pkg/metrics"
	"github.com/billythedummy/ta-go/pkg/types"
)

// Bill Williams Fractal Indicator
// Refer: https://currency.com/how-to-read-and-use-williams-fractal-trading-indicator
//
// At time t, reports whether the bar at time t-2 is a bullish or bearish
// fractal together with the low/high value at t-2, or Neither.
//
// Definitions vary in practice, so the pattern check is pluggable via
// FractalRule. StrictRule follows the strict definition of consistently
// decreasing/increasing lows/highs with 3 bearish bars followed by 2 bullish
// bars (bullish case, mirrored for bearish). RelaxedRule only requires the
// bar at t-2 to be a strict five-point extremum on lows/highs.
//
// The detector keeps a fixed five-slot ring of highs, lows and bar directions
// plus a write cursor. Each step overwrites one slot and classifies in O(1)
// with no allocation; history is never re-scanned.

// FractalWindow is the ring size: the pattern spans five consecutive bars.
const FractalWindow = 5

type FractalKind string

const (
	FractalNeither FractalKind = "neither"
	FractalBullish FractalKind = "bullish"
	FractalBearish FractalKind = "bearish"
)

// Fractal is the per-step classification. Price carries the low at t-2 for a
// bullish fractal and the high at t-2 for a bearish one; it is zero for
// Neither.
type Fractal struct {
	Kind  FractalKind `json:"kind"`
	Price float64     `json:"price,omitempty"`
}

func (f Fractal) String() string {
	switch f.Kind {
	case FractalBullish, FractalBearish:
		return fmt.Sprintf("%s(%v)", f.Kind, f.Price)
	}

	return string(FractalNeither)
}

// FractalRule decides whether the bar two steps back forms a fractal. The
// slot indices t..t4 are already resolved against the ring; t is the slot of
// the bar that was just written.
type FractalRule interface {
	Classify(inc *WilliamsFractal, t, t1, t2, t3, t4 int) Fractal
	String() string
}

// ParseFractalRule resolves a rule by its config name.
func ParseFractalRule(name string) (FractalRule, error) {
	switch name {
	case "strict":
		return StrictRule{}, nil

	case "relaxed":
		return RelaxedRule{}, nil
	}

	return nil, fmt.Errorf("unsupported fractal rule %q", name)
}

//go:generate callbackgen -type WilliamsFractal
type WilliamsFractal struct {
	types.IntervalWindow

	Rule FractalRule `json:"-"`

	// ring buffers, exported so a checkpoint store can round-trip the state
	Highs   [FractalWindow]float64 `json:"highs"`
	Lows    [FractalWindow]float64 `json:"lows"`
	Bullish [FractalWindow]bool    `json:"bullish"`

	// Cursor is the slot that receives the next incoming bar (time t)
	Cursor int `json:"cursor"`

	EndTime time.Time `json:"-"`

	updateCallbacks []func(fractal Fractal)
}

// NewWilliamsFractal creates a detector seeded with the last 4 highs, lows,
// opens and closes, earliest values at index 0 and latest at index 3. The
// first Update can already report a real fractal.
func NewWilliamsFractal(rule FractalRule, pastHighs, pastLows, pastOpens, pastCloses [4]float64) *WilliamsFractal {
	inc := newWilliamsFractal(rule)
	for i := 0; i < 4; i++ {
		inc.Highs[i] = pastHighs[i]
		inc.Lows[i] = pastLows[i]
		inc.Bullish[i] = pastCloses[i] > pastOpens[i]
	}
	inc.Cursor = 4
	return inc
}

// NewWilliamsFractalHL is the windowed constructor without open/close values,
// for rules that ignore bar direction. All seeded bars count as bearish.
func NewWilliamsFractalHL(rule FractalRule, pastHighs, pastLows [4]float64) *WilliamsFractal {
	inc := newWilliamsFractal(rule)
	for i := 0; i < 4; i++ {
		inc.Highs[i] = pastHighs[i]
		inc.Lows[i] = pastLows[i]
	}
	inc.Cursor = 4
	return inc
}

// NewWilliamsFractalFromBars creates a detector seeded with the last 4 bars,
// earliest bar at index 0 and latest at index 3.
func NewWilliamsFractalFromBars(rule FractalRule, past [4]types.Bar) *WilliamsFractal {
	inc := newWilliamsFractal(rule)
	for i, b := range past {
		inc.Highs[i] = b.GetHigh()
		inc.Lows[i] = b.GetLow()
		inc.Bullish[i] = b.GetClose() > b.GetOpen()
	}
	inc.Cursor = 4
	return inc
}

// NewWilliamsFractalSeed creates a detector from a single last known bar,
// replicated across all slots. The next 4 updates always report Neither while
// live bars backfill the ring.
func NewWilliamsFractalSeed(rule FractalRule, high, low, open, close float64) *WilliamsFractal {
	inc := newWilliamsFractal(rule)
	for i := range inc.Highs {
		inc.Highs[i] = high
		inc.Lows[i] = low
		inc.Bullish[i] = close > open
	}
	return inc
}

// NewWilliamsFractalSeedHL is the single-seed constructor without open/close
// values, for rules that ignore bar direction.
func NewWilliamsFractalSeedHL(rule FractalRule, high, low float64) *WilliamsFractal {
	inc := newWilliamsFractal(rule)
	for i := range inc.Highs {
		inc.Highs[i] = high
		inc.Lows[i] = low
	}
	return inc
}

// NewWilliamsFractalSeedBar creates a detector from a single last known bar.
// The next 4 updates always report Neither.
func NewWilliamsFractalSeedBar(rule FractalRule, seed types.Bar) *WilliamsFractal {
	return NewWilliamsFractalSeed(rule, seed.GetHigh(), seed.GetLow(), seed.GetOpen(), seed.GetClose())
}

func newWilliamsFractal(rule FractalRule) *WilliamsFractal {
	if rule == nil {
		rule = StrictRule{}
	}

	return &WilliamsFractal{
		IntervalWindow: types.IntervalWindow{Window: FractalWindow},
		Rule:           rule,
	}
}

// backshift resolves the slot k steps before t on the ring, without taking
// the modulo of a negative value.
func backshift(t, k int) int {
	if t >= k {
		return t - k
	}
	return FractalWindow - (k - t)
}

// Update writes one bar into the ring and classifies the bar two steps back.
// The write is unconditional; garbage values such as NaN are not rejected,
// they fail every strict comparison and degrade to Neither.
func (inc *WilliamsFractal) Update(open, high, low, close float64) Fractal {
	t := inc.Cursor
	inc.Highs[t] = high
	inc.Lows[t] = low
	inc.Bullish[t] = close > open

	t1 := backshift(t, 1)
	t2 := backshift(t, 2)
	t3 := backshift(t, 3)
	t4 := backshift(t, 4)

	fractal := inc.Rule.Classify(inc, t, t1, t2, t3, t4)

	inc.Cursor = (t + 1) % FractalWindow
	return fractal
}

// UpdateHighLow is Update for feeds without open/close values. The bar counts
// as bearish, which only matters to direction-aware rules.
func (inc *WilliamsFractal) UpdateHighLow(high, low float64) Fractal {
	return inc.Update(0, high, low, 0)
}

func (inc *WilliamsFractal) PushK(k types.KLine) {
	if k.EndTime.Before(inc.EndTime) {
		metrics.KLinesOutOfOrderMetrics.WithLabelValues(k.Symbol, k.Interval.String()).Inc()
		return
	}

	fractal := inc.Update(k.Open, k.High, k.Low, k.Close)
	inc.EndTime = k.EndTime

	if fractal.Kind == FractalBullish || fractal.Kind == FractalBearish {
		metrics.FractalsDetectedMetrics.WithLabelValues(k.Symbol, k.Interval.String(), string(fractal.Kind)).Inc()
	}

	inc.EmitUpdate(fractal)
}

func (inc *WilliamsFractal) BindK(target KLineClosedEmitter, symbol string, interval types.Interval) {
	target.OnKLineClosed(types.KLineWith(symbol, interval, inc.PushK))
}

func (inc *WilliamsFractal) String() string {
	return "WFRACTAL"
}

var _ KLinePusher = (*WilliamsFractal)(nil)
var _ KLineClosedBinder = (*WilliamsFractal)(nil)
