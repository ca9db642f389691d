package indicator

import "github.com/billythedummy/ta-go/pkg/types"

// KLineClosedEmitter is the per-step input source of the indicators: the
// upstream market data feed emits each closed bar to the listeners.
type KLineClosedEmitter interface {
	OnKLineClosed(func(k types.KLine))
}

// KLinePusher provides an interface for the API user to push kline values to
// the indicator. The indicator implements its own way to calculate the value
// from the given kline object.
type KLinePusher interface {
	PushK(k types.KLine)
}

type KLineClosedBinder interface {
	BindK(target KLineClosedEmitter, symbol string, interval types.Interval)
}
