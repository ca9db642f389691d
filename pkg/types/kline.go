package types

import (
	"fmt"
	"time"
)

type Direction int

const DirectionUp = 1
const DirectionNone = 0
const DirectionDown = -1

// Bar is the per-step input contract of the indicators: any value exposing
// read-only OHLC accessors as 64-bit floats.
type Bar interface {
	GetOpen() float64
	GetHigh() float64
	GetLow() float64
	GetClose() float64
}

// KLine is a closed candlestick of a symbol at a specific interval
type KLine struct {
	Symbol string `json:"symbol"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	Interval Interval `json:"interval"`

	Open   float64 `json:"open"`
	Close  float64 `json:"close"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Volume float64 `json:"volume"`

	Closed bool `json:"closed"`
}

func (k KLine) GetStartTime() time.Time {
	return k.StartTime
}

func (k KLine) GetEndTime() time.Time {
	return k.EndTime
}

func (k KLine) GetInterval() Interval {
	return k.Interval
}

func (k KLine) GetOpen() float64 {
	return k.Open
}

func (k KLine) GetClose() float64 {
	return k.Close
}

func (k KLine) GetHigh() float64 {
	return k.High
}

func (k KLine) GetLow() float64 {
	return k.Low
}

func (k KLine) Direction() Direction {
	if k.Close > k.Open {
		return DirectionUp
	} else if k.Close < k.Open {
		return DirectionDown
	}
	return DirectionNone
}

// GetChange returns Close price - Open price.
func (k KLine) GetChange() float64 {
	return k.Close - k.Open
}

func (k KLine) GetMaxChange() float64 {
	return k.High - k.Low
}

func (k KLine) String() string {
	return fmt.Sprintf("%s %s %s O: %.4f H: %.4f L: %.4f C: %.4f V: %.4f",
		k.Symbol, k.Interval, k.EndTime.Format(time.RFC3339), k.Open, k.High, k.Low, k.Close, k.Volume)
}

var _ Bar = KLine{}

type KLineCallback func(k KLine)

// KLineWith filters the given kline callback by symbol and interval
func KLineWith(symbol string, interval Interval, callback KLineCallback) KLineCallback {
	return func(k KLine) {
		if k.Symbol != symbol || (k.Interval != "" && k.Interval != interval) {
			return
		}
		callback(k)
	}
}
