package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Interval(t *testing.T) {
	assert.Equal(t, 1, Interval1m.Minutes())
	assert.Equal(t, 60*4, Interval4h.Minutes())
	assert.Equal(t, "1h", Interval1h.String())
}

func Test_Interval_UnmarshalJSON(t *testing.T) {
	var interval Interval
	err := json.Unmarshal([]byte(`"5m"`), &interval)
	assert.NoError(t, err)
	assert.Equal(t, Interval5m, interval)
}

func Test_IntervalWindow_String(t *testing.T) {
	iw := IntervalWindow{Interval: Interval1m, Window: 5}
	assert.Equal(t, "1m (5)", iw.String())
}
