package indicator

import "github.com/billythedummy/ta-go/pkg/types"

// MaxNumOfKLines is how many closed bars the stream retains: exactly enough
// for a late subscriber to window-seed a fractal detector.
const MaxNumOfKLines = FractalWindow - 1

//go:generate callbackgen -type KLineStream
type KLineStream struct {
	updateCallbacks []func(k types.KLine)

	kLines []types.KLine
}

// AddSubscriber adds the subscriber function and pushes the retained bars to
// the subscriber
func (s *KLineStream) AddSubscriber(f func(k types.KLine)) {
	if len(s.kLines) > 0 {
		for _, k := range s.kLines {
			f(k)
		}
	}
	s.OnUpdate(f)
}

// Recent returns the retained closed bars, oldest first.
func (s *KLineStream) Recent() []types.KLine {
	return s.kLines
}

// KLines creates a KLine stream that pushes the klines to the subscribers
func KLines(source KLineClosedEmitter) *KLineStream {
	s := &KLineStream{}

	source.OnKLineClosed(func(k types.KLine) {
		s.kLines = append(s.kLines, k)

		if len(s.kLines) > MaxNumOfKLines {
			s.kLines = s.kLines[len(s.kLines)-MaxNumOfKLines:]
		}
		s.EmitUpdate(k)
	})

	return s
}
