package indicator

// RelaxedRule reports a fractal when the bar at t-2 is a strict five-point
// extremum of the window: its low below the four neighbouring lows for
// bullish, its high above the four neighbouring highs for bearish. Bar
// direction is ignored. The two conditions cannot hold at once for real
// numbers; bullish is checked first.
type RelaxedRule struct{}

func (RelaxedRule) Classify(inc *WilliamsFractal, t, t1, t2, t3, t4 int) Fractal {
	bullish := inc.Lows[t2] < inc.Lows[t4] &&
		inc.Lows[t2] < inc.Lows[t3] &&
		inc.Lows[t2] < inc.Lows[t1] &&
		inc.Lows[t2] < inc.Lows[t]

	bearish := inc.Highs[t2] > inc.Highs[t4] &&
		inc.Highs[t2] > inc.Highs[t3] &&
		inc.Highs[t2] > inc.Highs[t1] &&
		inc.Highs[t2] > inc.Highs[t]

	if bullish {
		return Fractal{Kind: FractalBullish, Price: inc.Lows[t2]}
	} else if bearish {
		return Fractal{Kind: FractalBearish, Price: inc.Highs[t2]}
	}

	return Fractal{Kind: FractalNeither}
}

func (RelaxedRule) String() string {
	return "relaxed"
}

// StrictRule follows the strict Williams definition.
//
// Bullish: lows strictly decrease into t-2 and strictly increase out of it,
// with 3 bearish bars (t-4..t-2) followed by 2 bullish bars (t-1, t).
// Bearish is the mirror on highs with 3 bullish bars followed by 2 bearish.
type StrictRule struct{}

func (StrictRule) Classify(inc *WilliamsFractal, t, t1, t2, t3, t4 int) Fractal {
	bullish := inc.Lows[t3] < inc.Lows[t4] &&
		inc.Lows[t2] < inc.Lows[t3] &&
		inc.Lows[t1] > inc.Lows[t2] &&
		inc.Lows[t] > inc.Lows[t1] &&
		!inc.Bullish[t4] &&
		!inc.Bullish[t3] &&
		!inc.Bullish[t2] &&
		inc.Bullish[t1] &&
		inc.Bullish[t]

	bearish := inc.Highs[t3] > inc.Highs[t4] &&
		inc.Highs[t2] > inc.Highs[t3] &&
		inc.Highs[t1] < inc.Highs[t2] &&
		inc.Highs[t] < inc.Highs[t1] &&
		inc.Bullish[t4] &&
		inc.Bullish[t3] &&
		inc.Bullish[t2] &&
		!inc.Bullish[t1] &&
		!inc.Bullish[t]

	if bullish {
		return Fractal{Kind: FractalBullish, Price: inc.Lows[t2]}
	} else if bearish {
		return Fractal{Kind: FractalBearish, Price: inc.Highs[t2]}
	}

	return Fractal{Kind: FractalNeither}
}

func (StrictRule) String() string {
	return "strict"
}
