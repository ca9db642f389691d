package metrics

import "github.com/prometheus/client_golang/prometheus"

var FractalsDetectedMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tago_indicator_fractals_detected_total",
		Help: "number of williams fractals detected, labelled by kind",
	}, []string{"symbol", "interval", "kind"})

var KLinesOutOfOrderMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tago_indicator_klines_out_of_order_total",
		Help: "number of closed klines dropped for arriving out of order",
	}, []string{"symbol", "interval"})

func init() {
	prometheus.MustRegister(FractalsDetectedMetrics, KLinesOutOfOrderMetrics)
}
