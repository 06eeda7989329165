package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	trackRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trafficgen_track_requests_total",
		Help: "Количество запросов публичного трекинга по коду ответа",
	}, []string{"code"})

	trackDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "trafficgen_track_request_duration_seconds",
		Help:    "Длительность запроса трекинга в секундах",
		Buckets: []float64{0.1, 0.3, 0.5, 1, 2},
	})
)

const alphabet = "0123456789ABCDEF"

func randomTrackingNumber() string {
	b := make([]byte, 12)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return "TRK-" + string(b)
}

func hitTracking(baseURL string) {
	start := time.Now()
	defer func() {
		trackDuration.Observe(time.Since(start).Seconds())
	}()

	resp, err := http.Get(baseURL + "/track/" + randomTrackingNumber())
	if err != nil {
		trackRequests.WithLabelValues("error").Inc()
		return
	}
	defer resp.Body.Close()

	trackRequests.WithLabelValues(fmt.Sprint(resp.StatusCode)).Inc()
}

func main() {
	baseURL := os.Getenv("TARGET_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil)

	for {
		hitTracking(baseURL)
		time.Sleep(time.Duration(100+rand.Intn(1900)) * time.Millisecond)
	}
}
