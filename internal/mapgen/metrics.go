package mapgen

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annel0/mmo-mapgen/internal/logging"
)

// Метрики проходов генерации. Регистрируются один раз на процесс;
// экспортёр лишь поднимает HTTP-эндпоинт.
var (
	lightingDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mapgen",
		Name:      "lighting_seconds",
		Help:      "Длительность расчёта освещения области.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"engine"})

	heightmapDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mapgen",
		Name:      "heightmap_seconds",
		Help:      "Длительность пересчёта карты высот области.",
		Buckets:   prometheus.DefBuckets,
	})

	liquidTransitions = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mapgen",
		Name:      "liquid_transitions_total",
		Help:      "Найденных границ жидкостей суммарно по всем областям.",
	})

	regionsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "mapgen",
		Name:      "regions_generated_total",
		Help:      "Полностью обработанных областей генерации.",
	})
)

func init() {
	prometheus.MustRegister(lightingDuration, heightmapDuration,
		liquidTransitions, regionsGenerated)
}

// RegionDone отмечает полностью обработанную область
func RegionDone() {
	regionsGenerated.Inc()
}

// MetricsExporter поднимает HTTP-эндпоинт Prometheus для метрик генерации
type MetricsExporter struct {
	srv *http.Server
}

// NewMetricsExporter создаёт экспортёр, но не запускает HTTP-сервер
func NewMetricsExporter(addr string) *MetricsExporter {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &MetricsExporter{
		srv: &http.Server{Addr: addr, Handler: mux},
	}
}

// Start запускает HTTP-сервер метрик в отдельной горутине
func (me *MetricsExporter) Start() {
	go func() {
		logging.Info("📊 Метрики генерации доступны на http://%s/metrics", me.srv.Addr)
		if err := me.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("Ошибка HTTP-сервера метрик: %v", err)
		}
	}()
}

// Stop останавливает HTTP-сервер метрик
func (me *MetricsExporter) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return me.srv.Shutdown(ctx)
}
