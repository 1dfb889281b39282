package metrics

import (
	"net/http"
	"time"

	"social_backend/internal/pkg/bizerr"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector 指标收集器
// 所有方法对 nil 接收者安全，测试中可以不创建收集器
type MetricsCollector struct {
	gatherer prometheus.Gatherer

	// HTTP 指标
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpResponseSize    *prometheus.HistogramVec

	// 社交互动指标
	engagementTotal *prometheus.CounterVec
	feedPageSize    *prometheus.HistogramVec
	rateLimited     *prometheus.CounterVec
}

// NewMetricsCollector 在指定注册表上创建指标收集器
func NewMetricsCollector(reg *prometheus.Registry) *MetricsCollector {
	factory := promauto.With(reg)
	return &MetricsCollector{
		gatherer: reg,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		httpResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "endpoint"},
		),

		engagementTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "social_engagement_operations_total",
				Help: "Follow, like and comment mutations by outcome",
			},
			[]string{"operation", "outcome"},
		),

		feedPageSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "social_post_page_size",
				Help:    "Number of posts returned per feed or timeline page",
				Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
			},
			[]string{"source"},
		),

		rateLimited: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_rate_limited_total",
				Help: "Requests rejected by rate limiters",
			},
			[]string{"limiter"},
		),
	}
}

// RecordHTTPRequest 记录 HTTP 请求指标
func (m *MetricsCollector) RecordHTTPRequest(method, endpoint, status string, duration time.Duration, responseSize int) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	if responseSize > 0 {
		m.httpResponseSize.WithLabelValues(method, endpoint).Observe(float64(responseSize))
	}
}

// RecordEngagement 记录关注/点赞/评论等写操作的结果
// outcome 使用 bizerr.Kind 的字符串形式，成功为 "ok"
func (m *MetricsCollector) RecordEngagement(operation, outcome string) {
	if m == nil {
		return
	}
	m.engagementTotal.WithLabelValues(operation, outcome).Inc()
}

// ObservePageSize 记录动态流/帖子列表每页条数
func (m *MetricsCollector) ObservePageSize(source string, n int) {
	if m == nil {
		return
	}
	m.feedPageSize.WithLabelValues(source).Observe(float64(n))
}

// RecordRateLimited 记录被限流的请求
func (m *MetricsCollector) RecordRateLimited(limiter string) {
	if m == nil {
		return
	}
	m.rateLimited.WithLabelValues(limiter).Inc()
}

// Handler 暴露 /metrics
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Outcome 将服务层错误转换为指标标签
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return bizerr.KindOf(err).String()
}
