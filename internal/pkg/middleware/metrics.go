// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

func NewMetricsBuilder() *MetricsBuilder {
	return newMetricsBuilder(prometheus.DefaultRegisterer)
}

func newMetricsBuilder(reg prometheus.Registerer) *MetricsBuilder {
	factory := promauto.With(reg)
	labels := []string{"method", "path", "status_code"}
	return &MetricsBuilder{
		summaryVec: factory.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: "hireflow",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP 请求的耗时，不包含 websocket 连接",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, labels),
		counterVec: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hireflow",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP 请求数",
		}, labels),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		// 面试的 websocket 会一直占着这个请求，耗时没有参考价值
		websocket := ctx.IsWebsocket()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			// 没有匹配到路由的请求，避免把任意路径变成标签
			path = "unknown"
		}
		labels := []string{ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
		b.counterVec.WithLabelValues(labels...).Inc()
		if !websocket {
			b.summaryVec.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		}
	}
}
