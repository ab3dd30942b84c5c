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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsBuilder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	b := newMetricsBuilder(reg)
	server := gin.New()
	server.Use(b.Build())
	server.POST("/job/detail", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	server.GET("/interview/live", func(ctx *gin.Context) {
		ctx.Status(http.StatusBadRequest)
	})

	for i := 0; i < 3; i++ {
		server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/job/detail", nil))
	}
	server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/no/such/path", nil))
	ws := httptest.NewRequest(http.MethodGet, "/interview/live", nil)
	ws.Header.Set("Connection", "Upgrade")
	ws.Header.Set("Upgrade", "websocket")
	server.ServeHTTP(httptest.NewRecorder(), ws)

	assert.Equal(t, float64(3), testutil.ToFloat64(b.counterVec.WithLabelValues(http.MethodPost, "/job/detail", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(b.counterVec.WithLabelValues(http.MethodGet, "unknown", "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(b.counterVec.WithLabelValues(http.MethodGet, "/interview/live", "400")))
	// websocket 请求只计数，不记录耗时
	assert.Equal(t, 2, testutil.CollectAndCount(b.summaryVec))
}
