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

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "hireflow",
		Subsystem: "interview",
		Name:      "active_sessions",
		Help:      "正在进行的 AI 面试会话数",
	})

	sessionOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hireflow",
		Subsystem: "interview",
		Name:      "session_outcomes_total",
		Help:      "AI 面试会话的结局",
	}, []string{"outcome"})

	protocolViolations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hireflow",
		Subsystem: "interview",
		Name:      "protocol_violations_total",
		Help:      "面试协议被破坏的次数，正常情况下应该一直是 0",
	})
)
