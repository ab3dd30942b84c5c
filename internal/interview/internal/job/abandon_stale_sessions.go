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

package job

import (
	"context"
	"fmt"

	"github.com/ecodeclub/hireflow/internal/interview/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*AbandonStaleSessionsJob)(nil)

// AbandonStaleSessionsJob 服务重启之后，内存里的会话已经没了，数据库里的记录还停在 active
type AbandonStaleSessionsJob struct {
	svc    service.Service
	logger *elog.Component
}

func NewAbandonStaleSessionsJob(svc service.Service) *AbandonStaleSessionsJob {
	return &AbandonStaleSessionsJob{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("interview")),
	}
}

func (j *AbandonStaleSessionsJob) Name() string {
	return "AbandonStaleSessionsJob"
}

func (j *AbandonStaleSessionsJob) Run(ctx context.Context) error {
	n, err := j.svc.AbandonStale(ctx)
	if err != nil {
		return fmt.Errorf("放弃超时的面试会话失败: %w", err)
	}
	if n > 0 {
		j.logger.Info("放弃超时的面试会话", elog.Int64("count", n))
	}
	return nil
}
