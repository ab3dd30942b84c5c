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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/hireflow/internal/job/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type StageEventConsumer struct {
	svc      service.StatsService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewStageEventConsumer(svc service.StatsService, q mq.MQ) (*StageEventConsumer, error) {
	const groupID = "job_stats"
	consumer, err := q.Consumer(StageEventTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &StageEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("job")),
	}, nil
}

func (c *StageEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费投递阶段事件失败", elog.FieldErr(er))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (c *StageEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt ApplicationStageEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.svc.OnStageChanged(ctx, service.StageChange{
		JobID:      evt.JobId,
		FromStage:  evt.FromStage,
		ToStage:    evt.ToStage,
		FromStatus: evt.FromStatus,
		ToStatus:   evt.ToStatus,
	})
}

func (c *StageEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
