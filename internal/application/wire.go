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

//go:build wireinject

package application

import (
	"sync"

	"github.com/ecodeclub/hireflow/internal/ai"
	"github.com/ecodeclub/hireflow/internal/application/internal/event"
	"github.com/ecodeclub/hireflow/internal/application/internal/repository"
	"github.com/ecodeclub/hireflow/internal/application/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/application/internal/service"
	"github.com/ecodeclub/hireflow/internal/application/internal/web"
	"github.com/ecodeclub/hireflow/internal/job"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, q mq.MQ, aiModule *ai.Module, jobModule *job.Module) (*Module, error) {
	wire.Build(
		initApplicationDAO,
		repository.NewApplicationRepository,
		event.NewStageEventProducer,
		initPipelineConfig,
		service.NewPipelineService,
		web.NewHandler,
		wire.FieldsOf(new(*ai.Module), "Matcher"),
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var initOnce sync.Once

func initApplicationDAO(db *egorm.Component) dao.ApplicationDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMApplicationDAO(db)
}

func initPipelineConfig() service.Config {
	cfg := service.DefaultConfig()
	if v := econf.GetInt("pipeline.quizPassingScore"); v > 0 {
		cfg.QuizPassingScore = v
	}
	if v := econf.GetInt("pipeline.interviewQualifyScore"); v > 0 {
		cfg.InterviewQualifyScore = float64(v)
	}
	return cfg
}
