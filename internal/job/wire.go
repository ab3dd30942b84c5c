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

package job

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hireflow/internal/ai"
	"github.com/ecodeclub/hireflow/internal/job/internal/event"
	"github.com/ecodeclub/hireflow/internal/job/internal/repository"
	"github.com/ecodeclub/hireflow/internal/job/internal/repository/cache"
	"github.com/ecodeclub/hireflow/internal/job/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/job/internal/service"
	"github.com/ecodeclub/hireflow/internal/job/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, aiModule *ai.Module) (*Module, error) {
	wire.Build(
		initJobDAO,
		initStatsDAO,
		cache.NewJobECache,
		repository.NewCachedJobRepository,
		repository.NewJobStatsRepository,
		service.NewService,
		service.NewStatsService,
		web.NewHandler,
		event.NewStageEventConsumer,
		wire.FieldsOf(new(*ai.Module), "QuizGenerator"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var initOnce sync.Once

func initTables(db *egorm.Component) {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func initJobDAO(db *egorm.Component) dao.JobDAO {
	initTables(db)
	return dao.NewGORMJobDAO(db)
}

func initStatsDAO(db *egorm.Component) dao.JobStatsDAO {
	initTables(db)
	return dao.NewGORMJobStatsDAO(db)
}
