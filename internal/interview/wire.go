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

package interview

import (
	"sync"
	"time"

	"github.com/ecodeclub/hireflow/internal/ai"
	"github.com/ecodeclub/hireflow/internal/application"
	intrjob "github.com/ecodeclub/hireflow/internal/interview/internal/job"
	"github.com/ecodeclub/hireflow/internal/interview/internal/repository"
	"github.com/ecodeclub/hireflow/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/interview/internal/service"
	"github.com/ecodeclub/hireflow/internal/interview/internal/web"
	"github.com/ecodeclub/hireflow/internal/job"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	aiModule *ai.Module,
	appModule *application.Module,
	jobModule *job.Module) (*Module, error) {
	wire.Build(
		initSessionDAO,
		repository.NewSessionRepository,
		service.NewApplicationPersister,
		initInterviewConfig,
		service.NewService,
		web.NewHandler,
		intrjob.NewAbandonStaleSessionsJob,
		wire.FieldsOf(new(*ai.Module), "Brain"),
		wire.FieldsOf(new(*application.Module), "Svc"),
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var initOnce sync.Once

func initSessionDAO(db *egorm.Component) dao.InterviewSessionDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMInterviewSessionDAO(db)
}

func initInterviewConfig() service.Config {
	cfg := service.DefaultConfig()
	if v := econf.GetInt("interview.rearmDelayMs"); v > 0 {
		cfg.Session.RearmDelay = time.Duration(v) * time.Millisecond
	}
	if v := econf.GetInt("interview.callTimeoutSeconds"); v > 0 {
		cfg.Session.CallTimeout = time.Duration(v) * time.Second
	}
	if v := econf.GetInt("interview.sessionTTLMinutes"); v > 0 {
		cfg.SessionTTL = time.Duration(v) * time.Minute
	}
	return cfg
}
