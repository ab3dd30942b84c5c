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

package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/hireflow/internal/ai/internal/repository"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler/platform/gemini"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler/record"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

const (
	PlatformOpenAI = "openai"
	PlatformZhipu  = "zhipu"
	PlatformGemini = "gemini"
)

type platformConfig struct {
	APIKey  string `yaml:"apikey"`
	BaseURL string `yaml:"baseURL"`
	Model   string `yaml:"model"`
	// 分/1k token
	Price int64 `yaml:"price"`
}

// InitPlatform 根据 llm.platform 选择真正调用的大模型平台，同时写入各个业务的默认配置
func InitPlatform(repo repository.ConfigRepository) handler.Handler {
	name := econf.GetString("llm.platform")
	if name == "" {
		name = PlatformOpenAI
	}
	var cfg platformConfig
	err := econf.UnmarshalKey(name, &cfg)
	if err != nil {
		panic(fmt.Errorf("读取 %s 配置失败 %w", name, err))
	}
	var h handler.Handler
	switch name {
	case PlatformOpenAI:
		h = openai.NewHandler(cfg.BaseURL, cfg.APIKey, cfg.Model)
	case PlatformZhipu:
		h, err = zhipu.NewHandler(cfg.APIKey, cfg.Model)
	case PlatformGemini:
		h, err = gemini.NewHandler(context.Background(), cfg.APIKey, cfg.Model)
	default:
		err = fmt.Errorf("未知的大模型平台 %s", name)
	}
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	for _, c := range service.DefaultConfigs(cfg.Model, cfg.Price) {
		if err1 := repo.InitConfig(ctx, c); err1 != nil {
			panic(fmt.Errorf("初始化 %s 配置失败 %w", c.Biz, err1))
		}
	}
	elog.DefaultLogger.Info("大模型平台初始化完成", elog.String("platform", name), elog.String("model", cfg.Model))
	return h
}

func InitCommonHandlers(log *log.HandlerBuilder,
	cfg *config.HandlerBuilder,
	record *record.HandlerBuilder) []handler.Builder {
	// log -> record -> cfg -> platform
	return []handler.Builder{log, record, cfg}
}

func InitRootHandler(common []handler.Builder,
	// platform 就是真正的出口
	platform handler.Handler) handler.Handler {
	return handler.NewCompositionHandler(common, platform)
}

func InitBrain(svc llm.Service) Brain {
	// 小于 0 表示不限制
	maxQuestions := econf.GetInt("interview.maxQuestions")
	if maxQuestions == 0 {
		maxQuestions = 8
	}
	return service.NewBrain(svc, maxQuestions)
}
