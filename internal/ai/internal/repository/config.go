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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/hireflow/internal/ai/internal/domain"
	"github.com/ecodeclub/hireflow/internal/ai/internal/repository/dao"
	"github.com/patrickmn/go-cache"
)

type ConfigRepository interface {
	GetConfig(ctx context.Context, biz string) (domain.BizConfig, error)
	InitConfig(ctx context.Context, cfg domain.BizConfig) error
}

// CachedConfigRepository 每次调用大模型都要读配置，所以放在本地缓存里面，
// 数据库里面的修改最多一分钟后生效
type CachedConfigRepository struct {
	dao   dao.ConfigDAO
	cache *cache.Cache
}

func NewCachedConfigRepository(dao dao.ConfigDAO) ConfigRepository {
	return &CachedConfigRepository{
		dao:   dao,
		cache: cache.New(time.Minute, 10*time.Minute),
	}
}

func (repo *CachedConfigRepository) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	if val, ok := repo.cache.Get(biz); ok {
		return val.(domain.BizConfig), nil
	}
	res, err := repo.dao.GetConfig(ctx, biz)
	if err != nil {
		return domain.BizConfig{}, err
	}
	cfg := repo.toDomain(res)
	repo.cache.SetDefault(biz, cfg)
	return cfg, nil
}

func (repo *CachedConfigRepository) InitConfig(ctx context.Context, cfg domain.BizConfig) error {
	return repo.dao.InitConfig(ctx, dao.BizConfig{
		Biz:          cfg.Biz,
		MaxInput:     cfg.MaxInput,
		Model:        cfg.Model,
		Price:        cfg.Price,
		Temperature:  cfg.Temperature,
		SystemPrompt: cfg.SystemPrompt,
	})
}

func (repo *CachedConfigRepository) toDomain(c dao.BizConfig) domain.BizConfig {
	return domain.BizConfig{
		Biz:          c.Biz,
		Model:        c.Model,
		Price:        c.Price,
		Temperature:  c.Temperature,
		SystemPrompt: c.SystemPrompt,
		MaxInput:     c.MaxInput,
	}
}
