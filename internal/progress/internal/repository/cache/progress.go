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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hireflow/internal/progress/internal/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ErrKeyNotExist 目前只有 redis 一个实现，直接用别名
var ErrKeyNotExist = redis.Nil

//go:generate mockgen -source=./progress.go -destination=../../../mocks/progress_cache.mock.go -package=progressmocks ProgressCache
type ProgressCache interface {
	Get(ctx context.Context, uid, jobID int64) (domain.Progress, error)
	Set(ctx context.Context, p domain.Progress) error
	Delete(ctx context.Context, uid, jobID int64) error
}

type ProgressECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewProgressECache(c ecache.Cache) ProgressCache {
	return &ProgressECache{
		cache: &ecache.NamespaceCache{
			Namespace: "progress:",
			C:         c,
		},
		expiration: time.Hour * 24,
	}
}

func (c *ProgressECache) Get(ctx context.Context, uid, jobID int64) (domain.Progress, error) {
	var p domain.Progress
	val := c.cache.Get(ctx, c.key(uid, jobID))
	if val.KeyNotFound() {
		return p, ErrKeyNotExist
	}
	err := val.JSONScan(&p)
	return p, errors.Wrap(err, "读取答题进度缓存失败")
}

func (c *ProgressECache) Set(ctx context.Context, p domain.Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, c.key(p.Uid, p.JobID), data, c.expiration)
}

func (c *ProgressECache) Delete(ctx context.Context, uid, jobID int64) error {
	_, err := c.cache.Delete(ctx, c.key(uid, jobID))
	return err
}

func (c *ProgressECache) key(uid, jobID int64) string {
	return fmt.Sprintf("%d:%d", uid, jobID)
}
