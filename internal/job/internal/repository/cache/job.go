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
	"github.com/ecodeclub/hireflow/internal/job/internal/domain"
)

type JobCache interface {
	Get(ctx context.Context, id int64) (domain.Job, error)
	Set(ctx context.Context, job domain.Job) error
	Delete(ctx context.Context, id int64) error
}

type JobECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

// NewJobECache 投递的每个阶段都会读岗位，所以岗位详情需要缓存
func NewJobECache(c ecache.Cache) JobCache {
	return &JobECache{
		cache: &ecache.NamespaceCache{
			Namespace: "job:",
			C:         c,
		},
		expiration: time.Minute * 15,
	}
}

func (c *JobECache) Get(ctx context.Context, id int64) (domain.Job, error) {
	var job domain.Job
	err := c.cache.Get(ctx, c.key(id)).JSONScan(&job)
	return job, err
}

func (c *JobECache) Set(ctx context.Context, job domain.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, c.key(job.ID), data, c.expiration)
}

func (c *JobECache) Delete(ctx context.Context, id int64) error {
	_, err := c.cache.Delete(ctx, c.key(id))
	return err
}

func (c *JobECache) key(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
