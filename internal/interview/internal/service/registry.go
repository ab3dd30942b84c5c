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
	"fmt"
	"sync"
	"time"

	"github.com/ecodeclub/hireflow/internal/interview/internal/service/protocol"
	"github.com/patrickmn/go-cache"
)

// registry 内存里面正在进行的会话，同一个投递同一时刻只会有一个会话。
// 超过 ttl 没有结束的会话会被放弃。
type registry struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func newRegistry(ttl time.Duration) *registry {
	c := cache.New(ttl, max(ttl/4, time.Minute))
	// Delete 会在持有 mu 的时候同步回调，这里不能等待会话的事件队列
	c.OnEvicted(func(key string, val any) {
		if sess, ok := val.(*Session); ok {
			go sess.Post(protocol.Abandon{})
		}
	})
	return &registry{cache: c}
}

func (r *registry) indexKey(uid, aid int64) string {
	return fmt.Sprintf("index:%d:%d", uid, aid)
}

func (r *registry) sessionKey(id string) string {
	return "session:" + id
}

// put 返回被替换掉的会话，被替换的会话会收到 Abandon
func (r *registry) put(s *Session) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexKey(s.Uid(), s.Aid())
	var old *Session
	if val, ok := r.cache.Get(idx); ok {
		if o, ok := r.cache.Get(r.sessionKey(val.(string))); ok {
			old = o.(*Session)
			r.cache.Delete(r.sessionKey(old.ID()))
		}
	}
	r.cache.Set(r.sessionKey(s.ID()), s, cache.DefaultExpiration)
	r.cache.Set(idx, s.ID(), cache.DefaultExpiration)
	return old
}

func (r *registry) get(id string) (*Session, bool) {
	val, ok := r.cache.Get(r.sessionKey(id))
	if !ok {
		return nil, false
	}
	return val.(*Session), true
}

// remove 只有登记的还是 s 的时候才会删除，避免删掉同一个投递新开的会话
func (r *registry) remove(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexKey(s.Uid(), s.Aid())
	if val, ok := r.cache.Get(idx); ok && val.(string) == s.ID() {
		r.cache.Delete(idx)
	}
	if cur, ok := r.get(s.ID()); ok && cur == s {
		r.cache.Delete(r.sessionKey(s.ID()))
	}
}

func (r *registry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cnt := 0
	for _, item := range r.cache.Items() {
		if _, ok := item.Object.(*Session); ok {
			cnt++
		}
	}
	return cnt
}
