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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ecodeclub/hireflow/internal/ai/internal/domain"
)

// extractJSON 大模型经常会用 markdown 代码块把 JSON 包起来，或者在前后加几句废话
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return strings.TrimSpace(raw)
	}
	return raw[start : end+1]
}

// decodeAnswer 解析大模型返回的 JSON，required 里面的字段必须出现并且不能是 null，
// 缺字段的回答直接拒绝，不能让零值混进分数计算
func decodeAnswer(answer string, val any, required ...string) error {
	data := []byte(extractJSON(answer))
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidAnswer, err)
	}
	for _, key := range required {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			return fmt.Errorf("%w: 缺少字段 %s", domain.ErrInvalidAnswer, key)
		}
	}
	if err := json.Unmarshal(data, val); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidAnswer, err)
	}
	return nil
}
