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

package domain

// SessionRecord 面试会话的记录，会话本身只在内存里面，这里记录它的结局
type SessionRecord struct {
	ID        int64
	SessionID string
	Uid       int64
	Aid       int64
	// completed, abandoned, error
	Outcome Outcome
	Turns   int
	Stime   int64
	Etime   int64
}

type Outcome string

const (
	OutcomeActive    Outcome = "active"
	OutcomeCompleted Outcome = "completed"
	OutcomeAbandoned Outcome = "abandoned"
	OutcomeFailed    Outcome = "failed"
)
