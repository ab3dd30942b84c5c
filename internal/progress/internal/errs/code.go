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

package errs

var (
	SystemError         = ErrorCode{Code: 520001, Msg: "系统错误"}
	InvalidStep         = ErrorCode{Code: 420001, Msg: "进度的步骤只能是 resume、quiz 或者 interview"}
	ApplicationNotFound = ErrorCode{Code: 420002, Msg: "还没有投递这个岗位"}
	// StaleProgress 投递已经进入后面的阶段，客户端应该重新加载投递
	StaleProgress = ErrorCode{Code: 420003, Msg: "投递已经进入下一个阶段，请刷新页面"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
