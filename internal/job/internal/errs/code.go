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
	SystemError = ErrorCode{Code: 517001, Msg: "系统错误"}
	// NegativeWeight 权重不能为负数
	NegativeWeight   = ErrorCode{Code: 417001, Msg: "阶段权重不能为负数"}
	JobNotFound      = ErrorCode{Code: 417002, Msg: "岗位不存在"}
	PermissionDenied = ErrorCode{Code: 417003, Msg: "只能操作自己发布的岗位"}
	QuizNotReady     = ErrorCode{Code: 417004, Msg: "岗位还没有测验题目"}
	// QuizGenerateFailed 大模型出题失败，可以重试
	QuizGenerateFailed = ErrorCode{Code: 517002, Msg: "生成测验失败，请稍后重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
