/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package functions

import (
	"time"

	"github.com/rulego/gitsql/values"
)

// NowFunction 返回当前语句的时间戳
type NowFunction struct {
	*BaseFunction
}

func NewNowFunction() *NowFunction {
	return &NowFunction{
		BaseFunction: NewBaseFunction("now", TypeDateTime, "时间日期函数", "返回当前时间", 0, 0),
	}
}

func (f *NowFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	return values.NewDateTime(ctx.CurrentTime()), nil
}

// datePartFunction extracts one calendar field from a DateTime.
type datePartFunction struct {
	*BaseFunction
	part func(time.Time) int
}

func NewYearFunction() Function {
	return &datePartFunction{
		BaseFunction: NewBaseFunction("year", TypeDateTime, "时间日期函数", "提取年份", 1, 1).NullPropagating(),
		part:         time.Time.Year,
	}
}

func NewMonthFunction() Function {
	return &datePartFunction{
		BaseFunction: NewBaseFunction("month", TypeDateTime, "时间日期函数", "提取月份", 1, 1).NullPropagating(),
		part:         func(t time.Time) int { return int(t.Month()) },
	}
}

func NewDayFunction() Function {
	return &datePartFunction{
		BaseFunction: NewBaseFunction("day", TypeDateTime, "时间日期函数", "提取日期", 1, 1).NullPropagating(),
		part:         time.Time.Day,
	}
}

func (f *datePartFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	dt, err := dateTimeArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	return values.NewInteger(int64(f.part(dt.Value))), nil
}

// UnixTimestampFunction returns seconds since the epoch of its argument, or
// of the statement time when called without one.
type UnixTimestampFunction struct {
	*BaseFunction
}

func NewUnixTimestampFunction() *UnixTimestampFunction {
	return &UnixTimestampFunction{
		BaseFunction: NewBaseFunction("unix_timestamp", TypeDateTime, "时间日期函数", "返回Unix时间戳", 0, 1).NullPropagating(),
	}
}

func (f *UnixTimestampFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	if len(args) == 0 {
		return values.NewInteger(ctx.CurrentTime().Unix()), nil
	}
	dt, err := dateTimeArg(f.name, args, 0)
	if err != nil {
		return nil, err
	}
	return values.NewInteger(dt.Value.Unix()), nil
}

// FromUnixtimeFunction converts epoch seconds to a UTC DateTime.
type FromUnixtimeFunction struct {
	*BaseFunction
}

func NewFromUnixtimeFunction() *FromUnixtimeFunction {
	return &FromUnixtimeFunction{
		BaseFunction: NewBaseFunction("from_unixtime", TypeDateTime, "时间日期函数", "将Unix时间戳转换为时间", 1, 1).NullPropagating(),
	}
}

func (f *FromUnixtimeFunction) Execute(ctx *FunctionContext, args []values.Value) (values.Value, error) {
	switch v := args[0].(type) {
	case values.Integer:
		return values.NewDateTime(time.Unix(v.Value, 0).UTC()), nil
	case values.Float:
		sec, frac := splitSeconds(v.Value)
		return values.NewDateTime(time.Unix(sec, frac).UTC()), nil
	}
	return nil, argError(f.name, 0, "a number", args[0])
}

func splitSeconds(f float64) (int64, int64) {
	sec := int64(f)
	return sec, int64((f - float64(sec)) * float64(time.Second))
}
