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

package values

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

const (
	nanosPerDay  = int64(24 * time.Hour)
	daysPerMonth = 30
)

// Interval is a calendar aware duration: whole months, whole days and a
// sub-day remainder in nanoseconds. Months and days are kept apart because
// their length depends on the date they are applied to.
type Interval struct {
	Months int64
	Days   int64
	Nanos  int64
}

// NewInterval builds an Interval from its SQL components.
func NewInterval(years, months, days, hours, minutes int64, seconds float64) Interval {
	return Interval{
		Months: years*12 + months,
		Days:   days,
		Nanos:  hours*int64(time.Hour) + minutes*int64(time.Minute) + int64(math.Round(seconds*float64(time.Second))),
	}
}

func (v Interval) DataType() DataType { return IntervalType }
func (v Interval) Clone() Value       { return v }

func (v Interval) Literal() string {
	parts := make([]string, 0, 4)
	years, months := v.Months/12, v.Months%12
	if years != 0 {
		parts = append(parts, plural(years, "year"))
	}
	if months != 0 {
		parts = append(parts, plural(months, "mon"))
	}
	if v.Days != 0 {
		parts = append(parts, plural(v.Days, "day"))
	}
	if v.Nanos != 0 || len(parts) == 0 {
		parts = append(parts, clock(v.Nanos))
	}
	return strings.Join(parts, " ")
}

func plural(n int64, unit string) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func clock(nanos int64) string {
	sign := ""
	if nanos < 0 {
		sign = "-"
		nanos = -nanos
	}
	d := time.Duration(nanos)
	h := int64(d / time.Hour)
	m := int64((d % time.Hour) / time.Minute)
	s := (d % time.Minute).Seconds()
	secs := strconv.FormatFloat(s, 'f', -1, 64)
	if s < 10 {
		secs = "0" + secs
	}
	return fmt.Sprintf("%s%02d:%02d:%s", sign, h, m, secs)
}

// normalized folds months into 30 day blocks and days into the nanosecond
// remainder, giving an exact total order.
func (v Interval) normalized() (int64, int64) {
	days := v.Months*daysPerMonth + v.Days + v.Nanos/nanosPerDay
	rem := v.Nanos % nanosPerDay
	if rem < 0 {
		rem += nanosPerDay
		days--
	}
	return days, rem
}

func (v Interval) Equals(other Value) bool {
	ord, ok := v.Compare(other)
	return ok && ord == Equal
}

func (v Interval) Compare(other Value) (Ordering, bool) {
	o, ok := other.(Interval)
	if !ok {
		return 0, false
	}
	ld, ln := v.normalized()
	rd, rn := o.normalized()
	if c := compareInt(ld, rd); c != 0 {
		return orderOf(c), true
	}
	return orderOf(compareInt(ln, rn)), true
}

func (v Interval) Arithmetic(op ArithmeticOperator, other Value) (Value, error) {
	switch o := other.(type) {
	case Interval:
		switch op {
		case OpPlus:
			return Interval{Months: v.Months + o.Months, Days: v.Days + o.Days, Nanos: v.Nanos + o.Nanos}, nil
		case OpMinus:
			return Interval{Months: v.Months - o.Months, Days: v.Days - o.Days, Nanos: v.Nanos - o.Nanos}, nil
		}
	case Integer:
		if op == OpPlus || op == OpMinus {
			return v.shiftDays(op, o.Value)
		}
		return v.scaleBy(op, float64(o.Value), other)
	case Float:
		return v.scaleBy(op, o.Value, other)
	}
	return nil, typeMismatch(op.String(), v, other)
}

// shiftDays 整数按天数参与加减
func (v Interval) shiftDays(op ArithmeticOperator, days int64) (Value, error) {
	d, err := intArithmetic(op, v.Days, days)
	if err != nil {
		return nil, err
	}
	return Interval{Months: v.Months, Days: d.(Integer).Value, Nanos: v.Nanos}, nil
}

func (v Interval) scaleBy(op ArithmeticOperator, factor float64, other Value) (Value, error) {
	switch op {
	case OpStar:
		return v.scale(factor)
	case OpSlash:
		if factor == 0 {
			return nil, NewError(ErrorDivisionByZero, "division by zero: %s / 0", v.Literal())
		}
		return v.scale(1 / factor)
	}
	return nil, typeMismatch(op.String(), v, other)
}

// scale multiplies every component, cascading fractional months into days
// and fractional days into the time part.
func (v Interval) scale(factor float64) (Value, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, NewError(ErrorInvalidOperation, "cannot scale interval by %v", factor)
	}
	months := float64(v.Months) * factor
	wholeMonths := math.Trunc(months)
	days := float64(v.Days)*factor + (months-wholeMonths)*daysPerMonth
	wholeDays := math.Trunc(days)
	nanos := float64(v.Nanos)*factor + (days-wholeDays)*float64(nanosPerDay)
	return Interval{
		Months: int64(wholeMonths),
		Days:   int64(wholeDays),
		Nanos:  int64(math.Round(nanos)),
	}, nil
}

func (v Interval) Unary(op UnaryOperator) (Value, error) {
	if op == OpNegative {
		return Interval{Months: -v.Months, Days: -v.Days, Nanos: -v.Nanos}, nil
	}
	return nil, unsupported(op.String(), v)
}

func (v Interval) CastTo(target DataType) (Value, error) {
	switch target.Kind() {
	case KindInterval, KindAny:
		return v, nil
	case KindText:
		return Text{Value: v.Literal()}, nil
	}
	return nil, invalidCast(v, target)
}

var intervalUnits = map[string]func(n float64) Interval{
	"year":   func(n float64) Interval { return Interval{Months: int64(n * 12)} },
	"month":  func(n float64) Interval { return Interval{Months: int64(n)} },
	"mon":    func(n float64) Interval { return Interval{Months: int64(n)} },
	"week":   func(n float64) Interval { return Interval{Days: int64(n * 7)} },
	"day":    func(n float64) Interval { return Interval{Days: int64(n)} },
	"hour":   func(n float64) Interval { return Interval{Nanos: int64(n * float64(time.Hour))} },
	"minute": func(n float64) Interval { return Interval{Nanos: int64(n * float64(time.Minute))} },
	"min":    func(n float64) Interval { return Interval{Nanos: int64(n * float64(time.Minute))} },
	"second": func(n float64) Interval { return Interval{Nanos: int64(n * float64(time.Second))} },
	"sec":    func(n float64) Interval { return Interval{Nanos: int64(n * float64(time.Second))} },
}

// ParseInterval parses texts such as "1 year 2 months 3 days 04:05:06" or a
// Go duration such as "1h30m".
func ParseInterval(text string) (Interval, error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return Interval{}, fmt.Errorf("empty interval")
	}
	if len(fields) == 1 && !strings.Contains(fields[0], ":") {
		d, err := cast.ToDurationE(fields[0])
		if err != nil {
			return Interval{}, err
		}
		return Interval{Nanos: int64(d)}, nil
	}
	var result Interval
	for i := 0; i < len(fields); i++ {
		field := fields[i]
		if strings.Contains(field, ":") {
			nanos, err := parseClock(field)
			if err != nil {
				return Interval{}, err
			}
			result.Nanos += nanos
			continue
		}
		n, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Interval{}, fmt.Errorf("invalid interval quantity %q", field)
		}
		if i+1 >= len(fields) {
			return Interval{}, fmt.Errorf("missing unit after %q", field)
		}
		i++
		unit := strings.TrimSuffix(fields[i], "s")
		build, ok := intervalUnits[unit]
		if !ok {
			return Interval{}, fmt.Errorf("unknown interval unit %q", fields[i])
		}
		part := build(n)
		result.Months += part.Months
		result.Days += part.Days
		result.Nanos += part.Nanos
	}
	return result, nil
}

func parseClock(field string) (int64, error) {
	sign := int64(1)
	if strings.HasPrefix(field, "-") {
		sign = -1
		field = field[1:]
	}
	parts := strings.Split(field, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q", field)
	}
	h, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hours in %q", field)
	}
	m, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q", field)
	}
	var s float64
	if len(parts) == 3 {
		if s, err = strconv.ParseFloat(parts[2], 64); err != nil {
			return 0, fmt.Errorf("invalid seconds in %q", field)
		}
	}
	total := h*int64(time.Hour) + m*int64(time.Minute) + int64(math.Round(s*float64(time.Second)))
	return sign * total, nil
}

// DateTimeLayout is the layout used to render DateTime values.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime 日期时间值
type DateTime struct {
	Value time.Time
}

// NewDateTime returns a DateTime holding t.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Value: t}
}

func (d DateTime) DataType() DataType { return DateTimeType }
func (d DateTime) Clone() Value       { return d }

func (d DateTime) Literal() string {
	if d.Value.Nanosecond() != 0 {
		return d.Value.Format(DateTimeLayout + ".999999999")
	}
	return d.Value.Format(DateTimeLayout)
}

func (d DateTime) Equals(other Value) bool {
	o, ok := other.(DateTime)
	return ok && d.Value.Equal(o.Value)
}

func (d DateTime) Compare(other Value) (Ordering, bool) {
	o, ok := other.(DateTime)
	if !ok {
		return 0, false
	}
	switch {
	case d.Value.Before(o.Value):
		return Less, true
	case d.Value.After(o.Value):
		return Greater, true
	}
	return Equal, true
}

func (d DateTime) Arithmetic(op ArithmeticOperator, other Value) (Value, error) {
	switch o := other.(type) {
	case Interval:
		switch op {
		case OpPlus:
			return DateTime{Value: d.shift(o, 1)}, nil
		case OpMinus:
			return DateTime{Value: d.shift(o, -1)}, nil
		}
	case DateTime:
		if op == OpMinus {
			diff := int64(d.Value.Sub(o.Value))
			return Interval{Days: diff / nanosPerDay, Nanos: diff % nanosPerDay}, nil
		}
	}
	return nil, typeMismatch(op.String(), d, other)
}

func (d DateTime) shift(iv Interval, sign int64) time.Time {
	t := d.Value.AddDate(0, int(sign*iv.Months), int(sign*iv.Days))
	return t.Add(time.Duration(sign * iv.Nanos))
}

func (d DateTime) CastTo(target DataType) (Value, error) {
	switch target.Kind() {
	case KindDateTime, KindAny:
		return d, nil
	case KindText:
		return Text{Value: d.Literal()}, nil
	case KindInt:
		return Integer{Value: d.Value.Unix()}, nil
	case KindFloat:
		return Float{Value: float64(d.Value.UnixNano()) / float64(time.Second)}, nil
	}
	return nil, invalidCast(d, target)
}
