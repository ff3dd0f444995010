package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidClock = errors.New("invalid time format, expected HH:MM (24h)")
	ErrInvalidDay   = errors.New("invalid day of week")
	ErrInvertedSlot = errors.New("start time must be before end time")
)

// ClockPattern 与前端校验一致, 小时允许不补零
var ClockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// Clock 一天内的分钟数, 比较时只使用这个值, 字符串只是存储格式
type Clock int

func ParseClock(s string) (Clock, error) {
	m := ClockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, ErrInvalidClock
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	return Clock(h*60 + min), nil
}

// String 始终输出补零的 HH:MM
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Day 周一为 1, 周日为 7
type Day int

const (
	Monday Day = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ParseDay 接受全称或三字母缩写, 忽略大小写
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	for d := Monday; d <= Sunday; d++ {
		name := dayNames[d]
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return d, nil
		}
	}
	return 0, ErrInvalidDay
}

func (d Day) Valid() bool { return d >= Monday && d <= Sunday }

func (d Day) String() string {
	if !d.Valid() {
		return ""
	}
	return dayNames[d]
}

// Slot 课表中的一个时间段
type Slot struct {
	ID      string
	ClassID string
	Day     Day
	Start   Clock
	End     Clock
}

// NewSlot 解析并校验时间段, start 必须早于 end
func NewSlot(id, classID, day, start, end string) (Slot, error) {
	d, err := ParseDay(day)
	if err != nil {
		return Slot{}, err
	}
	s, err := ParseClock(start)
	if err != nil {
		return Slot{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Slot{}, err
	}
	if s >= e {
		return Slot{}, ErrInvertedSlot
	}
	return Slot{ID: id, ClassID: classID, Day: d, Start: s, End: e}, nil
}

// Overlaps 半开区间 [Start, End), 首尾相接不算重叠
func (s Slot) Overlaps(o Slot) bool {
	return s.Start < o.End && s.End > o.Start
}
