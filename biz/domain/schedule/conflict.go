package schedule

import (
	"context"
	"sort"
)

// SlotFinder 按 (classId, day) 读取已存在的时间段
type SlotFinder interface {
	FindSlots(ctx context.Context, classID string, day Day) ([]Slot, error)
}

type Checker struct {
	Finder SlotFinder
}

func NewChecker(finder SlotFinder) *Checker {
	return &Checker{Finder: finder}
}

// CheckConflict 同一班级同一天内是否存在与 candidate 重叠的时间段, excludeID 用于更新时排除自身
func (c *Checker) CheckConflict(ctx context.Context, candidate Slot, excludeID string) (bool, error) {
	existing, err := c.Finder.FindSlots(ctx, candidate.ClassID, candidate.Day)
	if err != nil {
		return false, err
	}
	_, found := FirstConflict(candidate, existing, excludeID)
	return found, nil
}

// FirstConflict 扫描全部时间段, 返回第一个冲突项
func FirstConflict(candidate Slot, existing []Slot, excludeID string) (Slot, bool) {
	for _, s := range existing {
		if excludeID != "" && s.ID == excludeID {
			continue
		}
		if s.ClassID != candidate.ClassID || s.Day != candidate.Day {
			continue
		}
		if s.Overlaps(candidate) {
			return s, true
		}
	}
	return Slot{}, false
}

// SortBy 周一优先, 同一天按开始时间, 再按结束时间
func SortBy[T any](items []T, slotOf func(T) Slot) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := slotOf(items[i]), slotOf(items[j])
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.End < b.End
	})
}
