package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceFinder struct {
	slots []Slot
	err   error
}

func (f *sliceFinder) FindSlots(_ context.Context, classID string, day Day) ([]Slot, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []Slot
	for _, s := range f.slots {
		if s.ClassID == classID && s.Day == day {
			out = append(out, s)
		}
	}
	return out, nil
}

func mustSlot(t *testing.T, id, classID, day, start, end string) Slot {
	t.Helper()
	s, err := NewSlot(id, classID, day, start, end)
	require.NoError(t, err)
	return s
}

func TestChecker_CheckConflict(t *testing.T) {
	existing := []Slot{
		mustSlot(t, "s1", "C1", "Monday", "09:00", "10:00"),
		mustSlot(t, "s2", "C1", "Monday", "13:00", "14:00"),
		mustSlot(t, "s3", "C1", "Tuesday", "09:00", "10:00"),
	}
	checker := NewChecker(&sliceFinder{slots: existing})

	tests := []struct {
		name      string
		candidate Slot
		excludeID string
		want      bool
	}{
		{name: "partial overlap", candidate: mustSlot(t, "", "C1", "Monday", "09:30", "10:30"), want: true},
		{name: "adjacent after", candidate: mustSlot(t, "", "C1", "Monday", "10:00", "11:00"), want: false},
		{name: "adjacent before", candidate: mustSlot(t, "", "C1", "Monday", "08:00", "09:00"), want: false},
		{name: "other class same time", candidate: mustSlot(t, "", "C2", "Monday", "09:00", "10:00"), want: false},
		{name: "identical interval", candidate: mustSlot(t, "", "C1", "Monday", "09:00", "10:00"), want: true},
		{name: "contained", candidate: mustSlot(t, "", "C1", "Monday", "09:15", "09:45"), want: true},
		{name: "containing", candidate: mustSlot(t, "", "C1", "Monday", "08:00", "11:00"), want: true},
		{name: "second session on same day", candidate: mustSlot(t, "", "C1", "Monday", "13:30", "15:00"), want: true},
		{name: "other day", candidate: mustSlot(t, "", "C1", "Wednesday", "09:00", "10:00"), want: false},
		{name: "update excludes itself", candidate: mustSlot(t, "s1", "C1", "Monday", "09:00", "10:00"), excludeID: "s1", want: false},
		{name: "update still conflicts with sibling", candidate: mustSlot(t, "s1", "C1", "Monday", "12:00", "13:30"), excludeID: "s1", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checker.CheckConflict(context.Background(), tt.candidate, tt.excludeID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecker_CheckConflict_FinderError(t *testing.T) {
	boom := errors.New("db down")
	checker := NewChecker(&sliceFinder{err: boom})
	_, err := checker.CheckConflict(context.Background(), mustSlot(t, "", "C1", "Monday", "09:00", "10:00"), "")
	assert.ErrorIs(t, err, boom)
}

func TestOverlapMatchesStrictInequality(t *testing.T) {
	// 对所有 15 分钟粒度的区间组合验证重叠规则
	for as := Clock(0); as < 24*60; as += 15 * 7 {
		for ae := as + 15; ae <= 24*60 && ae < as+4*60; ae += 15 * 3 {
			for bs := Clock(0); bs < 24*60; bs += 15 * 5 {
				for be := bs + 15; be <= 24*60 && be < bs+3*60; be += 15 * 2 {
					a := Slot{ClassID: "C", Day: Monday, Start: as, End: ae}
					b := Slot{ClassID: "C", Day: Monday, Start: bs, End: be}
					want := as < be && ae > bs
					if got := a.Overlaps(b); got != want {
						t.Fatalf("Overlaps(%v-%v, %v-%v) = %v, want %v", as, ae, bs, be, got, want)
					}
					if a.Overlaps(b) != b.Overlaps(a) {
						t.Fatalf("Overlaps not symmetric for %v-%v, %v-%v", as, ae, bs, be)
					}
				}
			}
		}
	}
}

func TestNewSlot(t *testing.T) {
	tests := []struct {
		name    string
		day     string
		start   string
		end     string
		wantErr error
	}{
		{name: "valid", day: "Monday", start: "09:00", end: "10:00"},
		{name: "unpadded hour", day: "Friday", start: "9:05", end: "10:00"},
		{name: "abbreviated day", day: "mon", start: "09:00", end: "10:00"},
		{name: "bad day", day: "Funday", start: "09:00", end: "10:00", wantErr: ErrInvalidDay},
		{name: "bad hour", day: "Monday", start: "24:00", end: "10:00", wantErr: ErrInvalidClock},
		{name: "bad minute", day: "Monday", start: "09:60", end: "10:00", wantErr: ErrInvalidClock},
		{name: "twelve hour format", day: "Monday", start: "9am", end: "10:00", wantErr: ErrInvalidClock},
		{name: "inverted", day: "Monday", start: "11:00", end: "10:00", wantErr: ErrInvertedSlot},
		{name: "empty interval", day: "Monday", start: "10:00", end: "10:00", wantErr: ErrInvertedSlot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSlot("", "C1", tt.day, tt.start, tt.end)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClockNormalization(t *testing.T) {
	c, err := ParseClock("9:05")
	require.NoError(t, err)
	assert.Equal(t, Clock(9*60+5), c)
	assert.Equal(t, "09:05", c.String())

	// 字符串比较下 "9:30" > "10:00", 分钟比较则不会
	early, _ := ParseClock("9:30")
	late, _ := ParseClock("10:00")
	assert.Less(t, early, late)
}

func TestSortBy(t *testing.T) {
	slots := []Slot{
		mustSlot(t, "a", "C1", "Wednesday", "08:00", "09:00"),
		mustSlot(t, "b", "C1", "Monday", "10:00", "11:00"),
		mustSlot(t, "c", "C1", "Monday", "9:00", "10:00"),
		mustSlot(t, "d", "C1", "Sunday", "07:00", "08:00"),
	}
	SortBy(slots, func(s Slot) Slot { return s })
	ids := make([]string, 0, len(slots))
	for _, s := range slots {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"c", "b", "a", "d"}, ids)
}
