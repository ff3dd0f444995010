package page

import (
	"math"

	"school-hub/biz/infrastructure/consts"

	"github.com/spf13/cast"
)

// ParsePageOpt 解析查询串里的 page/limit, 非法值回落到默认值, limit 不超过 MaxPageSize
func ParsePageOpt(page, limit string) (skip int64, size int64) {
	p := cast.ToInt64(page)
	size = cast.ToInt64(limit)
	if p < 1 {
		p = 1
	}
	if size <= 0 {
		size = consts.PageSize
	}
	if size > consts.MaxPageSize {
		size = consts.MaxPageSize
	}
	if p-1 > math.MaxInt64/size {
		return math.MaxInt64, size
	}
	return (p - 1) * size, size
}

// Slice 对内存中的结果分页, limit 为空时返回全部
func Slice[T any](items []T, page, limit string) []T {
	if limit == "" && page == "" {
		return items
	}
	skip, size := ParsePageOpt(page, limit)
	if skip >= int64(len(items)) {
		return []T{}
	}
	end := skip + size
	if end < skip || end > int64(len(items)) {
		end = int64(len(items))
	}
	return items[skip:end]
}
