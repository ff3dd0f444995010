package util

import (
	"encoding/json"
)

// JSONF 日志中打印结构体
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
