package utils

import (
	"sort"
	"time"
)

// SortNewestFirst sắp xếp descending theo thời gian tạo.
// Entries không có thời gian (nil) luôn nằm sau mọi entry có thời gian.
// Stable: thứ tự tương đối trong cùng một nhóm được giữ nguyên.
func SortNewestFirst[T any](items []T, createdAt func(T) *time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, tj := createdAt(items[i]), createdAt(items[j])
		if (ti == nil) != (tj == nil) {
			return tj == nil
		}
		if ti == nil {
			return false
		}
		return ti.After(*tj)
	})
}

// TruncateRunes cắt chuỗi theo số ký tự (rune), an toàn với UTF-8.
func TruncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
