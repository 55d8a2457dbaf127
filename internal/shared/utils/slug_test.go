package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"poemsite-backend/internal/shared/utils"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Nguyễn Nhật Ánh", "nguyen-nhat-anh"},
		{"Xuân Diệu", "xuan-dieu"},
		{"Mùa Thu!", "mua-thu"},
		{"  spaced   out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER Case", "upper-case"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.GenerateSlug(tt.input), "input=%q", tt.input)
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	inputs := []string{
		"Nguyễn Nhật Ánh",
		"Bài Thơ Số 1",
		"mot-slug-co-san",
		"Đường & Mây (bản mới)",
	}

	for _, input := range inputs {
		once := utils.GenerateSlug(input)
		twice := utils.GenerateSlug(once)
		assert.Equal(t, once, twice, "GenerateSlug must be idempotent for %q", input)
	}
}

func TestDisplayNameFromSlug(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"bai-tho-1", "Bai Tho 1"},
		{"nguyen-nhat-anh", "Nguyen Nhat Anh"},
		{"single", "Single"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.DisplayNameFromSlug(tt.slug))
	}
}

func TestTitleFromFileBase(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"Mua_Thu", "Mua Thu"},
		{"mua-thu", "Mua Thu"},
		{"Autumn", "Autumn"},
		// Dấu câu phải được giữ nguyên, khác với GenerateSlug.
		{"Mua Thu!", "Mua Thu!"},
		{"em (bản nháp)", "Em (Bản Nháp)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.TitleFromFileBase(tt.base))
	}
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "Nguyen Nhat Anh", utils.RemoveDiacritics("Nguyễn Nhật Ánh"))
	assert.Equal(t, "duong", utils.RemoveDiacritics("đường"))
	assert.Equal(t, "plain ascii", utils.RemoveDiacritics("plain ascii"))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", utils.TruncateRunes("abc", 10))
	assert.Equal(t, "ab", utils.TruncateRunes("abcd", 2))
	// Cắt theo rune, không bao giờ để lại UTF-8 dở dang.
	assert.Equal(t, "ẩn", utils.TruncateRunes("ẩn danh", 2))
	assert.Equal(t, "", utils.TruncateRunes("", 5))
}
