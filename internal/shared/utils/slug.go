package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	slugInvalidRe = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRe  = regexp.MustCompile(`-+`)
)

// cases.Caser giữ state nội bộ nên không dùng chung giữa các goroutine;
// mỗi lần title-case tạo một caser riêng.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// GenerateSlug chuyển display name thành URL-safe slug.
// "Nguyễn Nhật Ánh" → "nguyen-nhat-anh". Idempotent.
func GenerateSlug(input string) string {
	ascii := RemoveDiacritics(input)
	lower := strings.ToLower(strings.TrimSpace(ascii))
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugInvalidRe.ReplaceAllString(hyphenated, "")
	normalized := slugHyphenRe.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}

// DisplayNameFromSlug là chiều ngược lại (không round-trip chính xác):
// "bai-tho-1" → "Bai Tho 1".
func DisplayNameFromSlug(slug string) string {
	if slug == "" {
		return ""
	}
	return titleCase(strings.ReplaceAll(slug, "-", " "))
}

// TitleFromFileBase lấy title từ phần base của tên file bài thơ
// ("Mua_Thu" → "Mua Thu"). Khác với GenerateSlug: giữ nguyên mọi ký tự
// ngoài "_" và "-", kể cả dấu câu.
func TitleFromFileBase(base string) string {
	replaced := strings.NewReplacer("_", " ", "-", " ").Replace(base)
	return titleCase(replaced)
}

// RemoveDiacritics chuyển ký tự tiếng Việt có dấu về base character
// (tất cả các tone của "a" => "a").
func RemoveDiacritics(input string) string {
	mappings := map[rune]rune{
		// Vowel A
		'á': 'a', 'à': 'a', 'ả': 'a', 'ã': 'a', 'ạ': 'a',
		'ă': 'a', 'ắ': 'a', 'ằ': 'a', 'ẳ': 'a', 'ẵ': 'a', 'ặ': 'a',
		'â': 'a', 'ấ': 'a', 'ầ': 'a', 'ẩ': 'a', 'ẫ': 'a', 'ậ': 'a',

		// Vowel E
		'é': 'e', 'è': 'e', 'ẻ': 'e', 'ẽ': 'e', 'ẹ': 'e',
		'ê': 'e', 'ế': 'e', 'ề': 'e', 'ể': 'e', 'ễ': 'e', 'ệ': 'e',

		// Vowel I
		'í': 'i', 'ì': 'i', 'ỉ': 'i', 'ĩ': 'i', 'ị': 'i',

		// Vowel O
		'ó': 'o', 'ò': 'o', 'ỏ': 'o', 'õ': 'o', 'ọ': 'o',
		'ô': 'o', 'ố': 'o', 'ồ': 'o', 'ổ': 'o', 'ỗ': 'o', 'ộ': 'o',
		'ơ': 'o', 'ớ': 'o', 'ờ': 'o', 'ở': 'o', 'ỡ': 'o', 'ợ': 'o',

		// Vowel U
		'ú': 'u', 'ù': 'u', 'ủ': 'u', 'ũ': 'u', 'ụ': 'u',
		'ư': 'u', 'ứ': 'u', 'ừ': 'u', 'ử': 'u', 'ữ': 'u', 'ự': 'u',

		// Vowel Y
		'ý': 'y', 'ỳ': 'y', 'ỷ': 'y', 'ỹ': 'y', 'ỵ': 'y',

		// Consonant D
		'đ': 'd',

		// UPPERCASE
		'Á': 'A', 'À': 'A', 'Ả': 'A', 'Ã': 'A', 'Ạ': 'A',
		'Ă': 'A', 'Ắ': 'A', 'Ằ': 'A', 'Ẳ': 'A', 'Ẵ': 'A', 'Ặ': 'A',
		'Â': 'A', 'Ấ': 'A', 'Ầ': 'A', 'Ẩ': 'A', 'Ẫ': 'A', 'Ậ': 'A',

		'É': 'E', 'È': 'E', 'Ẻ': 'E', 'Ẽ': 'E', 'Ẹ': 'E',
		'Ê': 'E', 'Ế': 'E', 'Ề': 'E', 'Ể': 'E', 'Ễ': 'E', 'Ệ': 'E',

		'Í': 'I', 'Ì': 'I', 'Ỉ': 'I', 'Ĩ': 'I', 'Ị': 'I',

		'Ó': 'O', 'Ò': 'O', 'Ỏ': 'O', 'Õ': 'O', 'Ọ': 'O',
		'Ô': 'O', 'Ố': 'O', 'Ồ': 'O', 'Ổ': 'O', 'Ỗ': 'O', 'Ộ': 'O',
		'Ơ': 'O', 'Ớ': 'O', 'Ờ': 'O', 'Ở': 'O', 'Ỡ': 'O', 'Ợ': 'O',

		'Ú': 'U', 'Ù': 'U', 'Ủ': 'U', 'Ũ': 'U', 'Ụ': 'U',
		'Ư': 'U', 'Ứ': 'U', 'Ừ': 'U', 'Ử': 'U', 'Ữ': 'U', 'Ự': 'U',

		'Ý': 'Y', 'Ỳ': 'Y', 'Ỷ': 'Y', 'Ỹ': 'Y', 'Ỵ': 'Y',

		'Đ': 'D',
	}

	result := make([]rune, 0, len(input))
	for _, r := range input {
		if replacement, ok := mappings[r]; ok {
			result = append(result, replacement)
		} else {
			result = append(result, r)
		}
	}

	return string(result)
}
