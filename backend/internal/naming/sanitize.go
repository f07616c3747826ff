package naming

import "strings"

// Fullwidth replacements for the characters that are not allowed in file
// names on common file systems.
var invalidCharReplacer = strings.NewReplacer(
	`\`, "￥",
	"/", "／",
	":", "：",
	"*", "＊",
	"?", "？",
	`"`, "”",
	"<", "＜",
	">", "＞",
	"|", "｜",
)

// Sanitize replaces each file system unsafe ASCII character with its
// fullwidth lookalike. All other characters are kept.
func Sanitize(text string) string {
	return invalidCharReplacer.Replace(text)
}
