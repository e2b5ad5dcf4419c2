package ingest

import (
	"fmt"
	"strings"

	"shuho/internal/core"
)

// SizeLimitError indicates the input file exceeds MaxFileSize.
// It is returned before any parsing is attempted.
type SizeLimitError struct {
	Size int64 // Actual file size in bytes
}

func (e *SizeLimitError) Error() string {
	return "ファイルサイズは10MB以下にしてください。"
}

// SchemaError indicates one or more required columns are missing from the
// header row. The message names all required columns.
type SchemaError struct {
	Missing []string // Missing column names, in RequiredColumns order
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("必要なカラムが不足しています。必須: %s", strings.Join(core.RequiredColumns, ", "))
}

// MalformedFileError indicates a structural parse failure reported by the
// CSV reader. Reason carries the first reader error.
type MalformedFileError struct {
	Reason string
}

func (e *MalformedFileError) Error() string {
	return fmt.Sprintf("CSVの解析中にエラーが発生しました: %s", e.Reason)
}

// RowError indicates an unparseable timestamp on a specific row, or an input
// with no data rows at all. Line is the physical CSV line number (header
// included, so data row i gets line i+2); Line 0 means the file held no
// data rows.
type RowError struct {
	Line  int    // Physical line number of the offending row
	Value string // Offending raw timestamp value
}

func (e *RowError) Error() string {
	if e.Line == 0 {
		return "CSVファイルに有効なデータがありません。"
	}
	return fmt.Sprintf("%d行目の投稿日時形式が不正です: %s", e.Line, e.Value)
}
