// Package report formats conversion results and persists them.
package report

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultFileName is where results are written when no output path is given.
const DefaultFileName = "ConvertionResults.txt"

// Row is the conversion of a single number.
type Row struct {
	Value  *big.Int
	Binary string
	Hex    string
}

// String formats the row as it appears in the report.
func (r Row) String() string {
	return fmt.Sprintf("Number: %s | Binary: %s | Hexadecimal: %s", r.Value.String(), r.Binary, r.Hex)
}

// Report is the full output of one run.
type Report struct {
	Rows    []Row
	Elapsed time.Duration
	Invalid []string
}

// Render returns the report text: one line per row, the execution time and,
// when any line failed to parse, the invalid entries.
func (r *Report) Render() string {
	var sb strings.Builder
	for i, row := range r.Rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(row.String())
	}
	fmt.Fprintf(&sb, "\nExecution Time: %.6f seconds\n", r.Elapsed.Seconds())
	if len(r.Invalid) > 0 {
		fmt.Fprintf(&sb, "\nInvalid Entries: %s\n", strings.Join(r.Invalid, ", "))
	}
	return sb.String()
}

// WriteTo prints the rendered report followed by a newline.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.Render()+"\n")
	return int64(n), err
}

// WriteFile stores the rendered report at path, creating missing parent
// directories. It returns the number of bytes written.
func WriteFile(path string, r *Report) (int, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}
	text := r.Render()
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write results to %s: %w", path, err)
	}
	return len(text), nil
}
