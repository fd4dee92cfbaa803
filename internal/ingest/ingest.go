package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/specialistvlad/numconv/internal/ctxlog"
)

// maxLineSize bounds a single input line. Integers are arbitrary precision,
// so this is far above the bufio default.
const maxLineSize = 16 << 20

// Number is one successfully parsed line.
type Number struct {
	Line  int
	Raw   string
	Value *big.Int
}

// Result holds the parsed numbers and the raw text of the lines that failed,
// both in file order.
type Result struct {
	Numbers []Number
	Invalid []string
}

// Values returns the parsed integers in file order.
func (r *Result) Values() []*big.Int {
	values := make([]*big.Int, len(r.Numbers))
	for i, n := range r.Numbers {
		values[i] = n.Value
	}
	return values
}

// ReadNumbers opens path and parses it with Parse. A missing file is reported
// with an error that wraps fs.ErrNotExist.
func ReadNumbers(ctx context.Context, path string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading input file.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	res, err := Parse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	logger.Debug("Input file read.", "path", path, "numbers", len(res.Numbers), "invalid", len(res.Invalid))
	return res, nil
}

// Parse reads r line by line. Each line is trimmed of surrounding whitespace
// and parsed with ParseInt. Failed lines, empty ones included, are recorded
// in Result.Invalid and do not stop the scan.
func Parse(ctx context.Context, r io.Reader) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	res := &Result{}
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		raw := strings.TrimSpace(scanner.Text())

		v, ok := ParseInt(raw)
		if !ok {
			logger.Debug("Skipping invalid line.", "line", lineNum, "text", raw)
			res.Invalid = append(res.Invalid, raw)
			continue
		}
		res.Numbers = append(res.Numbers, Number{Line: lineNum, Raw: raw, Value: v})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// ParseInt parses a base-10 integer with an optional leading sign. Single
// underscores are allowed between digits, so "1_000" is 1000 but "1__0",
// "_1" and "1_" are rejected. Leading zeros are allowed.
func ParseInt(s string) (*big.Int, bool) {
	digits := s
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if digits == "" {
		return nil, false
	}

	var sb strings.Builder
	sb.Grow(len(s))
	if s[0] == '-' {
		sb.WriteByte('-')
	}

	prevDigit := false
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		switch {
		case c >= '0' && c <= '9':
			sb.WriteByte(c)
			prevDigit = true
		case c == '_' && prevDigit && i+1 < len(digits):
			prevDigit = false
		default:
			return nil, false
		}
	}
	if !prevDigit {
		return nil, false
	}

	v, ok := new(big.Int).SetString(sb.String(), 10)
	if !ok {
		return nil, false
	}
	return v, true
}
