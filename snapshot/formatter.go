package snapshot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ncruces/go-strftime"

	"github.com/arloliu/xcxsave/errs"
)

// FormatName substitutes {field} and {field:spec} references in pattern.
//
// The spec grammar is [[fill]align][sign][#][0][width][,|_][.precision][type]
// for strings and numbers; for time values the spec is a strftime layout
// such as {datetime:%Y-%m-%d}. A conversion such as {name!r} is accepted.
// "{{" and "}}" produce literal braces.
//
// A field missing from tokens is written back as {field}, dropping its
// conversion and spec, so a partially known pattern still yields a usable name.
func FormatName(pattern string, tokens Tokens) (string, error) {
	var sb strings.Builder
	sb.Grow(len(pattern))

	for i := 0; i < len(pattern); {
		switch c := pattern[i]; c {
		case '{':
			if i+1 < len(pattern) && pattern[i+1] == '{' {
				sb.WriteByte('{')
				i += 2

				continue
			}

			end := strings.IndexByte(pattern[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: single '{' at %d", errs.ErrInvalidNamePattern, i)
			}

			field := pattern[i+1 : i+1+end]
			if strings.IndexByte(field, '{') >= 0 {
				return "", fmt.Errorf("%w: nested field in %q", errs.ErrInvalidNamePattern, field)
			}

			out, err := formatField(field, tokens)
			if err != nil {
				return "", err
			}
			sb.WriteString(out)
			i += end + 2
		case '}':
			if i+1 < len(pattern) && pattern[i+1] == '}' {
				sb.WriteByte('}')
				i += 2

				continue
			}

			return "", fmt.Errorf("%w: single '}' at %d", errs.ErrInvalidNamePattern, i)
		default:
			sb.WriteByte(c)
			i++
		}
	}

	return sb.String(), nil
}

func formatField(field string, tokens Tokens) (string, error) {
	name, spec, _ := strings.Cut(field, ":")
	name, conv, hasConv := strings.Cut(name, "!")
	if hasConv && conv != "s" && conv != "r" && conv != "a" {
		return "", fmt.Errorf("%w: unknown conversion %q", errs.ErrInvalidNamePattern, conv)
	}

	key := name
	if i := strings.IndexAny(name, ".["); i >= 0 {
		key = name[:i]
	}

	value, ok := tokens[key]
	if !ok {
		return "{" + name + "}", nil
	}
	if key != name {
		return "", fmt.Errorf("%w: field %q has no attributes", errs.ErrInvalidNamePattern, key)
	}

	if hasConv {
		s := stringValue(value)
		if conv != "s" {
			s = strconv.Quote(s)
		}
		value = s
	}

	out, err := formatValue(value, spec)
	if err != nil {
		return "", fmt.Errorf("%w: field %q: %w", errs.ErrInvalidNamePattern, name, err)
	}

	return out, nil
}

func stringValue(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format(time.RFC3339)
	}

	return fmt.Sprint(v)
}

func formatValue(v any, spec string) (string, error) {
	switch v := v.(type) {
	case time.Time:
		if spec == "" {
			return v.Format(time.RFC3339), nil
		}

		return strftime.Format(spec, v), nil
	case string:
		return formatString(v, spec)
	case int:
		return formatSigned(int64(v), spec)
	case int8:
		return formatSigned(int64(v), spec)
	case int16:
		return formatSigned(int64(v), spec)
	case int32:
		return formatSigned(int64(v), spec)
	case int64:
		return formatSigned(v, spec)
	case uint:
		return formatInteger(false, uint64(v), spec)
	case uint8:
		return formatInteger(false, uint64(v), spec)
	case uint16:
		return formatInteger(false, uint64(v), spec)
	case uint32:
		return formatInteger(false, uint64(v), spec)
	case uint64:
		return formatInteger(false, v, spec)
	case float32:
		return formatFloat(float64(v), spec)
	case float64:
		return formatFloat(v, spec)
	case fmt.Stringer:
		return formatString(v.String(), spec)
	default:
		return formatString(fmt.Sprint(v), spec)
	}
}

type formatSpec struct {
	fill      rune
	align     rune
	sign      rune
	alt       bool
	zero      bool
	width     int
	grouping  rune
	precision int
	verb      rune
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '^' || r == '='
}

func parseSpec(spec string) (formatSpec, error) {
	fs := formatSpec{precision: -1}
	r := []rune(spec)
	i := 0

	switch {
	case len(r) >= 2 && isAlign(r[1]):
		fs.fill, fs.align = r[0], r[1]
		i = 2
	case len(r) >= 1 && isAlign(r[0]):
		fs.align = r[0]
		i = 1
	}

	if i < len(r) && (r[i] == '+' || r[i] == '-' || r[i] == ' ') {
		fs.sign = r[i]
		i++
	}
	if i < len(r) && r[i] == '#' {
		fs.alt = true
		i++
	}
	if i < len(r) && r[i] == '0' {
		fs.zero = true
		i++
	}

	start := i
	for i < len(r) && r[i] >= '0' && r[i] <= '9' {
		i++
	}
	if i > start {
		fs.width, _ = strconv.Atoi(string(r[start:i]))
	}

	if i < len(r) && (r[i] == ',' || r[i] == '_') {
		fs.grouping = r[i]
		i++
	}

	if i < len(r) && r[i] == '.' {
		i++
		start = i
		for i < len(r) && r[i] >= '0' && r[i] <= '9' {
			i++
		}
		if i == start {
			return formatSpec{}, fmt.Errorf("format spec %q: missing precision", spec)
		}
		fs.precision, _ = strconv.Atoi(string(r[start:i]))
	}

	if i < len(r) {
		fs.verb = r[i]
		i++
	}
	if i != len(r) {
		return formatSpec{}, fmt.Errorf("invalid format spec %q", spec)
	}

	return fs, nil
}

func (fs formatSpec) pad(s string, defaultAlign rune) string {
	n := utf8.RuneCountInString(s)
	if n >= fs.width {
		return s
	}

	fill := fs.fill
	if fill == 0 {
		fill = ' '
	}
	align := fs.align
	if align == 0 {
		align = defaultAlign
	}

	padding := fs.width - n
	switch align {
	case '<':
		return s + strings.Repeat(string(fill), padding)
	case '^':
		left := padding / 2
		return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), padding-left)
	default:
		return strings.Repeat(string(fill), padding) + s
	}
}

func formatString(s, spec string) (string, error) {
	fs, err := parseSpec(spec)
	if err != nil {
		return "", err
	}

	switch {
	case fs.verb != 0 && fs.verb != 's':
		return "", fmt.Errorf("unknown format code %q for string", fs.verb)
	case fs.sign != 0:
		return "", fmt.Errorf("sign not allowed in string format spec")
	case fs.alt:
		return "", fmt.Errorf("alternate form not allowed in string format spec")
	case fs.grouping != 0:
		return "", fmt.Errorf("grouping not allowed in string format spec")
	case fs.align == '=':
		return "", fmt.Errorf("'=' alignment not allowed in string format spec")
	}

	if fs.precision >= 0 && utf8.RuneCountInString(s) > fs.precision {
		s = string([]rune(s)[:fs.precision])
	}
	if fs.zero && fs.fill == 0 {
		fs.fill = '0'
	}

	return fs.pad(s, '<'), nil
}

func formatSigned(v int64, spec string) (string, error) {
	if v < 0 {
		return formatInteger(true, uint64(-(v+1))+1, spec) //nolint: gosec
	}

	return formatInteger(false, uint64(v), spec)
}

func formatInteger(neg bool, mag uint64, spec string) (string, error) {
	fs, err := parseSpec(spec)
	if err != nil {
		return "", err
	}

	base := 10
	prefix := ""
	switch fs.verb {
	case 0, 'd', 'n':
	case 'x', 'X':
		base, prefix = 16, "0"+string(fs.verb)
	case 'o':
		base, prefix = 8, "0o"
	case 'b':
		base, prefix = 2, "0b"
	case 'e', 'E', 'f', 'F', 'g', 'G', '%':
		f := float64(mag)
		if neg {
			f = -f
		}

		return formatFloat(f, spec)
	default:
		return "", fmt.Errorf("unknown format code %q for integer", fs.verb)
	}

	if fs.precision >= 0 {
		return "", fmt.Errorf("precision not allowed in integer format spec")
	}

	digits := strconv.FormatUint(mag, base)
	if fs.verb == 'X' {
		digits = strings.ToUpper(digits)
	}
	if fs.grouping != 0 {
		every := 3
		if base != 10 {
			if fs.grouping == ',' {
				return "", fmt.Errorf("cannot use ',' with format code %q", fs.verb)
			}
			every = 4
		}
		digits = group(digits, fs.grouping, every)
	}
	if !fs.alt {
		prefix = ""
	}

	return fs.padNumber(signOf(neg, fs.sign)+prefix, digits), nil
}

func formatFloat(f float64, spec string) (string, error) {
	fs, err := parseSpec(spec)
	if err != nil {
		return "", err
	}

	prec := fs.precision
	var body string
	switch fs.verb {
	case 0:
		body = strconv.FormatFloat(math.Abs(f), 'g', prec, 64)
	case 'e', 'E', 'f', 'F', 'g', 'G':
		if prec < 0 {
			prec = 6
		}
		verb := byte(fs.verb)
		if verb == 'F' {
			verb = 'f'
		}
		body = strconv.FormatFloat(math.Abs(f), verb, prec, 64)
	case '%':
		if prec < 0 {
			prec = 6
		}
		body = strconv.FormatFloat(math.Abs(f)*100, 'f', prec, 64) + "%"
	default:
		return "", fmt.Errorf("unknown format code %q for float", fs.verb)
	}

	if fs.grouping != 0 {
		intPart, rest := body, ""
		if i := strings.IndexAny(body, ".eE%"); i >= 0 {
			intPart, rest = body[:i], body[i:]
		}
		body = group(intPart, fs.grouping, 3) + rest
	}

	return fs.padNumber(signOf(math.Signbit(f), fs.sign), body), nil
}

func signOf(neg bool, sign rune) string {
	switch {
	case neg:
		return "-"
	case sign == '+':
		return "+"
	case sign == ' ':
		return " "
	default:
		return ""
	}
}

// padNumber pads a number, placing '=' padding between the sign and the digits.
func (fs formatSpec) padNumber(lead, digits string) string {
	if fs.zero && fs.fill == 0 {
		fs.fill = '0'
		if fs.align == 0 {
			fs.align = '='
		}
	}
	if fs.align != '=' {
		return fs.pad(lead+digits, '>')
	}

	inner := fs
	inner.width = max(fs.width-utf8.RuneCountInString(lead), 0)

	return lead + inner.pad(digits, '>')
}

func group(digits string, sep rune, every int) string {
	if len(digits) <= every {
		return digits
	}

	var sb strings.Builder
	head := len(digits) % every
	if head > 0 {
		sb.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += every {
		if sb.Len() > 0 {
			sb.WriteRune(sep)
		}
		sb.WriteString(digits[i : i+every])
	}

	return sb.String()
}
