package token

import (
	"bytes"
	"fmt"
	"strings"
)

type Kind int

const (
	Blank Kind = iota
	Comment
	Table
	ArrayTable
	KeyValue
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "Blank"
	case Comment:
		return "Comment"
	case Table:
		return "Table"
	case ArrayTable:
		return "ArrayTable"
	case KeyValue:
		return "KeyValue"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Statement is one logical line of a document. A key/value whose value
// spans several physical lines is still a single statement.
type Statement struct {
	Kind Kind
	// Line is the 1-based line of the first byte.
	Line   int
	Indent string
	// Key is the raw key of a key/value, or the text between the
	// brackets of a header.
	Key string
	// Sep is the '=' of a key/value with its surrounding whitespace.
	Sep   string
	Value string
	// Trailer runs from the end of the value or header, or from the
	// indent of a blank or comment line, through the newline.
	Trailer string
}

// Raw returns the exact source text of the statement.
func (s *Statement) Raw() string {
	switch s.Kind {
	case Table:
		return s.Indent + "[" + s.Key + "]" + s.Trailer
	case ArrayTable:
		return s.Indent + "[[" + s.Key + "]]" + s.Trailer
	case KeyValue:
		return s.Indent + s.Key + s.Sep + s.Value + s.Trailer
	default:
		return s.Indent + s.Trailer
	}
}

// IsHeader reports whether s starts a table or array-of-tables section.
func (s *Statement) IsHeader() bool {
	return s.Kind == Table || s.Kind == ArrayTable
}

// Scan splits src into statements. The concatenated Raw text of the
// result equals src.
func Scan(src []byte) ([]Statement, error) {
	var res []Statement
	i, line := 0, 1
	for i < len(src) {
		st := Statement{Line: line}
		j := skipWS(src, i)
		st.Indent = string(src[i:j])
		var (
			end int
			err error
		)
		switch {
		case j == len(src) || src[j] == '\n' || src[j] == '\r':
			st.Kind = Blank
			end = lineEnd(src, j)
			st.Trailer = string(src[j:end])
		case src[j] == '#':
			st.Kind = Comment
			end = lineEnd(src, j)
			st.Trailer = string(src[j:end])
		case src[j] == '[':
			end, err = scanHeader(src, j, &st)
		default:
			end, err = scanKeyValue(src, j, &st)
		}
		if err != nil {
			return nil, &ScanError{Err: err, Line: line, What: strings.TrimSpace(string(src[j:lineEnd(src, j)]))}
		}
		line += bytes.Count(src[i:end], []byte{'\n'})
		res = append(res, st)
		i = end
	}
	return res, nil
}

func scanHeader(src []byte, j int, st *Statement) (int, error) {
	open := 1
	st.Kind = Table
	if j+1 < len(src) && src[j+1] == '[' {
		open = 2
		st.Kind = ArrayTable
	}
	k := j + open
	for k < len(src) && src[k] != ']' {
		switch src[k] {
		case '"', '\'':
			e, err := skipString(src, k)
			if err != nil {
				return 0, err
			}
			k = e
			continue
		case '\n':
			return 0, ErrHeader
		}
		k++
	}
	if k == len(src) {
		return 0, ErrHeader
	}
	if open == 2 && (k+1 >= len(src) || src[k+1] != ']') {
		return 0, ErrHeader
	}
	st.Key = string(src[j+open : k])
	end := lineEnd(src, k+open)
	st.Trailer = string(src[k+open : end])
	return end, nil
}

func scanKeyValue(src []byte, j int, st *Statement) (int, error) {
	st.Kind = KeyValue
	k := j
	for k < len(src) && src[k] != '=' {
		switch src[k] {
		case '"', '\'':
			e, err := skipString(src, k)
			if err != nil {
				return 0, err
			}
			k = e
			continue
		case '\n':
			return 0, fmt.Errorf("%w key", ErrUnterminated)
		}
		k++
	}
	if k == len(src) {
		return 0, fmt.Errorf("%w key", ErrUnterminated)
	}
	keyEnd := k
	for keyEnd > j && isWS(src[keyEnd-1]) {
		keyEnd--
	}
	st.Key = string(src[j:keyEnd])
	v := skipWS(src, k+1)
	st.Sep = string(src[keyEnd:v])
	ve, err := valueEnd(src, v)
	if err != nil {
		return 0, err
	}
	st.Value = string(src[v:ve])
	end := lineEnd(src, ve)
	st.Trailer = string(src[ve:end])
	return end, nil
}

func valueEnd(src []byte, i int) (int, error) {
	if i >= len(src) {
		return i, nil
	}
	switch src[i] {
	case '"', '\'':
		return skipString(src, i)
	case '[', '{':
		return skipBracketed(src, i)
	}
	return scalarEnd(src, i), nil
}

// skipString returns the offset just past the string starting at i,
// which may be any of the four TOML string forms.
func skipString(src []byte, i int) (int, error) {
	q := src[i]
	triple := []byte{q, q, q}
	if bytes.HasPrefix(src[i:], triple) {
		k := i + 3
		for k < len(src) {
			if q == '"' && src[k] == '\\' {
				k += 2
				continue
			}
			if bytes.HasPrefix(src[k:], triple) {
				e := k + 3
				// up to two quotes may precede the closing delimiter
				for n := 0; n < 2 && e < len(src) && src[e] == q; n++ {
					e++
				}
				return e, nil
			}
			k++
		}
		return 0, fmt.Errorf("%w multiline string", ErrUnterminated)
	}
	k := i + 1
	for k < len(src) {
		c := src[k]
		switch {
		case c == '\n':
			return 0, fmt.Errorf("%w string", ErrUnterminated)
		case q == '"' && c == '\\':
			k += 2
			continue
		case c == q:
			return k + 1, nil
		}
		k++
	}
	return 0, fmt.Errorf("%w string", ErrUnterminated)
}

func skipBracketed(src []byte, i int) (int, error) {
	depth := 0
	k := i
	for k < len(src) {
		switch src[k] {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return k + 1, nil
			}
		case '"', '\'':
			e, err := skipString(src, k)
			if err != nil {
				return 0, err
			}
			k = e
			continue
		case '#':
			nl := bytes.IndexByte(src[k:], '\n')
			if nl == -1 {
				return 0, fmt.Errorf("%w %c", ErrUnterminated, src[i])
			}
			k += nl
			continue
		}
		k++
	}
	return 0, fmt.Errorf("%w %c", ErrUnterminated, src[i])
}

func scalarEnd(src []byte, i int) int {
	k := i
	for k < len(src) {
		c := src[k]
		if c == ' ' && k-i == 10 && isDate(src[i:k]) && k+1 < len(src) && isDigit(src[k+1]) {
			// "1979-05-27 07:32:00"
			k++
			continue
		}
		if isWS(c) || c == '\r' || c == '\n' || c == '#' {
			break
		}
		k++
	}
	return k
}

func isDate(d []byte) bool {
	if len(d) != 10 || d[4] != '-' || d[7] != '-' {
		return false
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6, 8, 9} {
		if !isDigit(d[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isWS(c byte) bool { return c == ' ' || c == '\t' }

func skipWS(src []byte, i int) int {
	for i < len(src) && isWS(src[i]) {
		i++
	}
	return i
}

func lineEnd(src []byte, i int) int {
	nl := bytes.IndexByte(src[i:], '\n')
	if nl == -1 {
		return len(src)
	}
	return i + nl + 1
}
