package blockstate

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// reencodeJSON rewrites a JSON document so the YAML scanner accepts it.
// JSON allows escapes YAML rejects, such as "\/" and UTF-16 surrogate
// pairs. Key order and line breaks are kept, so error lines still match
// the input.
func reencodeJSON(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	type frame struct {
		object bool
		n      int
	}
	var (
		out   bytes.Buffer
		stack []frame
		prev  int64
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		off := dec.InputOffset()
		newlines := bytes.Count(data[prev:off], []byte("\n"))
		prev = off

		if d, ok := tok.(json.Delim); ok && (d == '}' || d == ']') {
			stack = stack[:len(stack)-1]
			writeNewlines(&out, newlines)
			out.WriteByte(byte(d))
			continue
		}

		if len(stack) > 0 {
			top := &stack[len(stack)-1]
			switch {
			case top.object && top.n%2 == 1:
				out.WriteByte(':')
			case top.n > 0:
				out.WriteByte(',')
			}
			top.n++
		}
		writeNewlines(&out, newlines)

		switch v := tok.(type) {
		case json.Delim:
			out.WriteByte(byte(v))
			stack = append(stack, frame{object: v == '{'})
		case string:
			s, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			out.Write(s)
		case json.Number:
			out.WriteString(v.String())
		case bool:
			if v {
				out.WriteString("true")
			} else {
				out.WriteString("false")
			}
		case nil:
			out.WriteString("null")
		}
	}
	return out.Bytes(), nil
}

func writeNewlines(out *bytes.Buffer, n int) {
	if n > 0 {
		out.WriteString(strings.Repeat("\n", n))
		out.WriteByte(' ')
	}
}
