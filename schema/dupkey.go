package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/reoring/bsmap/i18n"
)

type dupFrame struct {
	at           PathRef
	keys         map[string]struct{} // nil for arrays
	key          string
	expectingKey bool
	index        int
}

// DuplicateKeys scans a raw document for object keys that occur twice in the
// same object. Decoding into a map silently keeps the last one.
func DuplicateKeys(data []byte) (Issues, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		iss   Issues
		stack []*dupFrame
	)
	// next returns the path of the value about to be read and advances its
	// parent.
	next := func() PathRef {
		if len(stack) == 0 {
			return Root()
		}
		top := stack[len(stack)-1]
		if top.keys != nil {
			top.expectingKey = true
			return top.at.Field(top.key)
		}
		top.index++
		return top.at.Index(top.index - 1)
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if len(stack) > 0 {
				return iss, fmt.Errorf("scan keys: %w", io.ErrUnexpectedEOF)
			}
			return iss, nil
		}
		if err != nil {
			return iss, fmt.Errorf("scan keys: %w", err)
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{':
				stack = append(stack, &dupFrame{at: next(), keys: map[string]struct{}{}, expectingKey: true})
			case '[':
				stack = append(stack, &dupFrame{at: next()})
			default:
				stack = stack[:len(stack)-1]
			}
			continue
		}
		if n := len(stack); n > 0 && stack[n-1].keys != nil && stack[n-1].expectingKey {
			top := stack[n-1]
			k, _ := tok.(string)
			if _, dup := top.keys[k]; dup {
				iss = AppendIssues(iss, top.at.Field(k).Issue(CodeDuplicateKey, i18n.T(CodeDuplicateKey, map[string]string{"key": k}), "key", k))
			}
			top.keys[k] = struct{}{}
			top.key = k
			top.expectingKey = false
			continue
		}
		next()
	}
}
