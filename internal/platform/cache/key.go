package cache

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

const keySeparator = '\x1f'

// Key is an ordered tuple of primitive values identifying one query,
// for example K("matches", 12). Elements compare by their JSON encoding,
// so 12 and "12" are different keys.
type Key []any

func K(parts ...any) Key {
	return Key(parts)
}

// String encodes the key. Every element is terminated by a separator that
// JSON never emits unescaped, so a key prefix encodes to a string prefix.
func (k Key) String() string {
	if len(k) == 0 {
		return ""
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, part := range k {
		raw, err := sonic.Marshal(part)
		if err != nil {
			raw = []byte(`"!unencodable"`)
		}
		_, _ = buf.Write(raw)
		_ = buf.WriteByte(keySeparator)
	}
	return buf.String()
}

// HasPrefix reports whether prefix matches the leading elements of k.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	return strings.HasPrefix(k.String(), prefix.String())
}

func (k Key) display() string {
	return fmt.Sprint([]any(k))
}
