package utils

import (
	"bytes"
	"fmt"

	"github.com/TimothyDexter/FiveM-StanceModifier/internal"
	"github.com/elliotchance/orderedmap/v2"
)

// OrderedMapToString formats an ordered map into a single bracketed string, keeping the order the
// keys were inserted in.
// Example: [weapon=pistol orientation=on_back].
func OrderedMapToString(data orderedmap.OrderedMap[string, any]) string {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	buf.WriteByte('[')
	for i, key := range data.Keys() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		v, _ := data.Get(key)
		fmt.Fprintf(buf, "%s=%v", key, v)
	}
	buf.WriteByte(']')
	return buf.String()
}
