package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds buffers used to format debug output.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer([]byte{})
	},
}
