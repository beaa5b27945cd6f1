package ember

import (
	"bytes"
	"sync"
)

// 渲染 String() 和 JSON 时复用的缓冲区.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return &bytes.Buffer{}
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	// 过大的缓冲区不放回池中, 避免长期占用内存.
	if buf.Cap() > 64<<10 {
		return
	}
	bufferPool.Put(buf)
}
