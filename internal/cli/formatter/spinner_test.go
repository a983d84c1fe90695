package formatter

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type lockedBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func (l *lockedBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.String()
}

func TestSpinner_DrawsAndClears(t *testing.T) {
	var out lockedBuffer
	stop := StartSpinner(&out, "Đang soạn giáo án")
	stop()
	stop()

	got := out.String()
	assert.Contains(t, got, "Đang soạn giáo án")
	assert.Contains(t, got, "\r\033[K")
}
