package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/tealert/internal/ports"
)

const defaultBufferLimit = 1000

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

type entry struct {
	ctx    context.Context
	level  level
	msg    string
	fields []interface{}
}

// Buffer holds log entries written while the terminal is owned by a TUI
// session. Flush replays them once the session has released the screen.
// When full the oldest entry is dropped.
type Buffer struct {
	mu      sync.Mutex
	limit   int
	entries []entry
	dropped int
}

// NewBuffer creates a buffer keeping at most limit entries (1000 when
// limit <= 0).
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &Buffer{limit: limit}
}

// Logger returns a ports.Logger writing into b.
func (b *Buffer) Logger() ports.Logger {
	return &bufferedLogger{buffer: b}
}

// Len returns the number of entries waiting to be flushed.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Dropped returns how many entries were discarded because the buffer was
// full.
func (b *Buffer) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

func (b *Buffer) add(e entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == b.limit {
		copy(b.entries, b.entries[1:])
		b.entries[len(b.entries)-1] = e
		b.dropped++
		return
	}
	b.entries = append(b.entries, e)
}

// Flush replays the buffered entries in order on delegate and empties the
// buffer.
func (b *Buffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	entries := b.entries
	b.entries = nil
	b.mu.Unlock()

	for _, e := range entries {
		switch e.level {
		case levelDebug:
			delegate.Debug(e.ctx, e.msg, e.fields...)
		case levelWarn:
			delegate.Warn(e.ctx, e.msg, e.fields...)
		case levelError:
			delegate.Error(e.ctx, e.msg, e.fields...)
		default:
			delegate.Info(e.ctx, e.msg, e.fields...)
		}
	}
}

type bufferedLogger struct {
	buffer *Buffer
	fields []interface{}
}

func (l *bufferedLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelDebug, msg, fields)
}

func (l *bufferedLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelInfo, msg, fields)
}

func (l *bufferedLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelWarn, msg, fields)
}

func (l *bufferedLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelError, msg, fields)
}

func (l *bufferedLogger) With(fields ...interface{}) ports.Logger {
	return &bufferedLogger{
		buffer: l.buffer,
		fields: append(append([]interface{}{}, l.fields...), fields...),
	}
}

func (l *bufferedLogger) log(ctx context.Context, lvl level, msg string, fields []interface{}) {
	if l == nil || l.buffer == nil {
		return
	}
	l.buffer.add(entry{
		ctx:    ctx,
		level:  lvl,
		msg:    msg,
		fields: append(append([]interface{}{}, l.fields...), fields...),
	})
}
