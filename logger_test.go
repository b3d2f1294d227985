package drawhelper

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// captureLogs routes drawhelper logging into a buffer for the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestLoggerSilentByDefault(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
	h := nopHandler{}
	if _, ok := h.WithAttrs(nil).(nopHandler); !ok {
		t.Error("WithAttrs left the nop handler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup left the nop handler")
	}
}

func TestDispatchLogging(t *testing.T) {
	opaque := newTexture(t, FormatRGB32, 2, 2, texA, texB, texC, texD)
	tests := []struct {
		name  string
		level slog.Level
		run   func(t *testing.T)
		want  string
	}{
		{
			name:  "tables",
			level: slog.LevelDebug,
			run:   func(*testing.T) { NewTables(Features{}) },
			want:  "backend=scalar",
		},
		{
			name:  "opaque downgrade",
			level: slog.LevelDebug,
			run: func(t *testing.T) {
				newSpanData(t, newSurface(t, 4, 4, FormatARGB32Premultiplied), Solid(0xff102030))
			},
			want: "opaque source, using Source",
		},
		{
			name:  "skipped fetch",
			level: slog.LevelDebug,
			run: func(t *testing.T) {
				sd := newSpanData(t, newSurface(t, 4, 4, FormatRGB16), &Texture{Image: opaque})
				sd.Blend(FullSpans(0, 0, 4, 4))
			},
			want: "skipping destination fetch",
		},
		{
			name:  "indexed target",
			level: slog.LevelWarn,
			run: func(t *testing.T) {
				if _, err := NewSpanData(newSurface(t, 2, 2, FormatIndexed8), Solid(0)); err == nil {
					t.Error("NewSpanData accepted an Indexed8 target")
				}
			},
			want: "unsupported target format",
		},
		{
			name:  "indexed fill",
			level: slog.LevelWarn,
			run:   func(t *testing.T) { newSurface(t, 2, 2, FormatIndexed8).FillRect(0, 0, 2, 2, 0xffffffff) },
			want:  "fill on unsupported format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t, tt.level)
			tt.run(t)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log output %q does not contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWarnLevelHidesDispatchDetail(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)
	sd := newSpanData(t, newSurface(t, 4, 1, FormatRGB888), Solid(0xff0000ff))
	sd.Blend(FullSpans(0, 0, 4, 1))
	if buf.Len() != 0 {
		t.Errorf("debug records leaked at warn level: %s", buf.String())
	}
}

func TestSetLoggerDuringBlend(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for _i, _n := 0, 4; _i < _n; _i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			dst, err := NewSurface(8, 8, FormatRGB16)
			if err != nil {
				t.Error(err)
				return
			}
			sd, err := NewSpanData(dst, Solid(0x80ff0000))
			if err != nil {
				t.Error(err)
				return
			}
			sd.Blend(FullSpans(0, 0, 8, 8))
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkDisabledDebug(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	b.ResetTimer()
	for _bi := 0; _bi < b.N; _bi++ {
		l.Debug("drawhelper: skipping destination fetch", "spans", 1)
	}
}
