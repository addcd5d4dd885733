package pix

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPoolReuse(t *testing.T) {
	p := NewPool(4)

	first, err := p.Get(8, 8, FormatRGBA8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	first.AsSliceMut().Row(0)[0] = 0xFF
	p.Put(first)

	second, err := p.Get(8, 8, FormatRGBA8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	if second != first {
		t.Error("same-shape Get should return the pooled buffer")
	}
	// Recycled buffers come back zeroed.
	if second.AsSlice().Row(0)[0] != 0 {
		t.Error("recycled buffer was not cleared")
	}
}

func TestPoolShapeMismatch(t *testing.T) {
	p := NewPool(4)

	buf, err := p.Get(8, 8, FormatRGBA8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	p.Put(buf)

	other, err := p.Get(8, 8, FormatRGB8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	if other == buf {
		t.Error("Get with a different descriptor must not reuse the buffer")
	}
}

func TestPoolResetsPipelineState(t *testing.T) {
	p := NewPool(4)

	buf, err := p.Get(4, 4, FormatRGBA8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	buf.SetColorContext(ProfileSRGB.Context())
	buf.SetWorkingSpace(WorkingLinear)
	p.Put(buf)

	again, err := p.Get(4, 4, FormatRGBA8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	if again.ColorContext() != nil || again.WorkingSpace() != WorkingNative {
		t.Error("recycled buffer kept stale color state")
	}
}

func TestPoolBucketCapacity(t *testing.T) {
	p := NewPool(1)

	a, _ := p.Get(4, 4, FormatGray8SRGB)
	b, _ := p.Get(4, 4, FormatGray8SRGB)
	p.Put(a)
	p.Put(b) // over capacity, discarded

	got, _ := p.Get(4, 4, FormatGray8SRGB)
	if got != a {
		t.Error("first pooled buffer should be handed out")
	}
	fresh, _ := p.Get(4, 4, FormatGray8SRGB)
	if fresh == b {
		t.Error("buffer beyond bucket capacity should have been dropped")
	}
}

func TestPoolRejectsRelinquished(t *testing.T) {
	p := NewPool(4)

	buf, err := p.Get(4, 4, FormatGray8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	buf.IntoRaw()
	p.Put(buf) // must be ignored
	p.Put(nil) // likewise

	got, err := p.Get(4, 4, FormatGray8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	if got == buf {
		t.Error("relinquished buffer must not be pooled")
	}
}

func TestPoolLogsHitsAndMisses(t *testing.T) {
	defer SetLogger(nil)

	var out bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	p := NewPool(4)
	buf, err := p.Get(4, 4, FormatRGBA8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "buffer pool miss") {
		t.Errorf("empty-pool Get did not log a miss: %q", out.String())
	}

	p.Put(buf)
	out.Reset()
	if _, err := p.Get(4, 4, FormatRGBA8SRGB); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "buffer pool hit") {
		t.Errorf("recycling Get did not log a hit: %q", out.String())
	}
}

func TestDefaultPool(t *testing.T) {
	buf, err := GetBuffer(4, 4, FormatRGBA8SRGB)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Width() != 4 || buf.Height() != 4 {
		t.Errorf("buffer = %dx%d", buf.Width(), buf.Height())
	}
	PutBuffer(buf)
}
