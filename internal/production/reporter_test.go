package production

import (
	"reflect"
	"testing"

	"github.com/comalice/storetree/internal/core"
	"github.com/comalice/storetree/internal/primitives"
	"github.com/comalice/storetree/testutil"
)

func TestChannelReporter(t *testing.T) {
	ch := make(chan core.Warning, 1)
	r := NewChannelReporter(ch)

	first := core.Warning{Kind: core.WarnUnregisterMissing, Path: primitives.Path{"a"}}
	r.Report(first)
	// Buffer full: dropped, not blocked.
	r.Report(core.Warning{Kind: core.WarnHotUpdateNewModule, Path: primitives.Path{"b"}})

	if got := <-ch; !reflect.DeepEqual(got, first) {
		t.Errorf("got %+v, want %+v", got, first)
	}
	select {
	case w := <-ch:
		t.Errorf("second warning should have been dropped, got %+v", w)
	default:
	}

	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if _, ok := <-ch; ok {
		t.Error("channel should be closed")
	}
}

func TestMultiReporter(t *testing.T) {
	a, b := &testutil.RecordingReporter{}, &testutil.RecordingReporter{}
	m := MultiReporter{a, b}
	w := core.Warning{Kind: core.WarnUnregisterMissing, Path: primitives.Path{"x"}}
	m.Report(w)

	for i, r := range []*testutil.RecordingReporter{a, b} {
		if got := r.Warnings(); len(got) != 1 || !reflect.DeepEqual(got[0], w) {
			t.Errorf("reporter %d got %+v", i, got)
		}
	}
}

func TestChannelReporterAfterClose(t *testing.T) {
	ch := make(chan core.Warning, 1)
	r := NewChannelReporter(ch)
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	// Must not panic on the closed channel.
	r.Report(core.Warning{Kind: core.WarnUnregisterMissing, Path: primitives.Path{"late"}})
	if err := r.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, ok := <-ch; ok {
		t.Error("no warning should be delivered after Close")
	}

	tree, _ := testutil.NewTree(t, primitives.NewRawModule(), core.WithReporter(r))
	if err := tree.Unregister(primitives.Path{"missing"}); err != nil {
		t.Fatal(err)
	}
}
