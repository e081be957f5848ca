package benchmarks

import (
	"testing"

	"github.com/comalice/skuselect/internal/core"
	"github.com/comalice/skuselect/internal/primitives"
	"github.com/comalice/skuselect/testutil"
)

func startedInterpreter(b *testing.B, opts ...core.Option) (*core.Interpreter, primitives.Key, primitives.Key) {
	b.Helper()
	items, dims := testutil.GenCatalog(8, 10, 3)
	g := core.Build(items, dims)
	out, back, ok := RoundTrip(g)
	if !ok {
		b.Fatal("initial state has no round trip")
	}
	it := core.NewInterpreter(g, opts...)
	if err := it.Start(); err != nil {
		b.Fatal(err)
	}
	return it, out, back
}

func BenchmarkSend(b *testing.B) {
	it, out, back := startedInterpreter(b)
	keys := [2]primitives.Key{out, back}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !it.Send(keys[i%2]) {
			b.Fatal("send ignored")
		}
	}
}

func BenchmarkSendWithListeners(b *testing.B) {
	it, out, back := startedInterpreter(b)
	var seen int
	for n := 0; n < 8; n++ {
		it.OnTransition(func(*core.GraphState) { seen++ })
	}
	keys := [2]primitives.Key{out, back}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it.Send(keys[i%2])
	}
	b.StopTimer()
	if seen != 8*b.N {
		b.Fatalf("listeners saw %d transitions, want %d", seen, 8*b.N)
	}
}

func BenchmarkSendIgnored(b *testing.B) {
	it, _, _ := startedInterpreter(b)
	missing := primitives.Action{Dimension: "Size", Value: "no-such-size"}.Key()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it.Send(missing)
	}
}

func BenchmarkHashSelection(b *testing.B) {
	s := primitives.Selection{"Color": "c3", "Size": "s7", "Fit": primitives.Unset, "Sleeve": "long"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = primitives.HashSelection(s)
	}
}
