package egcolor_test

import (
	"testing"

	"github.com/katalvlaran/grafix/builder"
	"github.com/katalvlaran/grafix/egcolor"
	"github.com/katalvlaran/grafix/egroups"
)

func benchInstance(b *testing.B) *egroups.EdgeGroups {
	b.Helper()
	g, err := builder.RandomBigraph(40, 60, 400, 17)
	if err != nil {
		b.Fatal(err)
	}
	eg, err := builder.RandomGroups(g, 4, 17)
	if err != nil {
		b.Fatal(err)
	}

	return eg
}

func BenchmarkGreedyBounded(b *testing.B) {
	eg := benchInstance(b)
	c := egcolor.UpperBound(eg)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := egcolor.GreedyBounded(eg, c); !ok {
			b.Fatal("greedy failed at its upper bound")
		}
	}
}

func BenchmarkFlowPalettes(b *testing.B) {
	eg := benchInstance(b)
	c := egcolor.UpperBound(eg)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := egcolor.FlowPalettes(eg, c); !ok {
			b.Fatal("flow palettes failed at the upper bound")
		}
	}
}

func BenchmarkRandomPalettes(b *testing.B) {
	eg := benchInstance(b)
	c := egcolor.UpperBound(eg)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		egc, _ := egcolor.RandomPalettes(eg, c, int64(i)+1)
		_ = egc
	}
}
