package simulation_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/turnipsim/pattern"
	"github.com/katalvlaran/turnipsim/prices"
	"github.com/katalvlaran/turnipsim/simulation"
)

const benchTrials = 10000

func benchmarkRun(b *testing.B, workers int) {
	r := simulation.NewRunner(
		simulation.WithEntropySource(pattern.NewSeededSource(1)),
		simulation.WithBaseEntropy(0),
		simulation.WithWorkers(workers),
	)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Run(ctx, pattern.Unknown, prices.Filter{}, benchTrials); err != nil {
			b.Fatalf("Run: %v", err)
		}
	}
}

func BenchmarkRun_1Worker(b *testing.B)  { benchmarkRun(b, 1) }
func BenchmarkRun_4Workers(b *testing.B) { benchmarkRun(b, 4) }
