package obstacles

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
)

// blockSize is the number of trials drawn from one random stream. Blocks,
// not workers, own the streams, so a fixed seed reproduces the exact same
// distances at any worker count.
const blockSize = 1024

// SimulationResult holds the per-trial stopping distances and the number of
// trials in which the corridor contained no obstacle at all.
type SimulationResult struct {
	Distances        []float64 // [m] one entry per trial
	NoObstacleTrials int
}

// PNone returns the empirical probability of an obstacle-free corridor.
func (r SimulationResult) PNone() float64 {
	if len(r.Distances) == 0 {
		return 0
	}
	return float64(r.NoObstacleTrials) / float64(len(r.Distances))
}

type simConfig struct {
	seed    uint64
	workers int
}

// SimOption configures a simulation run.
type SimOption func(*simConfig)

// WithSeed fixes the random seed, making the run reproducible.
func WithSeed(seed uint64) SimOption {
	return func(c *simConfig) { c.seed = seed }
}

// WithWorkers distributes trial blocks across n goroutines. Trials are
// mutually independent, so results are identical at any worker count.
func WithWorkers(n int) SimOption {
	return func(c *simConfig) { c.workers = n }
}

// SimulateMinimumDistance runs count independent trials. Each trial places
// round(density) obstacles uniformly over a 1 km × 1 km reference cell,
// keeps those whose along-corridor coordinate falls short of length and
// whose across-corridor draw lands within width/1000 of the centreline, and
// records the nearest surviving obstacle as the stopping distance for that
// trial (or the full corridor length if none survives).
//
// As count grows the empirical CDF converges to PoissonCDF for the same
// corridor; both rest on the same independence assumptions at the
// reference-cell scale.
func SimulateMinimumDistance(density, width, length float64, count int, opts ...SimOption) (SimulationResult, error) {
	if err := validateCorridor(density, width, length, 2); err != nil {
		return SimulationResult{}, err
	}
	if count < 1 {
		return SimulationResult{}, fmt.Errorf("trial count %d must be at least 1", count)
	}

	cfg := simConfig{seed: 1, workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	obstacleCount := int(math.Round(density))
	widthFraction := width / 1000

	distances := make([]float64, count)
	blocks := (count + blockSize - 1) / blockSize
	noObstacle := make([]int, blocks)

	runBlock := func(b int) {
		// Per-block stream: the second PCG word is the block index, so
		// every block is independent and reproducible in isolation.
		rng := rand.New(rand.NewPCG(cfg.seed, uint64(b)+1))

		start := b * blockSize
		end := min(start+blockSize, count)

		for k := start; k < end; k++ {
			stopping := length
			hit := false
			for i := 0; i < obstacleCount; i++ {
				// Along-corridor position in metres within the 1 km cell;
				// the across-corridor draw is an independent uniform.
				x := rng.Float64() * 1000
				inside := x < length && rng.Float64() < widthFraction
				if inside && x < stopping {
					stopping = x
					hit = true
				}
			}
			distances[k] = stopping
			if !hit {
				noObstacle[b]++
			}
		}
	}

	if cfg.workers == 1 || blocks == 1 {
		for b := 0; b < blocks; b++ {
			runBlock(b)
		}
	} else {
		var wg sync.WaitGroup
		blockCh := make(chan int)
		for w := 0; w < cfg.workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for b := range blockCh {
					runBlock(b)
				}
			}()
		}
		for b := 0; b < blocks; b++ {
			blockCh <- b
		}
		close(blockCh)
		wg.Wait()
	}

	total := 0
	for _, n := range noObstacle {
		total += n
	}

	return SimulationResult{Distances: distances, NoObstacleTrials: total}, nil
}
