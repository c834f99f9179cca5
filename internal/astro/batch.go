package astro

import (
	"fmt"
	"runtime"
	"sync"
)

// Batches shorter than this run on the calling goroutine.
const minBatchChunk = 256

// ParallelFor executes fn over contiguous chunks of [0, n). Each chunk is
// at least minChunk long; chunks never overlap.
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	numWorkers := runtime.GOMAXPROCS(0)
	if n <= minChunk || numWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

func sameLength(lengths ...int) error {
	for _, l := range lengths[1:] {
		if l != lengths[0] {
			return fmt.Errorf("%w: lengths %v", ErrDimensionMismatch, lengths)
		}
	}
	return nil
}

// RIscoBatch applies RIsco elementwise.
func RIscoBatch(spins, masses []float64, sense OrbitSense) ([]float64, error) {
	if err := sameLength(len(spins), len(masses)); err != nil {
		return nil, err
	}
	if !sense.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrbitSense, sense)
	}
	out := make([]float64, len(spins))
	ParallelFor(len(out), minBatchChunk, func(start, end int) {
		for i := start; i < end; i++ {
			out[i], _ = RIsco(spins[i], masses[i], sense)
		}
	})
	return out, nil
}

// RDisruptionBatch applies RDisruption elementwise.
func RDisruptionBatch(mBH, mNS, rNS []float64) ([]float64, error) {
	if err := sameLength(len(mBH), len(mNS), len(rNS)); err != nil {
		return nil, err
	}
	out := make([]float64, len(mBH))
	ParallelFor(len(out), minBatchChunk, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = RDisruption(mBH[i], mNS[i], rNS[i])
		}
	})
	return out, nil
}

// NSBHDisruptionBatch applies NSBHDisruption elementwise.
func NSBHDisruptionBatch(mBH, mNS, rNS, spins []float64, sense OrbitSense) ([]bool, error) {
	if err := sameLength(len(mBH), len(mNS), len(rNS), len(spins)); err != nil {
		return nil, err
	}
	if !sense.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrbitSense, sense)
	}
	out := make([]bool, len(mBH))
	ParallelFor(len(out), minBatchChunk, func(start, end int) {
		for i := start; i < end; i++ {
			out[i], _ = NSBHDisruption(mBH[i], mNS[i], rNS[i], spins[i], sense)
		}
	})
	return out, nil
}

// TotalGravitationalMassBatch applies TotalGravitationalMass elementwise
// with a shared ejecta mass.
func TotalGravitationalMassBatch(m1, m2 []float64, ejectaMass float64) ([]float64, error) {
	if err := sameLength(len(m1), len(m2)); err != nil {
		return nil, err
	}
	out := make([]float64, len(m1))
	ParallelFor(len(out), minBatchChunk, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = TotalGravitationalMass(m1[i], m2[i], ejectaMass)
		}
	})
	return out, nil
}

// BNSDisruptionBatch applies BNSDisruption elementwise with a shared TOV
// mass and ejecta mass.
func BNSDisruptionBatch(m1, m2 []float64, mTOV, ejectaMass float64) ([]bool, error) {
	if err := sameLength(len(m1), len(m2)); err != nil {
		return nil, err
	}
	out := make([]bool, len(m1))
	ParallelFor(len(out), minBatchChunk, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = BNSDisruption(m1[i], m2[i], mTOV, ejectaMass)
		}
	})
	return out, nil
}
