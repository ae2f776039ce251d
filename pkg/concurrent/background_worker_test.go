package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

type squareJob struct {
	idx int
	val int
}

type squareResult struct {
	idx int
	val int
}

func TestBackgroundWorker(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		buffer  int
		jobs    int
	}{
		{name: "buffer holds every job", workers: 4, buffer: 100, jobs: 100},
		{name: "small buffer", workers: 3, buffer: 1, jobs: 500},
		{name: "zero workers falls back to one", workers: 0, buffer: 10, jobs: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bw := NewBackgroundWorker(tt.workers, tt.buffer, func(job squareJob) squareResult {
				return squareResult{idx: job.idx, val: job.val * job.val}
			})
			bw.Start()

			go func() {
				for i := 0; i < tt.jobs; i++ {
					bw.TriggerProcessing(squareJob{idx: i, val: i})
				}
				bw.Close()
			}()

			results := make([]squareResult, 0, tt.jobs)
			for res := range bw.Results() {
				results = append(results, res)
			}

			assert.Len(t, results, tt.jobs)
			sort.Slice(results, func(i, j int) bool { return results[i].idx < results[j].idx })
			for i, res := range results {
				assert.Equal(t, i, res.idx)
				assert.Equal(t, i*i, res.val)
			}
		})
	}

	t.Run("close twice", func(t *testing.T) {
		bw := NewBackgroundWorker(2, 1, func(job int) int { return job })
		bw.Start()
		bw.Close()
		bw.Close()
		_, open := <-bw.Results()
		assert.False(t, open)
	})
}
