package concurrent

import "sync"

type JobI interface{}

type JobFunc[T JobI, G any] func(job T) G

// BackgroundWorker runs jobFunc over every triggered job on a fixed number of goroutines.
// Results come out of Results in completion order; the channel is closed by Close.
type BackgroundWorker[T JobI, G any] struct {
	workers   int
	msgC      chan T
	resultC   chan G
	waitGroup sync.WaitGroup
	jobFunc   JobFunc[T, G]
	closeOnce sync.Once
}

func NewBackgroundWorker[T JobI, G any](workers, buffer int, jobFunc JobFunc[T, G]) *BackgroundWorker[T, G] {
	if workers < 1 {
		workers = 1
	}
	return &BackgroundWorker[T, G]{
		workers: workers,
		msgC:    make(chan T, buffer),
		resultC: make(chan G, buffer),
		jobFunc: jobFunc,
	}
}

func (bw *BackgroundWorker[T, G]) TriggerProcessing(jobData T) {
	bw.msgC <- jobData
}

func (bw *BackgroundWorker[T, G]) Results() <-chan G {
	return bw.resultC
}

func (bw *BackgroundWorker[T, G]) Start() {

	bw.waitGroup.Add(bw.workers)
	for i := 0; i < bw.workers; i++ {
		go func() {
			defer bw.waitGroup.Done()
			for jobData := range bw.msgC {
				// process
				bw.resultC <- bw.jobFunc(jobData)
			}
		}()
	}
}

// Close stops accepting jobs, waits for in-flight jobs and closes Results.
// Results must be drained concurrently if more jobs than the buffer size were triggered.
func (bw *BackgroundWorker[T, G]) Close() {
	bw.closeOnce.Do(func() {
		close(bw.msgC)
		bw.waitGroup.Wait()
		close(bw.resultC)
	})
}
