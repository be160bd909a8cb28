// Package warmup precomputes chart payloads in the background so the first
// request for a common filter is a cache hit.
package warmup

import (
    "context"
    "sync"
    "time"

    "github.com/yourorg/vehicle-dashboard/internal/filter"
)

type Job struct {
    Key      string
    Criteria filter.Criteria
}

type Warmer struct {
    ch      chan Job
    inFly   sync.Map // key -> struct{}
    wg      sync.WaitGroup
    timeout time.Duration
    Do      func(ctx context.Context, j Job)
}

func New(capacity int, workerCount int, timeout time.Duration, do func(ctx context.Context, j Job)) *Warmer {
    if capacity <= 0 { capacity = 256 }
    if workerCount <= 0 { workerCount = 2 }
    if timeout <= 0 { timeout = 15 * time.Second }
    w := &Warmer{ ch: make(chan Job, capacity), timeout: timeout, Do: do }
    w.wg.Add(workerCount)
    for i := 0; i < workerCount; i++ {
        go w.worker()
    }
    return w
}

// Enqueue schedules j unless a job with the same key is queued or running.
// It reports whether the job was accepted.
func (w *Warmer) Enqueue(j Job) bool {
    if _, exists := w.inFly.LoadOrStore(j.Key, struct{}{}); exists {
        return false
    }
    select {
    case w.ch <- j:
        return true
    default:
        // drop if saturated
        w.inFly.Delete(j.Key)
        return false
    }
}

// Close stops accepting work and waits for queued jobs to finish.
func (w *Warmer) Close() {
    close(w.ch)
    w.wg.Wait()
}

func (w *Warmer) worker() {
    defer w.wg.Done()
    for j := range w.ch {
        ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
        func() {
            defer func() {
                w.inFly.Delete(j.Key)
                cancel()
            }()
            if w.Do != nil { w.Do(ctx, j) }
        }()
    }
}

// PerType returns one job per concrete vehicle type in types, each starting
// from base with only the type changed. The "all" entry is included as-is.
func PerType(base filter.Criteria, types []string) []Job {
    jobs := make([]Job, 0, len(types))
    for _, t := range types {
        c := base
        c.VehicleType = t
        jobs = append(jobs, Job{Key: "type:" + t, Criteria: c})
    }
    return jobs
}
