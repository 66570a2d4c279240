package main

import (
	"errors"
	"flag"
	"math/rand"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/linkedq/linkedq"
	"github.com/linkedq/linkedq/queue"
	"github.com/puzpuzpuz/xsync/v2"
)

var (
	workers  = flag.Int("workers", 8, "number of goroutines")
	ops      = flag.Int("ops", 1000, "operations per goroutine")
	capacity = flag.Int("capacity", 0, "queue capacity, 0 for unbounded")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	q := linkedq.NewQueue[int](queue.WithCapacity(*capacity))

	var (
		wg       sync.WaitGroup
		pushed   = xsync.NewCounter()
		rejected = xsync.NewCounter()
		popped   = xsync.NewCounter()
	)

	start := time.Now()

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			for j := 0; j < *ops; j++ {
				if rand.Intn(2) == 0 {
					if err := q.Push(id*(*ops) + j); errors.Is(err, queue.ErrFull) {
						rejected.Inc()
						continue
					}
					pushed.Inc()
				} else if _, ok := q.Pop(); ok {
					popped.Inc()
				}
			}

			glog.V(1).Infof("worker %d done, queue length %d", id, q.Len())
		}(i)
	}

	wg.Wait()

	remaining := q.Len()

	// Move the rest into a list and hand it to a receiver goroutine.
	rest := linkedq.NewSyncList[int]()
	for {
		v, ok := q.Pop()
		if !ok {
			break
		}
		rest.PushBack(v)
	}

	received := make(chan int)
	go func() {
		drained := rest.Take()
		glog.V(1).Infof("received %d remaining values", drained.Len())
		received <- drained.Len()
	}()

	popped.Add(int64(<-received))

	if pushed.Value() != popped.Value() {
		glog.Fatalf("lost values: pushed %d popped %d", pushed.Value(), popped.Value())
	}

	glog.Infof("workers=%d ops=%d capacity=%d pushed=%d popped=%d rejected=%d remaining=%d elapsed=%s",
		*workers, *ops, q.Cap(), pushed.Value(), popped.Value(), rejected.Value(), remaining, time.Since(start))
}
