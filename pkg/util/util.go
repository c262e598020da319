package util

import (
	"sync"
	"time"
)

func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

func Must[T any](val T, err error) T {
	PanicIfErr(err)
	return val
}

// Measure runs f and returns its wall-clock duration.
func Measure(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// SetInterval calls f every interval until the returned stop is called.
func SetInterval(f func(start, now time.Time), interval time.Duration) (stop func()) {
	start := time.Now()
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case now := <-ticker.C:
				f(start, now)
			case <-done:
				return
			}
		}
	}()

	once := sync.Once{}
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}
