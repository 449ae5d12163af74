// Package goroutine starts goroutines whose panics are logged instead of
// crashing the process.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"intake/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine. A panic in fn is logged with its stack
// and reported through onPanic when it is non-nil.
func SafeGo(log logger.Interface, name string, fn func(), onPanic func(recovered any)) {
	go func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			log.Errorw("goroutine panicked",
				"goroutine", name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
			if onPanic != nil {
				onPanic(r)
			}
		}()
		fn()
	}()
}
