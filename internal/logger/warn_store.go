package logger

import (
	"fmt"
	"os"
	"sync"
)

var once sync.Once

// WarnStoreOnce tells the user, once per process, that evaluation runs are
// not being recorded because the run database is unavailable.
func WarnStoreOnce() {
	once.Do(func() {
		fmt.Fprintln(os.Stderr, "run database unavailable, evaluation results will not be recorded")
	})
}
