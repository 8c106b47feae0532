package alloc

import (
	"fmt"
	"runtime"
)

// callerSite reports the file:line of the call into Trace's wrapped
// methods, skipping callerSite itself and the Trace method that called it.
func callerSite() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
