// Package lifecycle holds timing defaults shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single start or stop hook may run.
const DefaultTimeout = 10 * time.Second
