// Package lifecycle holds timing constants shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart/OnStop hook work such as pinging a store or draining a server.
const DefaultTimeout = 10 * time.Second
