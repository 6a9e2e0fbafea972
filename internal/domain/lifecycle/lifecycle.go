// Package lifecycle holds values shared by fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook.
const DefaultTimeout = 15 * time.Second
