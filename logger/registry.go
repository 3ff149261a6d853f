package logger

import "sync"

// Component names for the loggers lazystream keeps per concern.
const (
	ComponentCLI           = "cli"
	ComponentConfig        = "config"
	ComponentObservability = "observability"
)

// Components lists the component loggers Install derives from the global logger.
var Components = []string{ComponentCLI, ComponentConfig, ComponentObservability}

var (
	componentsMu sync.RWMutex
	components   = make(map[string]*Logger, len(Components))
)

// Install makes l the global logger and rebuilds every component logger from
// it. Loggers from an earlier Install are dropped, so each run logs with its
// own configuration.
func Install(l *Logger) {
	componentsMu.Lock()
	defer componentsMu.Unlock()
	SetGlobalLogger(l)
	clear(components)
	for _, name := range Components {
		components[name] = l.WithComponent(name)
	}
}

// Get returns the logger for a component. Before Install, or for a name
// outside Components, it returns the global logger tagged with name.
func Get(name string) *Logger {
	componentsMu.RLock()
	l, ok := components[name]
	componentsMu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}
