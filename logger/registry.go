package logger

import (
	"sync"
)

// Component names of the prism packages.
const (
	ComponentKeystore  = "keystore"
	ComponentCondition = "condition"
	ComponentProtocol  = "protocol"
	ComponentExport    = "export"
	ComponentCLI       = "cli"
)

// overrides holds loggers pinned to a component with Register.
var overrides sync.Map

// Register pins l as the logger of component, e.g. to capture a single
// component's output in a test.
func Register(component string, l *Logger) {
	overrides.Store(component, l)
}

// Unregister removes a pinned logger.
func Unregister(component string) {
	overrides.Delete(component)
}

// Get returns the logger of component. Unpinned components get the current
// global logger tagged with the component name, so a later Init is picked up
// by every subsequent Get.
func Get(component string) *Logger {
	if l, ok := overrides.Load(component); ok {
		return l.(*Logger)
	}
	return GetGlobalLogger().WithComponent(component)
}
