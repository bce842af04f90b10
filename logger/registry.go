package logger

import "sync"

// components holds loggers looked up by component name, e.g. "observability"
// or "redis". Packages that are not handed a logger explicitly use Get.
var components sync.Map // string -> *Logger

// Register binds l to a component name, replacing any earlier binding.
func Register(name string, l *Logger) {
	components.Store(name, l)
}

// Get returns the logger bound to name. Unbound names fall back to the
// global logger tagged with the component.
func Get(name string) *Logger {
	if l, ok := components.Load(name); ok {
		return l.(*Logger)
	}
	return GetGlobalLogger().WithComponent(name)
}

// RegisterDefaults binds each name to the current global logger tagged with
// that component. Run it after SetGlobalLogger or Init.
func RegisterDefaults(names ...string) {
	global := GetGlobalLogger()
	for _, name := range names {
		Register(name, global.WithComponent(name))
	}
}
