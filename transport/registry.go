package transport

import "sort"

// Factory creates an unopened transport.
type Factory func() (Transport, error)

// backendInfo pairs a registered backend name with its factory.
type backendInfo struct {
	name    string
	factory Factory
}

var registeredBackends []backendInfo

// Register records a transport factory under a backend name. Backends
// call this from init; the name is what configuration refers to.
func Register(name string, factory Factory) {
	registeredBackends = append(registeredBackends, backendInfo{
		name:    name,
		factory: factory,
	})
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	for _, b := range registeredBackends {
		if b.name == name {
			return b.factory, true
		}
	}
	return nil, false
}

// Names lists the registered backend names, sorted.
func Names() []string {
	names := make([]string, 0, len(registeredBackends))
	for _, b := range registeredBackends {
		names = append(names, b.name)
	}
	sort.Strings(names)
	return names
}
