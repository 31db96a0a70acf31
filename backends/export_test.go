package backends

import "sync"

// The registry is process-global state, so the package tests get a way to
// wind it back to its initial, empty state between cases.

// ResetRegistryForTesting clears every registered factory and memoized
// hooks instance. Not safe for concurrent use; tests only.
func ResetRegistryForTesting() {
	for i := range factories {
		factories[i] = nil
		hooksOnce[i] = sync.Once{}
		hooks[i] = nil
	}
}

// StubForTesting exposes the shared stub instance for identity assertions.
func StubForTesting() Hooks {
	return theStub
}
