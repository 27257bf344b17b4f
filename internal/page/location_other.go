//go:build !(js && wasm)

package page

func DefaultLocation() Location {
	return &MemoryLocation{}
}

func applyScrollBehavior(string) {}
