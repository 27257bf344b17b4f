//go:build js && wasm

package page

import "syscall/js"

type browserLocation struct{}

func (browserLocation) SetHash(fragment string) {
	js.Global().Get("location").Set("hash", fragment)
}

func (browserLocation) Hash() string {
	return js.Global().Get("location").Get("hash").String()
}

// DefaultLocation writes through to window.location.
func DefaultLocation() Location {
	return browserLocation{}
}

func applyScrollBehavior(v string) {
	root := js.Global().Get("document").Get("documentElement")
	if root.IsUndefined() || root.IsNull() {
		return
	}
	root.Get("style").Set("scrollBehavior", v)
}
