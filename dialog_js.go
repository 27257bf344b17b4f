//go:build js && wasm

package main

// The browser page carries its own about section; the fragment change is enough.
func showAbout(string) {}

func showError(error) {}
