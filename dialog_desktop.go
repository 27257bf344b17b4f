//go:build !(js && wasm)

package main

import (
	"log"

	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
)

func showAbout(text string) {
	err := zenity.Info(text, zenity.Title("About aura"), zenity.InfoIcon)
	if err != nil && !errors.Is(err, zenity.ErrCanceled) {
		log.Printf("[aura] about dialog: %v", err)
	}
}

func showError(err error) {
	_ = zenity.Error(err.Error(), zenity.Title("aura"), zenity.ErrorIcon)
}
