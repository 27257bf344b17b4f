package main

import (
	"testing"

	"github.com/iburimskiy/aura/internal/config"
)

func TestNewDocumentHonoursPageSettings(t *testing.T) {
	full := newDocument(config.Default().Page)
	if full.Sigil == nil || full.Title == nil || len(full.Buttons) != 2 {
		t.Fatalf("default page = sigil %v title %v buttons %d", full.Sigil != nil, full.Title != nil, len(full.Buttons))
	}
	if full.Title.Text != "AURA" {
		t.Errorf("Title.Text = %q, want AURA", full.Title.Text)
	}

	bare := newDocument(config.PageSettings{})
	if bare.Sigil != nil || bare.Title != nil || len(bare.Buttons) != 0 {
		t.Errorf("empty page settings still built elements")
	}
	// missing elements are tolerated by the handlers
	bare.Layout(800, 600)
	bare.PointerMove(800, 600, 10, 10)
	bare.KeyTab()
	if bare.KeyEnter() {
		t.Error("Enter without buttons should do nothing")
	}
}
