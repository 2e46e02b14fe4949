package ui

import (
	"bytes"
	"testing"
)

func TestLogoResource(t *testing.T) {
	if LogoResource.Name() != AppIcon {
		t.Errorf("Expected name %s, got %s", AppIcon, LogoResource.Name())
	}
	if !bytes.HasPrefix(LogoResource.Content(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("Bundled icon should be a PNG")
	}
}
