package strmetric

import (
	"errors"
	"testing"
)

func TestConfigErrorWrapsInvalidOption(t *testing.T) {
	err := newInvalidOption("editex", "groups", "ungrouped required with groups")
	if !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected errors.Is to match ErrInvalidOption, got %v", err)
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected errors.As to unwrap a *ConfigError, got %v", err)
	}
	if cfgErr.Algorithm != "editex" || cfgErr.Option != "groups" {
		t.Errorf("unexpected fields: %+v", cfgErr)
	}
}
