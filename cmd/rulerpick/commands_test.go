package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/rulerpick/internal/geometry"
)

func TestLayoutForClampsValue(t *testing.T) {
	cmd := &cobra.Command{Use: "layout"}
	cmd.Flags().Float64Var(&value, "value", 0, "")
	if err := cmd.Flags().Set("value", "150"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	t.Cleanup(func() { value = 0 })

	_, s, err := layoutFor(cmd)
	if err != nil {
		t.Fatalf("layout failed: %v", err)
	}
	p := s.Params()
	if p.Value != 100 {
		t.Errorf("expected value clamped to 100, got %f", p.Value)
	}
	if cut := geometry.Boundary(p); cut.Zone != geometry.ZoneUpper {
		t.Errorf("expected upper boundary zone, got %s", cut.Zone)
	}
}
