package style

import "testing"

func TestDisplayModes(t *testing.T) {
	tests := []struct {
		display Property
		mode    DisplayMode
	}{
		{"block", BlockMode | InnerBlockMode},
		{"inline-block", InlineMode | InnerBlockMode},
		{"list-item", ListItemMode | BlockMode},
		{"none", DisplayNone},
		{NullStyle, NoMode},
	}
	for _, test := range tests {
		mode, err := DisplayModeOf(test.display)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", test.display, err)
		}
		if mode != test.mode {
			t.Errorf("expected display %q to be %s, is %s", test.display, test.mode.FullString(), mode.FullString())
		}
	}
	if _, err := DisplayModeOf("weird"); err == nil {
		t.Errorf("expected error for unknown display mode")
	}
	if !(BlockMode | InnerBlockMode).IsBlockLevel() {
		t.Errorf("expected block to be block level")
	}
	if DisplayForTag("p") != "block" || DisplayForTag("span") != "inline" || DisplayForTag("head") != "none" {
		t.Errorf("unexpected user agent display defaults")
	}
	if s := (InlineMode | InnerBlockMode).FullString(); s != "InlineMode InnerBlockMode" {
		t.Errorf("unexpected full string %q", s)
	}
}
