package model

import "testing"

func TestCommonPrefsPatchAppliesOnlySetFields(t *testing.T) {
	prefs := CommonPrefs{Name: "keep", DataDraw: true, DataLimitPoints: 5}

	alias := "cs-1"
	on := true
	patch := CommonPrefsPatch{Alias: &alias, UseAlias: &on}

	if !patch.ApplyTo(&prefs) {
		t.Fatalf("ApplyTo reported no change")
	}
	if prefs.Alias != "cs-1" || !prefs.UseAlias {
		t.Fatalf("patched prefs = %+v", prefs)
	}
	if prefs.Name != "keep" || !prefs.DataDraw || prefs.DataLimitPoints != 5 {
		t.Fatalf("untouched fields modified: %+v", prefs)
	}
}

func TestPatchApplyToReportsNoChangeWhenValuesMatch(t *testing.T) {
	prefs := PlatformPrefs{Icon: "sat.png"}
	icon := "sat.png"
	cmd := PlatformCommand{Time: 1, Icon: &icon}

	if cmd.ApplyTo(&prefs) {
		t.Fatalf("ApplyTo reported a change for an identical value")
	}
}

func TestDisplayNamePrefersEnabledNonEmptyAlias(t *testing.T) {
	cases := []struct {
		name  string
		prefs CommonPrefs
		want  string
	}{
		{"alias off", CommonPrefs{Name: "n", Alias: "a"}, "n"},
		{"alias on", CommonPrefs{Name: "n", Alias: "a", UseAlias: true}, "a"},
		{"alias on but empty", CommonPrefs{Name: "n", UseAlias: true}, "n"},
	}
	for _, tc := range cases {
		if got := tc.prefs.DisplayName(); got != tc.want {
			t.Errorf("%s: DisplayName() = %q, want %q", tc.name, got, tc.want)
		}
	}
}
