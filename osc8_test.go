package mdcat

import "testing"

func clearOSC8Env(t *testing.T) {
	t.Helper()
	for _, name := range []string{"OSC8", "DOMTERM", "WT_SESSION", "TERM_PROGRAM", "TERM", "VTE_VERSION"} {
		t.Setenv(name, "")
	}
}

func TestDetectOSC8SupportBareEnvironment(t *testing.T) {
	clearOSC8Env(t)
	if DetectOSC8Support() {
		t.Fatalf("bare environment should not claim hyperlink support")
	}
}

func TestDetectOSC8SupportKnownTerminals(t *testing.T) {
	cases := []struct {
		name  string
		value string
	}{
		{"WT_SESSION", "1"},
		{"DOMTERM", "domterm"},
		{"TERM_PROGRAM", "iTerm.app"},
		{"TERM_PROGRAM", "WezTerm"},
		{"TERM_PROGRAM", "vscode"},
		{"TERM", "xterm-kitty"},
	}
	for _, tc := range cases {
		t.Run(tc.name+"="+tc.value, func(t *testing.T) {
			clearOSC8Env(t)
			t.Setenv(tc.name, tc.value)
			if !DetectOSC8Support() {
				t.Fatalf("%s=%s should enable hyperlink support", tc.name, tc.value)
			}
		})
	}
}

func TestDetectOSC8SupportVTEVersion(t *testing.T) {
	clearOSC8Env(t)
	t.Setenv("VTE_VERSION", "5202")
	if !DetectOSC8Support() {
		t.Fatalf("VTE 0.52 supports hyperlinks")
	}
	t.Setenv("VTE_VERSION", "4000")
	if DetectOSC8Support() {
		t.Fatalf("VTE 0.40 predates hyperlink support")
	}
	t.Setenv("VTE_VERSION", "not-a-number")
	if DetectOSC8Support() {
		t.Fatalf("malformed VTE_VERSION must not enable support")
	}
}

func TestDetectOSC8SupportForcedOff(t *testing.T) {
	clearOSC8Env(t)
	t.Setenv("WT_SESSION", "1")
	t.Setenv("OSC8", "0")
	if DetectOSC8Support() {
		t.Fatalf("OSC8=0 must force detection off")
	}
}
