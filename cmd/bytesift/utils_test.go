package bytesift

import (
	"os"
	"testing"
)

func TestSplitList(t *testing.T) {
	if got := splitList(""); got != nil {
		t.Fatalf("expected nil for empty, got %v", got)
	}
	got := splitList(" email, ipv4 ,,url ")
	want := []string{"email", "ipv4", "url"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPickPrecedence(t *testing.T) {
	local, global := "local", "global"
	if v := pickString("cli", &local, &global); v != "cli" {
		t.Fatalf("cli should win, got %q", v)
	}
	if v := pickString("", &local, &global); v != "local" {
		t.Fatalf("local should win, got %q", v)
	}
	if v := pickString("", nil, &global); v != "global" {
		t.Fatalf("global should win, got %q", v)
	}
	lf, gf := 0.3, 0.7
	if v := pickFloat(0, &lf, &gf); v != 0.3 {
		t.Fatalf("expected local float, got %v", v)
	}
	lb := false
	if pickBool(false, &lb, nil) {
		t.Fatal("expected false from local bool")
	}
}

func TestBaseConfig_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })
	cfg := baseConfig(nil)
	if len(cfg.Paths) != 1 || cfg.Paths[0] != "." {
		t.Fatalf("expected default path '.', got %v", cfg.Paths)
	}
}
