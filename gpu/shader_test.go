package gpu

import "testing"

func TestPreprocessIncludesSubstitutesSource(t *testing.T) {
	src := "#version 310 es\n#include \"common.glsl\"\nvoid main() {}\n"
	sources := map[string]string{"common.glsl": "const float PI = 3.14159;"}

	out, err := PreprocessIncludes(src, sources)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(out, "const float PI") {
		t.Fatalf("expected included source to be substituted, got: %s", out)
	}
	if contains(out, "#include") {
		t.Fatalf("expected #include directive to be removed, got: %s", out)
	}
}

func TestPreprocessIncludesMissingSourceErrors(t *testing.T) {
	src := "#include \"missing.glsl\"\n"
	_, err := PreprocessIncludes(src, map[string]string{})
	if err == nil {
		t.Fatal("expected error for missing include source")
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

type sizeProbe struct {
	A uint32
	B uint32
	C int16
	D int16
	E uint8
	F uint8
}

func TestSizeOfMatchesStructLayout(t *testing.T) {
	// A, B: 4 bytes each. C, D: 2 bytes each (8..12). E, F: 1 byte each
	// (12..14), then padded up to the struct's 4-byte alignment (16).
	if SizeOf[sizeProbe]() != 16 {
		t.Fatalf("expected 16 bytes, got %d", SizeOf[sizeProbe]())
	}
}
