package errors

import "testing"

func TestBannerFormatsOneLinePerError(t *testing.T) {
	got := Banner(ResolverBanner, []Line{
		{Line: 3, Message: "Can't read local variable in its own initializer."},
	})
	want := "Resolver error(s):\n[ line 3 ] : Can't read local variable in its own initializer."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBannerEmptyIsEmptyString(t *testing.T) {
	if got := Banner(ScannerBanner, nil); got != "" {
		t.Fatalf("expected empty string for no errors, got %q", got)
	}
}

func TestRuntimeIsSingleLineWithBannerPrefix(t *testing.T) {
	got := Runtime(1, "Incompatible operands.")
	want := "Runtime error: [ line 1 ] : Incompatible operands."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
