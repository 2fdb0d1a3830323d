package helper

import (
	"strings"
	"testing"
)

func TestFileExt(t *testing.T) {
	cases := map[string]string{
		"photo.JPG":     "jpg",
		"logo.png":      "png",
		"a.b.c.webp":    "webp",
		"no_extension":  "",
		"trailing.dot.": "",
	}
	for in, want := range cases {
		if got := FileExt(in); got != want {
			t.Errorf("FileExt(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateUniqueFilename(t *testing.T) {
	a := GenerateUniqueFilename("club logo (final).png")
	b := GenerateUniqueFilename("club logo (final).png")
	if a == b {
		t.Fatal("two generated names collided")
	}
	if strings.ContainsAny(a, "() ") {
		t.Errorf("unsafe characters survived: %q", a)
	}
	if !strings.HasSuffix(a, ".png") {
		t.Errorf("extension lost: %q", a)
	}
}

func TestImageURL(t *testing.T) {
	if got := ImageURL(nil); got != nil {
		t.Fatalf("ImageURL(nil) = %v", *got)
	}
	empty := ""
	if got := ImageURL(&empty); got != nil {
		t.Fatalf("ImageURL(empty) = %v", *got)
	}
	rel := "clubs/20260828-abc.webp"
	got := ImageURL(&rel)
	if got == nil || !strings.HasSuffix(*got, "/static/uploads/clubs/20260828-abc.webp") {
		t.Fatalf("ImageURL = %v", got)
	}
	if !strings.HasPrefix(*got, "http") {
		t.Fatalf("ImageURL missing base: %q", *got)
	}
}
