package nlp

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Machine   Learning ", "machine learning"},
		{"C++/C#", "c++ c#"},
		{"Node.js", "node js"},
		{"PostgreSQL, Redis & Docker", "postgresql redis docker"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestContainsPhrase(t *testing.T) {
	text := Normalize("Built data pipelines with Machine Learning on Kubernetes")
	if !ContainsPhrase(text, "machine learning") {
		t.Error("expected multi-word phrase match")
	}
	if ContainsPhrase(text, "learn") {
		t.Error("substring of a token must not match")
	}
	if ContainsPhrase(text, "") {
		t.Error("empty phrase must not match")
	}
}

func TestSkillVariants(t *testing.T) {
	got := SkillVariants("Golang")
	want := map[string]bool{"golang": true, "go": true}
	if len(got) != 2 {
		t.Fatalf("SkillVariants(Golang) = %v", got)
	}
	for _, v := range got {
		if !want[v] {
			t.Errorf("unexpected variant %q", v)
		}
	}
	if len(SkillVariants("   ")) != 0 {
		t.Error("blank skill must yield no variants")
	}
}
