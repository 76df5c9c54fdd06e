package hgvs

import "testing"

func TestRNAEvents(t *testing.T) {
	valid := []string{
		"r.123a>g",
		"r.123a>u",
		"r.54=",
		"r.54=/u>c",
		"r.54=//u>c",
		"r.0",
		"r.spl",
		"r.?",
		"r.19del",
		"r.19delu",
		"r.19_21del",
		"r.(19_21)del",
		"r.426_427insa",
		"r.756_757insuacu",
		"r.(222_226)insg",
		"r.761_762ins(5)",
		"r.2949_2950ins[2950-30_2950-12;2950-4_2950-1]",
		"r.6775delinsga",
		"r.142_144delinsugg",
	}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			if _, err := Parse(s); err != nil {
				t.Errorf("Parse(%q) returned error: %v", s, err)
			}
		})
	}

	invalid := []string{
		"r.123A>G",
		"r.123a>",
		"r.123a<g",
		"r.19delR",
		"r.426_427inst",
		"r.splice",
	}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			if _, err := Parse(s); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", s)
			}
		})
	}
}

func TestRNASubstitutionSelfReference(t *testing.T) {
	_, err := Parse("r.123a>a")
	if err == nil {
		t.Fatal("Parse succeeded, want error")
	}
	want := "Reference nucleotide cannot be the same as the new nucleotide for variant 'r.123a>a'."
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestRNAMultiVariant(t *testing.T) {
	valid := []string{
		"r.[19del;123a>g]",
		"r.[19del,123a>g]",
		"r.[123a>g;2949_2950ins[2950-30_2950-12;2950-4_2950-1]]",
	}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			v, err := Parse(s)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", s, err)
			}
			if len(v.Events) != 2 {
				t.Errorf("len(Events) = %d, want 2", len(v.Events))
			}
		})
	}

	invalid := []string{
		"r.[123a>g]",
		"r.[123a>g;]",
		"r.[123a>g;19delR]",
	}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			if _, err := Parse(s); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", s)
			}
		})
	}
}

// Comma separated RNA multi-variants normalize to semicolons.
func TestRNAMultiVariantCanonicalForm(t *testing.T) {
	v, err := Parse("r.[19del,123a>g]")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v.String(), "r.[19del;123a>g]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	// Separators inside intronic insertion lists are not event delimiters.
	v, err = Parse("r.[123a>g;2949_2950ins[2950-30_2950-12;2950-4_2950-1]]")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Events[1].Raw; got != "2949_2950ins[2950-30_2950-12;2950-4_2950-1]" {
		t.Errorf("Events[1].Raw = %q", got)
	}
}
