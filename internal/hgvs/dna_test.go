package hgvs

import (
	"strings"
	"testing"
)

func TestDNASubstitution(t *testing.T) {
	valid := []string{
		"c.123A>G",
		"c.123A>X",
		"c.123A>N",
		"g.123A>G",
		"m.123A>G",
		"n.123A>G",
		"c.*123A>G",
		"c.-123A>G",
		"c.-123+45A>G",
		"c.*123-45A>G",
		"c.93+1G>T",
		"c.54G>H",
		"c.54=",
		"c.54=/T>C",
		"c.54=//T>C",
	}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			if _, err := Parse(s); err != nil {
				t.Errorf("Parse(%q) returned error: %v", s, err)
			}
		})
	}

	invalid := []string{
		"",
		"c.A>G",
		"c.*A>G",
		"c.12A=G",
		"c.12A>E",
		"c.12A<E",
		"c.12>A",
		"c.+12A>G",
	}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			if _, err := Parse(s); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", s)
			}
		})
	}
}

func TestDNASubstitutionSelfReference(t *testing.T) {
	_, err := Parse("c.1A>A")
	if err == nil {
		t.Fatal("Parse succeeded, want error")
	}
	want := "Reference nucleotide cannot be the same as the new nucleotide for variant 'c.1A>A'."
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestDNADeletion(t *testing.T) {
	valid := []string{
		"c.19del",
		"c.19delT",
		"c.19_21del",
		"c.19_21=/del",
		"c.19_21del=//del",
		"c.(4071+1_4072-1)_(5154+1_5155-1)del",
		"c.(?_-245)_(31+1_32-1)del",
		"c.(?_-1)_(*1_?)del",
		"g.19del",
	}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			if _, err := Parse(s); err != nil {
				t.Errorf("Parse(%q) returned error: %v", s, err)
			}
		})
	}

	invalid := []string{
		"c.19delR",
		"c.delA",
		"c.1704+1delAAA",
		"c.19_21del(5)",
		"c.19_21delTTT",
		"c.(?_-1)_(+1_?)del",
	}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			_, err := Parse(s)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", s)
			}
			if !strings.Contains(err.Error(), "deletion") {
				t.Errorf("error = %q, want deletion syntax error", err.Error())
			}
		})
	}
}

func TestDNAInsertion(t *testing.T) {
	valid := []string{
		"c.169_170insA",
		"c.240_241insAGG",
		"c.761_762insNNNNN",
		"c.32717298_32717299ins(100)",
		"c.(222_226)insG",
		"g.169_170insA",
	}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			if _, err := Parse(s); err != nil {
				t.Errorf("Parse(%q) returned error: %v", s, err)
			}
		})
	}

	invalid := []string{
		"c.240_241ins",
		"c.240insAGG",
		"c.761_762insRRE",
		"c.169_170ins(A)",
	}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			_, err := Parse(s)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", s)
			}
			if !strings.Contains(err.Error(), "insertion") {
				t.Errorf("error = %q, want insertion syntax error", err.Error())
			}
		})
	}
}

func TestDNADelins(t *testing.T) {
	valid := []string{
		"c.6775delinsGA",
		"c.6775_6777delinsGA",
		"c.?_6777delinsC",
		"c.?_?delinsC",
		"c.9002_9009delins(5)",
	}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			if _, err := Parse(s); err != nil {
				t.Errorf("Parse(%q) returned error: %v", s, err)
			}
		})
	}

	invalid := []string{
		"c.delinsA",
		"c.6775delins",
		"c.6775_delinsC",
	}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			_, err := Parse(s)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", s)
			}
			if !strings.Contains(err.Error(), "deletion-insertion") {
				t.Errorf("error = %q, want deletion-insertion syntax error", err.Error())
			}
		})
	}
}

func TestDNAMultiVariant(t *testing.T) {
	relaxed := ParseOptions{RelaxedOrdering: true}

	valid := []string{
		"c.[123A>G;19del;240_241insAGG;9002_9009delins(5)]",
		"g.[123=/A>G;19del]",
		"m.[123=;19del]",
		"n.[54=//T>C;54+1_54+2insTA]",
	}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			v, err := ParseWithOptions(s, relaxed)
			if err != nil {
				t.Fatalf("ParseWithOptions(%q) returned error: %v", s, err)
			}
			if !v.Multi {
				t.Errorf("ParseWithOptions(%q).Multi = false, want true", s)
			}
		})
	}

	invalid := []string{
		"c.[123A>G]",
		"c.[123=;]",
		"c.[1A>G,2A>T]",
		"c.[123A>G;19delR]",
	}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			if _, err := ParseWithOptions(s, relaxed); err == nil {
				t.Errorf("ParseWithOptions(%q) succeeded, want error", s)
			}
		})
	}
}

func TestDNAMultiVariantDuplicateEvents(t *testing.T) {
	_, err := Parse("c.[1A>G;1A>G]")
	if err == nil {
		t.Fatal("Parse succeeded, want error")
	}
	want := "Multi-variant 'c.[1A>G;1A>G]' has defined the same event more than once."
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestDNAEventDecomposition(t *testing.T) {
	v, err := Parse("c.123A>G")
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Events) != 1 {
		t.Fatalf("len(Events) = %d, want 1", len(v.Events))
	}
	e := v.Events[0]
	if e.Kind != KindSubstitution || e.Start != 123 || e.Ref != "A" || e.Alt != "G" {
		t.Errorf("event = %+v, want substitution 123 A>G", e)
	}

	v, err = Parse("c.19_21del")
	if err != nil {
		t.Fatal(err)
	}
	e = v.Events[0]
	if e.Kind != KindDeletion || e.Start != 19 || e.End != 21 {
		t.Errorf("event = %+v, want deletion 19_21", e)
	}

	v, err = Parse("c.54=")
	if err != nil {
		t.Fatal(err)
	}
	if v.Events[0].Kind != KindNoChange {
		t.Errorf("kind = %v, want %v", v.Events[0].Kind, KindNoChange)
	}
}
