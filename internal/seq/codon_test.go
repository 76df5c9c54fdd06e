package seq

import "testing"

func TestTranslateCodon(t *testing.T) {
	tests := []struct {
		name  string
		codon string
		want  byte
	}{
		// Standard amino acids
		{"ATG -> Met (start)", "ATG", 'M'},
		{"GGT -> Gly", "GGT", 'G'},
		{"ATT -> Ile", "ATT", 'I'},
		{"GTT -> Val", "GTT", 'V'},
		{"TGG -> Trp", "TGG", 'W'},

		// Stop codons
		{"TAA -> Stop", "TAA", '*'},
		{"TAG -> Stop", "TAG", '*'},
		{"TGA -> Stop", "TGA", '*'},

		// Case insensitivity
		{"lowercase atg", "atg", 'M'},
		{"mixed case AtG", "AtG", 'M'},

		// Invalid codons
		{"too short", "AT", 'X'},
		{"too long", "ATGG", 'X'},
		{"invalid bases", "QQQ", 'X'},
		{"empty", "", 'X'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateCodon(tt.codon)
			if got != tt.want {
				t.Errorf("TranslateCodon(%q) = %c, want %c", tt.codon, got, tt.want)
			}
		})
	}
}

func TestTranslateDNA(t *testing.T) {
	tests := []struct {
		name          string
		dna           string
		wantProtein   string
		wantRemainder int
	}{
		{"simple protein", "ATGGGTCGA", "MGR", 0},
		{"with stop", "ATGGGTCGATAA", "MGR*", 0},
		{"one trailing base", "ATGG", "M", 1},
		{"two trailing bases", "ATGGG", "M", 2},
		{"lowercase", "atgggtcga", "MGR", 0},
		{"empty", "", "", 0},
		{"shorter than a codon", "AT", "", 2},
		{"single codon", "ATG", "M", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			protein, remainder := TranslateDNA(tt.dna)
			if protein != tt.wantProtein {
				t.Errorf("TranslateDNA(%q) protein = %q, want %q", tt.dna, protein, tt.wantProtein)
			}
			if remainder != tt.wantRemainder {
				t.Errorf("TranslateDNA(%q) remainder = %d, want %d", tt.dna, remainder, tt.wantRemainder)
			}
		})
	}
}
