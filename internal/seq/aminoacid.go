package seq

// AminoAcidSingleToThree converts single letter amino acid codes to three
// letter codes.
var AminoAcidSingleToThree = map[byte]string{
	'A': "Ala", 'C': "Cys", 'D': "Asp", 'E': "Glu",
	'F': "Phe", 'G': "Gly", 'H': "His", 'I': "Ile",
	'K': "Lys", 'L': "Leu", 'M': "Met", 'N': "Asn",
	'P': "Pro", 'Q': "Gln", 'R': "Arg", 'S': "Ser",
	'T': "Thr", 'V': "Val", 'W': "Trp", 'Y': "Tyr",
	'*': "Ter", 'X': "Xaa",
}

// AminoAcidThreeToSingle maps three-letter amino acid codes to single-letter.
var AminoAcidThreeToSingle map[string]byte

func init() {
	AminoAcidThreeToSingle = make(map[string]byte, len(AminoAcidSingleToThree))
	for single, three := range AminoAcidSingleToThree {
		AminoAcidThreeToSingle[three] = single
	}
}

// AminoAcidCode normalizes an amino acid token (single letter, three letter,
// or "*") to its single-letter code. Returns 0 when the token is not a
// recognized amino acid.
func AminoAcidCode(token string) byte {
	switch len(token) {
	case 1:
		c := token[0]
		if _, ok := AminoAcidSingleToThree[c]; ok {
			return c
		}
	case 3:
		if single, ok := AminoAcidThreeToSingle[token]; ok {
			return single
		}
	}
	return 0
}
