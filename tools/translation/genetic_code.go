package translation

// codonFamily lists the codons of one amino acid in table order. Optimize
// breaks usage ties by this order.
type codonFamily struct {
	AminoAcid byte
	Codons    []string
}

var standardCode = []codonFamily{
	{'F', []string{"TTT", "TTC"}},                             // Phenylalanine
	{'L', []string{"TTA", "TTG", "CTT", "CTC", "CTA", "CTG"}}, // Leucine
	{'I', []string{"ATT", "ATC", "ATA"}},                      // Isoleucine
	{'M', []string{"ATG"}},                                    // Methionine (Start)
	{'V', []string{"GTT", "GTC", "GTA", "GTG"}},               // Valine
	{'S', []string{"TCT", "TCC", "TCA", "TCG", "AGT", "AGC"}}, // Serine
	{'P', []string{"CCT", "CCC", "CCA", "CCG"}},               // Proline
	{'T', []string{"ACT", "ACC", "ACA", "ACG"}},               // Threonine
	{'A', []string{"GCT", "GCC", "GCA", "GCG"}},               // Alanine
	{'Y', []string{"TAT", "TAC"}},                             // Tyrosine
	{'H', []string{"CAT", "CAC"}},                             // Histidine
	{'Q', []string{"CAA", "CAG"}},                             // Glutamine
	{'N', []string{"AAT", "AAC"}},                             // Asparagine
	{'K', []string{"AAA", "AAG"}},                             // Lysine
	{'D', []string{"GAT", "GAC"}},                             // Aspartic Acid
	{'E', []string{"GAA", "GAG"}},                             // Glutamic Acid
	{'C', []string{"TGT", "TGC"}},                             // Cysteine
	{'W', []string{"TGG"}},                                    // Tryptophan
	{'R', []string{"CGT", "CGC", "CGA", "CGG", "AGA", "AGG"}}, // Arginine
	{'G', []string{"GGT", "GGC", "GGA", "GGG"}},               // Glycine
	{'*', []string{"TAA", "TAG", "TGA"}},                      // Stop codons
}

// GeneticCode maps each of the 64 DNA codons to its one-letter amino acid,
// '*' for stop.
var GeneticCode = map[string]byte{}

// synonyms maps an amino acid to its codons in table order.
var synonyms = map[byte][]string{}

func init() {
	for _, fam := range standardCode {
		synonyms[fam.AminoAcid] = fam.Codons
		for _, codon := range fam.Codons {
			GeneticCode[codon] = fam.AminoAcid
		}
	}
}

// Synonyms returns the codons encoding aa in table order.
func Synonyms(aa byte) []string {
	return synonyms[aa]
}
