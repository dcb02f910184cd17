package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v2.0.0"

	// Modular tools
	Benchmark             = "v1.1.0"
	Sequence              = "v1.0.0"
	Motif_Finder          = "v1.0.0"
	Palindrome_Finder     = "v1.0.0"
	Microsatellite_Finder = "v1.0.0"
	Window_Scan           = "v1.0.0"
	Kmer_Analyzer         = "v2.0.0"
	ORF_Finder            = "v2.0.0"
	Site_Locator          = "v1.0.0"
	Translation           = "v1.0.0"
	Primer_Design         = "v1.0.0"
	Seq_Generator         = "v3.0.0" // Formerly "Ran_DNA_Gen"
	Sanity_check          = "v1.1.0"
)

// ToolVersion pairs a tool label with its version for the version menu.
type ToolVersion struct {
	Name    string
	Version string
}

// ToolVersions lists the modular tools in menu order.
func ToolVersions() []ToolVersion {
	return []ToolVersion{
		{"Sequence Statistics", Sequence},
		{"Motif Finder", Motif_Finder},
		{"Palindrome Finder", Palindrome_Finder},
		{"Microsatellite Finder", Microsatellite_Finder},
		{"Window Scan", Window_Scan},
		{"Kmer Analyzer", Kmer_Analyzer},
		{"ORF Finder", ORF_Finder},
		{"Site Locator", Site_Locator},
		{"Translation", Translation},
		{"Primer Design", Primer_Design},
		{"Sequence Generator", Seq_Generator},
		{"Sanity Check", Sanity_check},
		{"Benchmark", Benchmark},
	}
}
