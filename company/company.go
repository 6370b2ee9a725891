package company

// Record is the normalized company entry used across the extractor, outputs,
// and storage. ISIN holds a single identifier; multi-valued source fields are
// reduced to their first component during extraction.
type Record struct {
	ISIN string `json:"ISIN"`
	Name string `json:"Name"`
}
