package entity

// ValidationResult carries the outcome of a validation pass. Errors make the
// configuration invalid; warnings never do.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Merge combines two validation results: the union of errors and warnings,
// valid only when both sides are valid.
func (r ValidationResult) Merge(other ValidationResult) ValidationResult {
	merged := ValidationResult{
		Valid:    r.Valid && other.Valid,
		Errors:   append(append([]string{}, r.Errors...), other.Errors...),
		Warnings: append(append([]string{}, r.Warnings...), other.Warnings...),
	}
	return merged
}
