package chart

// Classify splits the dataset's columns into numeric ones and all of them.
// Both slices keep dataset order.
func Classify(src Source) (numeric, all []string) {
	all = append([]string(nil), src.Names()...)
	numeric = make([]string, 0, len(all))
	for _, name := range all {
		if src.IsNumeric(name) {
			numeric = append(numeric, name)
		}
	}
	return numeric, all
}

// YChoices returns the columns offered for Y selection: the numeric columns,
// or every column when the dataset has none.
func YChoices(src Source) []string {
	numeric, all := Classify(src)
	if len(numeric) == 0 {
		return all
	}
	return numeric
}
