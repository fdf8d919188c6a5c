package concat

// SplitFiles partitions files into exactly n contiguous groups of
// ceil(len/n) entries each. Trailing groups may be empty when n exceeds
// the file count. The partition is deterministic for a given input
// order: concatenating the groups reproduces the input.
func SplitFiles(files []string, n int) [][]string {
	if n <= 0 {
		return nil
	}

	perGroup := (len(files) + n - 1) / n
	groups := make([][]string, n)
	for i := range groups {
		start := i * perGroup
		if start > len(files) {
			start = len(files)
		}
		end := start + perGroup
		if end > len(files) {
			end = len(files)
		}
		groups[i] = files[start:end]
	}
	return groups
}
