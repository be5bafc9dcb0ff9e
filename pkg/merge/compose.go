package merge

// Compose concatenates the declarations body, the implementation body and
// the declarations tail, in that order, into a new slice.
func Compose(declBody, implBody, declTail []string) []string {
	merged := make([]string, 0, len(declBody)+len(implBody)+len(declTail))
	merged = append(merged, declBody...)
	merged = append(merged, implBody...)
	merged = append(merged, declTail...)
	return merged
}
