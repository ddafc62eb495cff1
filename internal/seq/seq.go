// ABOUTME: Small typed slice helpers shared by the tab line packages
// ABOUTME: Join concatenates candidate lists; Dedupe keeps first occurrences

package seq

// Join concatenates parts into a new slice. It never aliases its inputs.
func Join[T any](parts ...[]T) []T {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]T, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Dedupe returns items with later repeats removed, keeping first-seen order.
func Dedupe[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
