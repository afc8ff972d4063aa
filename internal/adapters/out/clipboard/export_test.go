package clipboard

// Detect exposes tool detection with a custom PATH lookup.
func Detect(lookPath func(string) (string, error)) []string {
	return detect(lookPath)
}
