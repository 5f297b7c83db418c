package sanitizer

// Apply runs value through transforms in order, feeding each transform the
// output of the previous one.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}
