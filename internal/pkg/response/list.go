package response

// List maps a slice of domain values into response DTOs, returning an empty
// (non-nil) slice for empty input so list endpoints never serialize null.
func List[T, R any](in []T, convert func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = convert(v)
	}
	return out
}
