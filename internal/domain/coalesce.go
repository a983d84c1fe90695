package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// StrFromPtr returns the first non-nil *string value, or "".
func StrFromPtr(ptrs ...*string) string {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return ""
}

// StrsOrEmpty returns in, or an empty non-nil slice when in is nil.
func StrsOrEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
