package module

// VariantKey is the reserved configuration key that selects the active
// declared option variant. All other keys are forwarded verbatim to the
// unit's options map.
const VariantKey = "variant"

// Options is the flat key=value configuration passed to a unit's entry
// point.
type Options map[string]string

// Variant resolves the active option variant against the declared list:
// the value of the reserved key when set, otherwise the first declared
// variant, otherwise empty.
func (o Options) Variant(declared []string) string {
	if v, ok := o[VariantKey]; ok && v != "" {
		return v
	}
	if len(declared) > 0 {
		return declared[0]
	}
	return ""
}

// Clone returns a shallow copy so callers can inject defaults without
// mutating the parsed map.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}
