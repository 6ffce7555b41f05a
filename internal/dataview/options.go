package dataview

// Option resolves the property named by (object, property) from the
// table metadata. It returns def when the object or property is absent,
// the stored value is nil, or the value is not of type T. Resolution is
// per-property: one malformed value never affects another lookup.
func Option[T any](md Metadata, object, property string, def T) T {
	props, ok := md.Objects[object]
	if !ok {
		return def
	}
	raw, ok := props[property]
	if !ok || raw == nil {
		return def
	}
	v, ok := raw.(T)
	if !ok {
		return def
	}
	return v
}
