package sortable

// String is a sortable wrapper for the built-in string type, ordered
// byte-wise. For natural order use natural.String instead.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
