package flagvalue

import (
	"strings"

	"braces.dev/errtrace"
)

// List is a generic flag.Getter
// that accepts zero or more instances of the same flag
// and combines them into a list.
//
// Each argument may hold several comma-separated values.
type List[T any, PT Getter[T]] []T

// ListOf wraps a slice of flag.Getter objects
// to accept zero or more instances of that flag.
//
//	flag.Var(flagvalue.ListOf(&langs), "lang", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the values recorded so far
// as a slice of the underlying type.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String returns a comma-separated list of the values in this list.
func (lv *List[T, PT]) String() string {
	items := make([]string, len(*lv))
	for i := range *lv {
		items[i] = PT(&(*lv)[i]).String()
	}
	return strings.Join(items, ",")
}

// Set receives a single flag argument into this list.
// All values are validated before any are added.
func (lv *List[T, PT]) Set(s string) error {
	parts := strings.Split(s, ",")
	values := make([]T, len(parts))
	for i, part := range parts {
		if err := PT(&values[i]).Set(part); err != nil {
			return errtrace.Errorf("%q: %w", part, err)
		}
	}
	*lv = append(*lv, values...)
	return nil
}
