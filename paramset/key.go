package paramset

import (
	"fmt"
	"strings"
)

// rootSentinel names the construction anchor. The anchor frame at the
// bottom of the build stack (see newRegistry) stores an empty key rather
// than this string, so it never appears in an externally visible key.
const rootSentinel = "<0>"

// IndexName returns the positional child name for index i within a
// sequence or tuple, e.g. IndexName(2) == "[2]".
func IndexName(i int) Name {
	return Name(fmt.Sprintf("[%d]", i))
}

// childKey joins a parent's key with a child's local name, following the
// dotted-or-bracketed rule from the data model: sequence-element children
// (those whose local name starts with "[") are appended directly, with no
// separating dot; every other child is joined with ".".
func childKey(parentKey string, local Name) string {
	s := string(local)

	if strings.HasPrefix(s, "[") {
		return parentKey + s
	}

	if parentKey == "" {
		return s
	}

	return parentKey + "." + s
}
