package testsession

import (
	"strings"

	"github.com/desertwitch/pathkit/internal/comparer"
	"github.com/stretchr/testify/assert"
)

// AssertEqual asserts that expected and actual are equal. On failure, the
// session's comparer renders the explanation, falling back to the output of
// [assert.Equal] if the comparer has nothing to say about the values.
func (s *Session) AssertEqual(t assert.TestingT, expected, actual any, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	if assert.ObjectsAreEqual(expected, actual) {
		return true
	}

	lines := s.comparer.Render(comparer.OpEqual, expected, actual)
	if len(lines) == 0 {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}

	return assert.Fail(t, "Not equal:\n"+strings.Join(lines, "\n"), msgAndArgs...)
}
