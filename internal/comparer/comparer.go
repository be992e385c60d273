// Package comparer renders the failure of an equality assertion as a diff of
// the compared values, line by line for strings and field by field for any
// other values.
package comparer

import (
	"reflect"
	"strings"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const (
	// OpEqual is the only comparison operator rendered by a [Comparer].
	OpEqual = "=="

	prefixDelete = "- "
	prefixInsert = "+ "
	prefixEqual  = "  "
)

// Comparer renders equality-assertion failures.
type Comparer struct {
	deleteColor *color.Color
	insertColor *color.Color
}

// NewComparer returns a pointer to a new [Comparer]. With colorize, removed
// lines are rendered red and added lines green, regardless of the terminal.
func NewComparer(colorize bool) *Comparer {
	c := &Comparer{}

	if colorize {
		c.deleteColor = color.New(color.FgRed)
		c.deleteColor.EnableColor()

		c.insertColor = color.New(color.FgGreen)
		c.insertColor.EnableColor()
	}

	return c
}

// Render returns the lines explaining why left op right does not hold. It
// returns nil if the operator is not supported or the values are equal.
func (c *Comparer) Render(op string, left, right any) []string {
	if op != OpEqual {
		return nil
	}

	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return c.renderStrings(l, r)
		}
	}

	return c.renderValues(left, right)
}

func (c *Comparer) renderStrings(left, right string) []string {
	if left == right {
		return nil
	}

	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(left, right)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	lines := []string{"Strings differ (-left +right):"}

	for _, diff := range diffs {
		for _, line := range splitLines(diff.Text) {
			switch diff.Type {
			case diffpatch.DiffDelete:
				lines = append(lines, c.paint(c.deleteColor, prefixDelete+line))
			case diffpatch.DiffInsert:
				lines = append(lines, c.paint(c.insertColor, prefixInsert+line))
			case diffpatch.DiffEqual:
				lines = append(lines, prefixEqual+line)
			}
		}
	}

	return lines
}

func (c *Comparer) renderValues(left, right any) []string {
	diff := cmp.Diff(left, right, cmp.Exporter(func(reflect.Type) bool { return true }))
	if diff == "" {
		return nil
	}

	lines := []string{"Values differ (-left +right):"}

	for _, line := range splitLines(diff) {
		switch {
		case strings.HasPrefix(line, "-"):
			lines = append(lines, c.paint(c.deleteColor, line))
		case strings.HasPrefix(line, "+"):
			lines = append(lines, c.paint(c.insertColor, line))
		default:
			lines = append(lines, line)
		}
	}

	return lines
}

func (c *Comparer) paint(col *color.Color, s string) string {
	if col == nil {
		return s
	}

	return col.Sprint(s)
}

// splitLines splits text into its lines, without line endings. A trailing
// line ending does not start another line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
