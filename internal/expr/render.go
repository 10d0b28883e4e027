package expr

import (
	"strconv"
	"strings"
)

// Canonical rendering: every binary child is parenthesized, the
// outermost node is not. The form round-trips through the parser
// unambiguously and doubles as the dedup key for solutions.

func (l *Leaf) String() string {
	return strconv.Itoa(l.Operand.Value)
}

func (b *Binary) String() string {
	var sb strings.Builder
	writeChild(&sb, b.Left)
	sb.WriteByte(' ')
	sb.WriteString(b.Op.Symbol())
	sb.WriteByte(' ')
	writeChild(&sb, b.Right)
	return sb.String()
}

func writeChild(sb *strings.Builder, n Node) {
	if _, ok := n.(*Binary); ok {
		sb.WriteByte('(')
		sb.WriteString(n.String())
		sb.WriteByte(')')
		return
	}
	sb.WriteString(n.String())
}

// Pretty swaps the ASCII operator symbols for display glyphs.
func Pretty(rendered string) string {
	r := strings.NewReplacer("*", "×", "/", "÷", "-", "−")
	return r.Replace(rendered)
}
