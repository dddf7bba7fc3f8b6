package snapshot

import (
	"fmt"
	"strconv"
	"strings"
)

// renderNoise is the set of roles never emitted as a line of their own,
// because they carry no information an agent acts on (inline text runs,
// line breaks within a paragraph).
var renderNoise = map[string]bool{
	"InlineTextBox": true,
	"LineBreak":     true,
}

// propertyOrder fixes the display order of properties on a line, so
// formatter output is deterministic.
var propertyOrder = []string{"checked", "disabled", "expanded", "level", "selected", "required"}

func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Format renders the tree depth-first into the snapshot document
// grammar: two-space indent per level, one line per non-skipped node of
// the form `- ROLE "name" [prop=value, ...] [ref=NODE_ID]`, prefixed
// with the `# <raw> chars → <pruned> chars (N% pruned)` statistics
// line. rawLen is the serialized length of the unpruned tree, measured
// by the caller before running the pruning pipeline.
func Format(root *Node, rawLen int) string {
	var lines []string
	formatNode(root, 0, &lines)
	body := strings.Join(lines, "\n")
	pct := 0
	if rawLen > 0 {
		pct = int(100 - (float64(len(body))/float64(rawLen))*100)
		if pct < 0 {
			pct = 0
		}
	}
	stats := fmt.Sprintf("# %d chars → %d chars (%d%% pruned)", rawLen, len(body), pct)
	if body == "" {
		return stats
	}
	return stats + "\n" + body
}

func formatNode(n *Node, depth int, lines *[]string) {
	if n == nil {
		return
	}
	skip := renderNoise[n.Role] || n.Role == PromoteRole
	if n.Ignored {
		skip = true
	}
	if !skip {
		*lines = append(*lines, formatLine(n, depth))
		depth++
	}
	for _, c := range n.Children {
		formatNode(c, depth, lines)
	}
}

func formatLine(n *Node, depth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("- ")
	b.WriteString(n.Role)
	b.WriteString(" \"")
	b.WriteString(n.Name)
	b.WriteString("\"")

	var props []string
	for _, key := range propertyOrder {
		if v, ok := n.Properties[key]; ok {
			props = append(props, key+"="+v)
		}
	}
	if n.Value != "" {
		props = append(props, "value="+n.Value)
	}
	if len(props) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(props, ", "))
		b.WriteString("]")
	}
	if n.ID != "" {
		fmt.Fprintf(&b, " [ref=%s]", n.ID)
	}
	return b.String()
}
