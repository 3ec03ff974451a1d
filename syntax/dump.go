package syntax

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dump writes the tree rooted at root, one node per line: a dash per
// depth level, the child index, the kind, the byte range and the quoted
// node text.
func Dump(w io.Writer, root *Node, src string) error {
	if w == nil {
		return fmt.Errorf("syntax dump: writer is nil")
	}
	if root == nil {
		return nil
	}
	bw := bufio.NewWriter(w)
	var counters []int
	root.Walk(func(n *Node, depth int) bool {
		for len(counters) <= depth+1 {
			counters = append(counters, 0)
		}
		idx := counters[depth]
		counters[depth]++
		counters[depth+1] = 0
		bw.WriteString(strings.Repeat("-", depth))
		bw.WriteString(strconv.Itoa(idx))
		bw.WriteByte(' ')
		bw.WriteString(n.Kind.String())
		if n.Synthetic() {
			bw.WriteString(" [-]")
		} else {
			fmt.Fprintf(bw, " [%d,%d)", n.Start, n.End)
		}
		if n.Kind != KindDocument {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Quote(n.Text(src)))
		}
		bw.WriteByte('\n')
		return true
	})
	return bw.Flush()
}
