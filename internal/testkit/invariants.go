// Package testkit holds checks shared by tests across packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"jsbind/internal/ast"
	"jsbind/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a decoded program:
// 1) the program span lies within the source text (when the text is known)
// 2) every node span points at sf and is not inverted
// 3) every node span is contained in its parent's span
func CheckSpanInvariants(prog *ast.Program, sf *source.File) error {
	if prog == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}
	root := prog.Span()
	if root.File != sf.ID {
		return fmt.Errorf("program span points to different file id: got=%d want=%d", root.File, sf.ID)
	}
	if sf.Flags&source.FileNoText == 0 {
		lenContent, err := safecast.Conv[uint32](len(sf.Content))
		if err != nil {
			return fmt.Errorf("len content overflow: %w", err)
		}
		if root.End > lenContent {
			return fmt.Errorf("program span end beyond content: %d > %d", root.End, lenContent)
		}
	}
	return checkNode(prog, sf.ID)
}

func checkNode(n ast.Node, file source.FileID) error {
	sp := n.Span()
	if sp.File != file {
		return fmt.Errorf("%s span file mismatch: got=%d want=%d", n.Kind(), sp.File, file)
	}
	if sp.End < sp.Start {
		return fmt.Errorf("%s span is inverted: %v", n.Kind(), sp)
	}
	var err error
	ast.EachChild(n, func(child ast.Node) {
		if err != nil {
			return
		}
		csp := child.Span()
		if csp.Start < sp.Start || csp.End > sp.End {
			err = fmt.Errorf("%s span %v is outside its parent %s %v", child.Kind(), csp, n.Kind(), sp)
			return
		}
		err = checkNode(child, file)
	})
	return err
}
