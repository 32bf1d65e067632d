package galaxy

import "github.com/jac-oblong/planit/internal/util"

// treeNode adapts a celestial body to util.TreeNode so that a Galaxy
// can be rendered by util.TreePrinter.
type treeNode struct {
	g   *Galaxy
	ref BodyIndex
}

// TreeRoots returns the bodies at the root of the Galaxy, meaning
// those without a parent, as printable tree nodes in ascending ID
// order. A star's children resolve through the Galaxy, so the nodes
// stay valid only as long as the Galaxy does.
func (g *Galaxy) TreeRoots() []util.TreeNode {
	roots := []util.TreeNode{}
	g.Each(func(ref BodyIndex) bool {
		if g.coreAt(ref).Parent == nil {
			roots = append(roots, treeNode{g: g, ref: ref})
		}
		return true
	})
	return roots
}

func (n treeNode) Icon() string {
	switch n.ref.Kind {
	case KindComet:
		return "o"
	case KindPlanet:
		return "O"
	case KindStar:
		return "*"
	default:
		return "?"
	}
}

func (n treeNode) Label() string {
	return "[" + n.ref.Kind.String() + "]"
}

func (n treeNode) Status() string {
	return n.g.coreAt(n.ref).Status.String()
}

func (n treeNode) Title() string {
	return n.g.coreAt(n.ref).Title
}

func (n treeNode) Description() string {
	return n.g.coreAt(n.ref).Description
}

// Children resolves a star's child ids against the Galaxy, keeping the
// order stored in the star. Ids that no longer resolve are skipped.
// Bodies other than stars have no children.
func (n treeNode) Children() []util.TreeNode {
	if n.ref.Kind != KindStar {
		return nil
	}

	children := []util.TreeNode{}
	for _, id := range n.g.stars[n.ref.Slot].Children {
		ref, ok := n.g.Index(id)
		if !ok {
			continue
		}
		children = append(children, treeNode{g: n.g, ref: ref})
	}
	return children
}
