package util

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

// TreeNode is one printable node in a tree listing. Nodes have a
// single-character icon, a label denoting what kind of object the node
// is, a status, a title and a description, plus any number of children.
type TreeNode interface {
	Icon() string
	Label() string
	Status() string
	Title() string
	Description() string
	Children() []TreeNode
}

// TreePrinter pretty-prints a tree of nodes, one node per line:
//
//	┏━ <Root Title>
//	┃  <Root Description>
//	┃
//	┣━ <Icon> <Label> <Status> <Title>
//	┃         <Description>
//	┗━ <Icon> <Label> <Status> <Title>
//	          <Description>
//
// Lines are truncated to Width display cells, with "..." marking the
// cut. Descriptions and recursion into grandchildren are optional.
type TreePrinter struct {
	Width       int
	Description bool
	Recursive   bool
}

const (
	treeTopCorner  = "┏━ "
	treeNodePiece  = "┣━ "
	treeBotCorner  = "┗━ "
	treeVConnector = "┃  "
	treeEmpty      = "   "
)

// Print writes the whole tree to w, starting with the root's title and
// description followed by the children.
func (p *TreePrinter) Print(w io.Writer, title, description string, children []TreeNode) error {
	if _, err := fmt.Fprintln(w, treeTopCorner+p.truncate(title, treeTopCorner)); err != nil {
		return errors.Wrap(err, "failed to write tree root")
	}
	if p.Description {
		if _, err := fmt.Fprintln(w, treeVConnector+p.truncate(description, treeVConnector)); err != nil {
			return errors.Wrap(err, "failed to write tree root")
		}
	}
	if _, err := fmt.Fprintln(w, treeVConnector); err != nil {
		return errors.Wrap(err, "failed to write tree root")
	}

	return p.printChildren(w, "", children)
}

func (p *TreePrinter) printChildren(w io.Writer, prefix string, children []TreeNode) error {
	for i, child := range children {
		last := i == len(children)-1
		connector := treeNodePiece
		if last {
			connector = treeBotCorner
		}

		icon := child.Icon()
		line := prefix + connector + icon + " " + child.Label() + " " + child.Status() + " "
		if _, err := fmt.Fprintln(w, line+p.truncate(child.Title(), line)); err != nil {
			return errors.Wrap(err, "failed to write tree node")
		}

		// The node's left column: wide enough for the connector plus
		// the icon, so descriptions and children line up under the
		// label.
		column := runewidth.StringWidth(connector + icon)

		if p.Description {
			cc := treeVConnector
			if last {
				cc = treeEmpty
			}
			line := prefix + runewidth.FillRight(cc, column) + " "
			if _, err := fmt.Fprintln(w, line+p.truncate(child.Description(), line)); err != nil {
				return errors.Wrap(err, "failed to write tree node")
			}
		}

		if p.Recursive {
			cc := treeVConnector
			if last {
				cc = treeEmpty
			}
			childPrefix := prefix + runewidth.FillRight(cc, column) + " "
			if err := p.printChildren(w, childPrefix, child.Children()); err != nil {
				return err
			}
		}
	}

	return nil
}

// truncate trims s so that it fits after the already-printed head of
// the line.
func (p *TreePrinter) truncate(s, head string) string {
	rem := p.Width - runewidth.StringWidth(head)
	if rem < 0 {
		rem = 0
	}
	return runewidth.Truncate(s, rem, "...")
}
