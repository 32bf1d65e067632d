package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testNode struct {
	icon     string
	label    string
	status   string
	title    string
	desc     string
	children []TreeNode
}

func (n *testNode) Icon() string         { return n.icon }
func (n *testNode) Label() string        { return n.label }
func (n *testNode) Status() string       { return n.status }
func (n *testNode) Title() string        { return n.title }
func (n *testNode) Description() string  { return n.desc }
func (n *testNode) Children() []TreeNode { return n.children }

func TestTreePrinter(t *testing.T) {
	children := []TreeNode{
		&testNode{icon: "*", label: "[star]", status: "Todo", title: "Write tests", desc: "desc A"},
		&testNode{icon: "O", label: "[planet]", status: "Done", title: "Ship it", desc: "desc B"},
	}

	var buf bytes.Buffer
	p := TreePrinter{Width: 80, Description: true}
	require.NoError(t, p.Print(&buf, "My Galaxy", "All my tasks", children))

	expected := strings.Join([]string{
		"┏━ My Galaxy",
		"┃  All my tasks",
		"┃  ",
		"┣━ * [star] Todo Write tests",
		"┃    desc A",
		"┗━ O [planet] Done Ship it",
		"     desc B",
		"",
	}, "\n")
	require.Equal(t, expected, buf.String())
}

func TestTreePrinterNoDescription(t *testing.T) {
	children := []TreeNode{
		&testNode{icon: "*", label: "[star]", status: "Todo", title: "Only title"},
	}

	var buf bytes.Buffer
	p := TreePrinter{Width: 80}
	require.NoError(t, p.Print(&buf, "My Galaxy", "ignored", children))

	expected := strings.Join([]string{
		"┏━ My Galaxy",
		"┃  ",
		"┗━ * [star] Todo Only title",
		"",
	}, "\n")
	require.Equal(t, expected, buf.String())
}

func TestTreePrinterTruncates(t *testing.T) {
	var buf bytes.Buffer
	p := TreePrinter{Width: 20}
	require.NoError(t, p.Print(&buf, "abcdefghijklmnopqrstuvwxyz", "", nil))

	lines := strings.Split(buf.String(), "\n")
	require.Equal(t, "┏━ abcdefghijklmn...", lines[0])
}

func TestTreePrinterRecursive(t *testing.T) {
	children := []TreeNode{
		&testNode{icon: "*", label: "[star]", status: "Todo", title: "Parent",
			children: []TreeNode{
				&testNode{icon: "o", label: "[comet]", status: "Next", title: "Nested"},
			},
		},
		&testNode{icon: "O", label: "[planet]", status: "Done", title: "Last"},
	}

	var buf bytes.Buffer
	p := TreePrinter{Width: 80, Recursive: true}
	require.NoError(t, p.Print(&buf, "Root", "", children))

	expected := strings.Join([]string{
		"┏━ Root",
		"┃  ",
		"┣━ * [star] Todo Parent",
		"┃    ┗━ o [comet] Next Nested",
		"┗━ O [planet] Done Last",
		"",
	}, "\n")
	require.Equal(t, expected, buf.String())
}
