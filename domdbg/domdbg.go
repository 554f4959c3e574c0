/*
Package domdbg implements helpers to debug a styled tree.

Dump prints a styled tree as text, ToGraphViz writes it in GraphViz DOT
format, with selected property groups attached to the nodes.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/nodedata"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/styledtree"
	"github.com/npillmayer/cascade/tree"
	tp "github.com/xlab/treeprint"
)

// StyledTree is the type of styled trees this package prints.
type StyledTree = tree.Node[*styledtree.StyNode]

// Dump returns a text rendering of a styled tree. Every line shows an
// element with id, classes and the symbol of its display mode;
// pseudo-elements with styles are shown as leafs below their element.
func Dump(root *StyledTree) string {
	if root == nil {
		return "<empty>\n"
	}
	p := tp.New()
	p.SetValue(label(styledtree.Node(root)))
	dumpChildren(p, root)
	return p.String()
}

func dumpChildren(p tp.Tree, n *StyledTree) {
	sn := styledtree.Node(n)
	for _, pe := range sn.Pseudos() {
		p.AddNode(pe.String())
	}
	for _, ch := range n.Children() {
		if ch.ChildCount() == 0 && len(styledtree.Node(ch).Pseudos()) == 0 {
			p.AddNode(label(styledtree.Node(ch)))
			continue
		}
		dumpChildren(p.AddBranch(label(styledtree.Node(ch))), ch)
	}
}

func label(sn *styledtree.StyNode) string {
	n := sn.DOMNode()
	if !dom.IsElement(n) {
		return "#document"
	}
	var b strings.Builder
	b.WriteString(n.TagName())
	if id := n.ID(); id != "" {
		b.WriteString("#" + id)
	}
	for _, class := range n.Classes() {
		b.WriteString("." + class)
	}
	b.WriteString(" " + sn.DisplayMode().Symbol())
	return b.String()
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the tree, a Writer, and an optional list of style parameter groups.
// The diagram will include all styles belonging to one of the
// parameter groups, as told by the default property table.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//   - Margins
//   - Padding
//   - Border
//   - Display
func ToGraphViz(root *StyledTree, w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		dict := make(map[*StyledTree]string, 256)
		err = tree.TopDown(root, func(n, parent *StyledTree, _ int) error {
			if err := domNode(n, w, dict, &gparams); err != nil {
				return err
			}
			if parent == nil {
				return nil
			}
			return gparams.EdgeTmpl.Execute(w, edge{dict[parent], dict[n]})
		})
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a styled tree and a testing.T, it will
// create a Graphiviz image of the tree and write it to a file in the current
// folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root *StyledTree, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "styled.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing styled tree digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing styled tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	Label string
	Name  string
}

type edge struct {
	N1, N2 string
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

func domNode(n *StyledTree, w io.Writer, dict map[*StyledTree]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[n] = name
	if err := gparams.NodeTmpl.Execute(w, &node{label(styledtree.Node(n)), name}); err != nil {
		return err
	}
	var prev *style.PropertyGroup
	for _, pg := range PropertyGroups(styledtree.Node(n).Styles(), gparams.StyleGroups) {
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		var err error
		if prev == nil {
			err = gparams.PgedgeTmpl.Execute(w, pgedge{name, pg})
		} else {
			err = gparams.PgpgTmpl.Execute(w, []*style.PropertyGroup{prev, pg})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

// PropertyGroups collects the properties of a NodeData (own and inherited)
// into property groups, in the order of groups. Groups without properties
// are omitted.
func PropertyGroups(nd nodedata.NodeData, groups []string) []*style.PropertyGroup {
	if nd == nil {
		return nil
	}
	table := style.DefaultTable()
	byName := make(map[string]*style.PropertyGroup, len(groups))
	for _, g := range groups {
		byName[g] = style.NewPropertyGroup(g)
	}
	for _, name := range nd.PropertyNames() {
		pg, ok := byName[table.Group(name)]
		if !ok {
			continue
		}
		value := string(nd.Property(name, true))
		if v := nd.Value(name, true); v != nil {
			value = v.String()
		}
		pg.Set(name, value)
	}
	var pgs []*style.PropertyGroup
	for _, g := range groups {
		if byName[g].Len() > 0 {
			pgs = append(pgs, byName[g])
		}
	}
	return pgs
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
