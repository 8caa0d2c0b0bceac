/*
Package domdbg implements helpers to debug rendered trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/cssnap/dom"
	tp "github.com/xlab/treeprint"
)

// Dump renders the structure of a tree as an ASCII tree diagram, one line per
// node. Elements show their tag and class attribute, text nodes a shortened
// excerpt.
func Dump(root dom.TreeNode) string {
	if dom.IsNil(root) {
		return "<nil>"
	}
	p := tp.NewWithRoot(label(root))
	dump(p, root)
	return p.String()
}

func dump(p tp.Tree, n dom.TreeNode) {
	for _, ch := range n.Children() {
		if len(ch.Children()) == 0 {
			p.AddNode(label(ch))
			continue
		}
		dump(p.AddBranch(label(ch)), ch)
	}
}

func label(n dom.TreeNode) string {
	switch n.Kind() {
	case dom.Element:
		if cls, ok := n.ClassAttribute(); ok {
			return fmt.Sprintf("<%s> .%s", n.Tag(), strings.Join(strings.Fields(cls), "."))
		}
		return fmt.Sprintf("<%s>", n.Tag())
	case dom.Text, dom.Comment:
		return n.Kind().String() + " " + shortText(n.Text(), 20)
	}
	return "#" + n.Kind().String()
}

// --- GraphViz --------------------------------------------------------------

type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

type node struct {
	N    dom.TreeNode
	Name string
}

type edge struct {
	N1, N2 node
}

// ToGraphViz outputs a diagram for a tree. The diagram is in GraphViz (DOT)
// format. Element nodes are labelled with their tag and classes; classes
// accepted by isGenerated (if not nil) are highlighted.
func ToGraphViz(root dom.TreeNode, w io.Writer, isGenerated func(string) bool) error {
	tmpl, err := template.New("tree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("treenode").Funcs(template.FuncMap{
		"shortstring": func(n dom.TreeNode) string { return fmt.Sprintf("%q", shortText(n.Text(), 10)) },
		"classes":     func(n dom.TreeNode) string { return classLabel(n, isGenerated) },
	}).Parse(treeNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("treeedge").Parse(treeEdgeTmpl))
	if err := tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if !dom.IsNil(root) {
		dict := make(map[any]string, 256)
		if err := nodes(root, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodes(n dom.TreeNode, w io.Writer, dict map[any]string, gparams *graphParamsType) error {
	if err := gparams.NodeTmpl.Execute(w, &node{n, nodeName(n, dict)}); err != nil {
		return err
	}
	for _, ch := range n.Children() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{node{n, nodeName(n, dict)}, node{ch, nodeName(ch, dict)}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(n dom.TreeNode, dict map[any]string) string {
	name := dict[n.Identity()]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n.Identity()] = name
	}
	return name
}

func classLabel(n dom.TreeNode, isGenerated func(string) bool) string {
	var parts []string
	for _, tok := range dom.ClassTokens(n) {
		if isGenerated != nil && isGenerated(tok) {
			tok = "*" + tok
		}
		parts = append(parts, "."+tok)
	}
	return strings.Join(parts, "\\n")
}

func shortText(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) > max {
		s = s[:max] + "..."
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const treeNodeTmpl = `{{ if eq .N.Kind.String "element" }}
{{ .Name }}	[ label="{{ .N.Tag }}\n{{ classes .N }}" shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ end }}
`

const treeEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
