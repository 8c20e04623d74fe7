// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import (
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

func yamlStr(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlInt(v uint32) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(uint64(v), 10)}
}

func yamlStrs(ss []string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, s := range ss {
		n.Content = append(n.Content, yamlStr(s))
	}
	return n
}

// yamlMap builds a mapping node from alternating keys and values.
func yamlMap(kv ...any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i < len(kv); i += 2 {
		n.Content = append(n.Content, yamlStr(kv[i].(string)), kv[i+1].(*yaml.Node))
	}
	return n
}

// YAMLNode returns the catalog as a YAML document with the same key order
// as the JSON encoding.
func (c *Catalog) YAMLNode() *yaml.Node {
	elems := yamlMap()
	for id, el := range c.Elements.All() {
		elems.Content = append(elems.Content, yamlStr(id), el.yamlNode())
	}
	doc := yamlMap(
		"schema", yamlMap("version", yamlStr(c.Schema)),
		"root", yamlMap(
			"name", yamlStr(c.Root.Name),
			"display", yamlStr(c.Root.DisplayName),
			"version", yamlStr(c.Root.Version),
			"children", yamlStrs(c.Root.Children),
		),
		"elements", elems,
	)
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{doc}}
}

func (el *Element) yamlNode() *yaml.Node {
	n := yamlMap("type", yamlStr(el.Kind.String()))
	switch el.Kind {
	case Block:
		n.Content = append(n.Content, yamlStr("children"), yamlStrs(el.Children))
	case Reg:
		fields := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, f := range el.Fields {
			fields.Content = append(fields.Content, yamlMap(
				"name", yamlStr(f.Name),
				"lsb", yamlInt(f.LSB),
				"nbits", yamlInt(f.NBits),
				"access", yamlStr(f.Access),
				"reset", yamlStr(hex(f.Reset)),
				"doc", yamlStr(f.Doc),
			))
		}
		n.Content = append(n.Content, yamlStr("fields"), fields)
	case Mem:
		n.Content = append(n.Content, yamlStr("size"), yamlStr(hex(el.Size)))
	}
	n.Content = append(n.Content,
		yamlStr("id"), yamlStr(el.ID),
		yamlStr("name"), yamlStr(el.Name),
		yamlStr("addr"), yamlStr(hex(el.Addr)),
		yamlStr("offset"), yamlStr(hex(el.Offset)),
		yamlStr("doc"), yamlStr(el.Doc),
	)
	return n
}

// WriteYAML writes the catalog to w as a YAML document.
func (c *Catalog) WriteYAML(w io.Writer, indent int) error {
	enc := yaml.NewEncoder(w)
	if indent >= 2 {
		enc.SetIndent(indent)
	}
	if err := enc.Encode(c.YAMLNode()); err != nil {
		return err
	}
	return enc.Close()
}
