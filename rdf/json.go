// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import (
	"io"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func hex(v uint64) string { return "0x" + strconv.FormatUint(v, 16) }

func parseHex(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "bad number %q", s)
	}
	return v, nil
}

// EncodeJSON writes the catalog to e. The key order is fixed so the output
// of equal catalogs is byte-identical.
func (c *Catalog) EncodeJSON(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("schema", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("version", func(e *jx.Encoder) { e.Str(c.Schema) })
			})
		})
		e.Field("root", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("name", func(e *jx.Encoder) { e.Str(c.Root.Name) })
				e.Field("display", func(e *jx.Encoder) { e.Str(c.Root.DisplayName) })
				e.Field("version", func(e *jx.Encoder) { e.Str(c.Root.Version) })
				e.Field("children", func(e *jx.Encoder) { encodeStrs(e, c.Root.Children) })
			})
		})
		e.Field("elements", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				for id, el := range c.Elements.All() {
					e.Field(id, func(e *jx.Encoder) { el.EncodeJSON(e) })
				}
			})
		})
	})
}

// WriteJSON writes the catalog to w, indented by indent spaces per level or
// compact if indent is 0.
func (c *Catalog) WriteJSON(w io.Writer, indent int) error {
	var e jx.Encoder
	e.SetIdent(indent)
	c.EncodeJSON(&e)
	if indent > 0 {
		e.RawStr("\n")
	}
	_, err := e.WriteTo(w)
	return err
}

func encodeStrs(e *jx.Encoder, ss []string) {
	e.Arr(func(e *jx.Encoder) {
		for _, s := range ss {
			e.Str(s)
		}
	})
}

func (el *Element) EncodeJSON(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("type", func(e *jx.Encoder) { e.Str(el.Kind.String()) })
		switch el.Kind {
		case Block:
			e.Field("children", func(e *jx.Encoder) { encodeStrs(e, el.Children) })
		case Reg:
			e.Field("fields", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, f := range el.Fields {
						f.EncodeJSON(e)
					}
				})
			})
		case Mem:
			e.Field("size", func(e *jx.Encoder) { e.Str(hex(el.Size)) })
		}
		e.Field("id", func(e *jx.Encoder) { e.Str(el.ID) })
		e.Field("name", func(e *jx.Encoder) { e.Str(el.Name) })
		e.Field("addr", func(e *jx.Encoder) { e.Str(hex(el.Addr)) })
		e.Field("offset", func(e *jx.Encoder) { e.Str(hex(el.Offset)) })
		e.Field("doc", func(e *jx.Encoder) { e.Str(el.Doc) })
	})
}

func (f Field) EncodeJSON(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { e.Str(f.Name) })
		e.Field("lsb", func(e *jx.Encoder) { e.UInt32(f.LSB) })
		e.Field("nbits", func(e *jx.Encoder) { e.UInt32(f.NBits) })
		e.Field("access", func(e *jx.Encoder) { e.Str(f.Access) })
		e.Field("reset", func(e *jx.Encoder) { e.Str(hex(f.Reset)) })
		e.Field("doc", func(e *jx.Encoder) { e.Str(f.Doc) })
	})
}

// ReadJSON decodes a catalog written by WriteJSON. Unknown keys are skipped.
func ReadJSON(r io.Reader) (*Catalog, error) {
	c := &Catalog{Elements: NewRegistry()}
	d := jx.Decode(r, 64<<10)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "schema":
			return d.Obj(func(d *jx.Decoder, key string) error {
				if key != "version" {
					return d.Skip()
				}
				s, err := d.Str()
				c.Schema = s
				return err
			})
		case "root":
			return c.Root.decodeJSON(d)
		case "elements":
			return d.Obj(func(d *jx.Decoder, id string) error {
				el := new(Element)
				if err := el.decodeJSON(d); err != nil {
					return errors.Wrap(err, id)
				}
				if el.ID != id {
					return errors.Errorf("element %q stored under %q", el.ID, id)
				}
				return c.Elements.Insert(el)
			})
		}
		return d.Skip()
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	return c, nil
}

func decodeStrs(d *jx.Decoder) ([]string, error) {
	ss := []string{}
	err := d.Arr(func(d *jx.Decoder) error {
		s, err := d.Str()
		ss = append(ss, s)
		return err
	})
	return ss, err
}

func (root *Root) decodeJSON(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			root.Name, err = d.Str()
		case "display":
			root.DisplayName, err = d.Str()
		case "version":
			root.Version, err = d.Str()
		case "children":
			root.Children, err = decodeStrs(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

func decodeHex(d *jx.Decoder, v *uint64) error {
	s, err := d.Str()
	if err != nil {
		return err
	}
	*v, err = parseHex(s)
	return err
}

func (el *Element) decodeJSON(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "type":
			var s string
			if s, err = d.Str(); err == nil {
				var ok bool
				if el.Kind, ok = ParseKind(s); !ok {
					err = errors.Errorf("unknown element type %q", s)
				}
			}
		case "children":
			el.Children, err = decodeStrs(d)
		case "fields":
			el.Fields = []Field{}
			err = d.Arr(func(d *jx.Decoder) error {
				var f Field
				if err := f.decodeJSON(d); err != nil {
					return err
				}
				el.Fields = append(el.Fields, f)
				return nil
			})
		case "size":
			err = decodeHex(d, &el.Size)
		case "id":
			el.ID, err = d.Str()
		case "name":
			el.Name, err = d.Str()
		case "addr":
			err = decodeHex(d, &el.Addr)
		case "offset":
			err = decodeHex(d, &el.Offset)
		case "doc":
			el.Doc, err = d.Str()
		default:
			err = d.Skip()
		}
		return err
	})
}

func (f *Field) decodeJSON(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			f.Name, err = d.Str()
		case "lsb":
			f.LSB, err = d.UInt32()
		case "nbits":
			f.NBits, err = d.UInt32()
		case "access":
			f.Access, err = d.Str()
		case "reset":
			err = decodeHex(d, &f.Reset)
		case "doc":
			f.Doc, err = d.Str()
		default:
			err = d.Skip()
		}
		return err
	})
}
