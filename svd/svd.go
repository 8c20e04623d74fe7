// Copyright 2019 Michal Derkacz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svd decodes CMSIS-SVD device descriptions.
package svd

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// parseUint accepts the SVD scaledNonNegativeInteger forms used in practice:
// decimal, 0x hexadecimal and #binary.
func parseUint(s string, bits int) (uint64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return strconv.ParseUint(s[1:], 2, bits)
	}
	return strconv.ParseUint(s, 0, bits)
}

type Int int

func (i *Int) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 0)
	*i = Int(v)
	return err
}

type Uint uint

func (u *Uint) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	v, err := parseUint(s, 0)
	*u = Uint(v)
	return err
}

type Uint64 uint64

func (u *Uint64) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	v, err := parseUint(s, 64)
	*u = Uint64(v)
	return err
}

type Device struct {
	Vendor                  *string `xml:"vendor"`
	VendorID                *string `xml:"vendorID"`
	Name                    string  `xml:"name"`
	Series                  *string `xml:"series"`
	Version                 string  `xml:"version"`
	Description             string  `xml:"description"`
	LicenseText             *string `xml:"licenseText"`
	CPU                     *CPU    `xml:"cpu"`
	HeaderSystemFilename    *string `xml:"headerSystemFilename"`
	HeaderDefinitionsPrefix *string `xml:"headerDefinitionsPrefix"`
	AddressUnitBits         Uint    `xml:"addressUnitBits"`
	Width                   Uint    `xml:"width"`
	*RegisterPropertiesGroup
	Peripherals []*Peripheral `xml:"peripherals>peripheral"`
}

// Peripheral returns the peripheral with the given name or nil.
func (dev *Device) Peripheral(name string) *Peripheral {
	for _, p := range dev.Peripherals {
		if p.Name == name {
			return p
		}
	}
	return nil
}

type CPU struct {
	Name                string `xml:"name"`
	Revision            string `xml:"revision"`
	Endian              string `xml:"endian"`
	MPUPresent          bool   `xml:"mpuPresent"`
	FPUPresent          bool   `xml:"fpuPresent"`
	FPUDP               *bool  `xml:"fpuDP"`
	DSPPresent          *bool  `xml:"dspPresent"`
	IcachePresent       *bool  `xml:"icachePresent"`
	DcachePresent       *bool  `xml:"dcachePresent"`
	ITCMPresent         *bool  `xml:"itcmPresent"`
	DTCMPresent         *bool  `xml:"dtcmPresent"`
	VTORPresent         *bool  `xml:"vtorPresent"`
	NVICPrioBits        Uint   `xml:"nvicPrioBits"`
	VendorSystickConfig bool   `xml:"vendorSystickConfig"`
	DeviceNumInterrupts *Uint  `xml:"deviceNumInterrupts"`
	SAUNumRegions       *Uint  `xml:"sauNumRegions"`
}

type RegisterPropertiesGroup struct {
	Size       *Uint   `xml:"size"`
	Access     *string `xml:"access"`
	Protection *string `xml:"protection"`
	ResetValue *Uint64 `xml:"resetValue"`
	ResetMask  *Uint64 `xml:"resetMask"`
}

// Reset reports the reset value declared by the group. It can be called on a
// nil group.
func (g *RegisterPropertiesGroup) Reset() (uint64, bool) {
	if g == nil || g.ResetValue == nil {
		return 0, false
	}
	return uint64(*g.ResetValue), true
}

type Peripheral struct {
	DerivedFrom *string `xml:"derivedFrom,attr"`
	*DimElementGroup
	Name                string  `xml:"name"`
	Version             *string `xml:"version"`
	Description         *string `xml:"description"`
	AlternatePeripheral *string `xml:"alternatePeripheral"`
	GroupName           *string `xml:"groupName"`
	PrependToName       *string `xml:"prependToName"`
	AppendToName        *string `xml:"appendToName"`
	HeaderStructName    *string `xml:"headerStructName"`
	DisableCondition    *string `xml:"disableCondition"`
	BaseAddress         Uint64  `xml:"baseAddress"`
	*RegisterPropertiesGroup
	AddressBlock []*AddressBlock `xml:"addressBlock"`
	Interrupts   []*Interrupt    `xml:"interrupt"`
	Registers    Items           `xml:"registers"`
}

// IsArray reports whether p is a dim-repeated peripheral.
func (p *Peripheral) IsArray() bool {
	return p.DimElementGroup != nil && p.Dim > 0
}

type DimElementGroup struct {
	Dim          Uint    `xml:"dim"`
	DimIncrement Uint    `xml:"dimIncrement"`
	DimIndex     *string `xml:"dimIndex"`
	DimName      *string `xml:"dimName"`
}

var ErrBadDimIndex = errors.New("bad dimIndex")

// Indices returns the instance names listed by dimIndex or nil if dimIndex
// is not specified. The SVD forms 0-3, A-D and a,b,c are accepted.
func (g *DimElementGroup) Indices() ([]string, error) {
	if g == nil || g.DimIndex == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*g.DimIndex)
	if strings.IndexByte(s, ',') < 0 {
		i := strings.IndexByte(s, '-')
		if i <= 0 {
			if s == "" {
				return nil, errors.Wrapf(ErrBadDimIndex, "%q", s)
			}
			return []string{s}, nil
		}
		lo, hi := strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
		if a, err := strconv.Atoi(lo); err == nil {
			b, err := strconv.Atoi(hi)
			if err != nil || b < a {
				return nil, errors.Wrapf(ErrBadDimIndex, "%q", s)
			}
			idx := make([]string, 0, b-a+1)
			for n := a; n <= b; n++ {
				idx = append(idx, strconv.Itoa(n))
			}
			return idx, nil
		}
		if len(lo) != 1 || len(hi) != 1 || lo[0] > hi[0] {
			return nil, errors.Wrapf(ErrBadDimIndex, "%q", s)
		}
		idx := make([]string, 0, hi[0]-lo[0]+1)
		for c := lo[0]; c <= hi[0]; c++ {
			idx = append(idx, string(c))
		}
		return idx, nil
	}
	idx := strings.Split(s, ",")
	for i, n := range idx {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, errors.Wrapf(ErrBadDimIndex, "%q", s)
		}
		idx[i] = n
	}
	return idx, nil
}

type AddressBlock struct {
	Offset     Uint64  `xml:"offset"`
	Size       Uint64  `xml:"size"`
	Usage      string  `xml:"usage"`
	Protection *string `xml:"protection"`
}

type Interrupt struct {
	Name        string  `xml:"name"`
	Description *string `xml:"description"`
	Value       Int     `xml:"value"`
}

// Item is a single element of a register block: a register or a cluster.
// Exactly one of the two is non-nil.
type Item struct {
	Register *Register
	Cluster  *Cluster
}

// Items keeps registers and clusters in document order.
type Items []Item

func (s *Items) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	switch start.Name.Local {
	case "register":
		r := new(Register)
		if err := d.DecodeElement(r, &start); err != nil {
			return err
		}
		*s = append(*s, Item{Register: r})
	case "cluster":
		c := new(Cluster)
		if err := d.DecodeElement(c, &start); err != nil {
			return err
		}
		*s = append(*s, Item{Cluster: c})
	case "registers":
		for {
			tok, err := d.Token()
			if err != nil {
				return err
			}
			switch t := tok.(type) {
			case xml.StartElement:
				if err := s.UnmarshalXML(d, t); err != nil {
					return err
				}
			case xml.EndElement:
				return nil
			}
		}
	default:
		return d.Skip()
	}
	return nil
}

type Register struct {
	DerivedFrom *string `xml:"derivedFrom,attr"`
	DimElementGroup
	Name              string  `xml:"name"`
	DisplayName       *string `xml:"displayName"`
	Description       *string `xml:"description"`
	AlternateGroup    *string `xml:"alternateGroup"`
	AlternateRegister *string `xml:"alternateRegister"`
	AddressOffset     Uint64  `xml:"addressOffset"`
	*RegisterPropertiesGroup
	DataType            *string          `xml:"dataType"`
	ModifiedWriteValues *string          `xml:"modifiedWriteValues"`
	WriteConstraint     *WriteConstraint `xml:"writeConstraint"`
	ReadAction          *string          `xml:"readAction"`
	Fields              []*Field         `xml:"fields>field"`
}

type WriteConstraint struct {
	WriteAsRead         *bool  `xml:"writeAsRead"`
	UseEnumeratedValues *bool  `xml:"useEnumeratedValues"`
	Range               *Range `xml:"range"`
}

type Range struct {
	Minimum Uint64 `xml:"minimum"`
	Maximum Uint64 `xml:"maximum"`
}

type Field struct {
	DerivedFrom *string `xml:"derivedFrom,attr"`
	DimElementGroup
	Name        string  `xml:"name"`
	Description *string `xml:"description"`
	*BitRangeOffsetWidth
	*BitRangeLSBMSB
	BitRangePattern     *string             `xml:"bitRange"`
	Access              *string             `xml:"access"`
	ModifiedWriteValues *string             `xml:"modifiedWriteValues"`
	WriteConstraint     *WriteConstraint    `xml:"writeConstraint"`
	ReadAction          *string             `xml:"readAction"`
	EnumeratedValues    []*EnumeratedValues `xml:"enumeratedValues"`
}

type BitRangeOffsetWidth struct {
	BitOffset Uint  `xml:"bitOffset"`
	BitWidth  *Uint `xml:"bitWidth"`
}

type BitRangeLSBMSB struct {
	LSB Uint `xml:"lsb"`
	MSB Uint `xml:"msb"`
}

var ErrNoBitRange = errors.New("bit range not specified")

// BitRange returns the position and the width of the field in the register.
func (f *Field) BitRange() (lsb, width uint, err error) {
	switch {
	case f.BitRangeOffsetWidth != nil:
		lsb = uint(f.BitOffset)
		width = 1
		if w := f.BitWidth; w != nil {
			width = uint(*w)
		}
	case f.BitRangeLSBMSB != nil:
		lsb = uint(f.LSB)
		msb := uint(f.MSB)
		if msb < lsb {
			return 0, 0, errors.Errorf("%s: msb %d < lsb %d", f.Name, msb, lsb)
		}
		width = msb - lsb + 1
	case f.BitRangePattern != nil:
		s := strings.TrimSpace(*f.BitRangePattern)
		s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
		m, l, ok := strings.Cut(s, ":")
		if !ok {
			return 0, 0, errors.Errorf("%s: bad bitRange %q", f.Name, *f.BitRangePattern)
		}
		msb, err := strconv.ParseUint(strings.TrimSpace(m), 0, 0)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "%s: bitRange msb", f.Name)
		}
		l64, err := strconv.ParseUint(strings.TrimSpace(l), 0, 0)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "%s: bitRange lsb", f.Name)
		}
		if msb < l64 {
			return 0, 0, errors.Errorf("%s: bad bitRange %q", f.Name, *f.BitRangePattern)
		}
		lsb = uint(l64)
		width = uint(msb-l64) + 1
	default:
		return 0, 0, errors.Wrap(ErrNoBitRange, f.Name)
	}
	return lsb, width, nil
}

type EnumeratedValues struct {
	DerivedFrom     *string            `xml:"derivedFrom,attr"`
	Name            *string            `xml:"name"`
	HeaderEnumName  *string            `xml:"headerEnumName"`
	Usage           *string            `xml:"usage"`
	EnumeratedValue []*EnumeratedValue `xml:"enumeratedValue"`
}

type EnumeratedValue struct {
	Name        *string `xml:"name"`
	Description *string `xml:"description"`
	Value       *string `xml:"value"`
	IsDefault   *bool   `xml:"isDefault"`
}

var ErrNilValue = errors.New("nil value")

func (ev *EnumeratedValue) Val() (uint64, error) {
	if ev.Value == nil {
		return 0, ErrNilValue
	}
	s := strings.TrimSpace(*ev.Value)
	if s != "" && s[0] == '#' {
		// binary #1011 or binary #1x0x "do not care" format
		a := make([]byte, len(s)+1)
		a[0] = '0'
		a[1] = 'b'
		for i := 1; i < len(s); i++ {
			b := s[i]
			if b == 'x' {
				b = '0'
			}
			a[i+1] = b
		}
		s = string(a)
	}
	return strconv.ParseUint(s, 0, 64)
}

type Cluster struct {
	DerivedFrom *string `xml:"derivedFrom,attr"`
	DimElementGroup
	Name             string  `xml:"name"`
	Description      *string `xml:"description"`
	AlternateCluster *string `xml:"alternateCluster"`
	HeaderStructName *string `xml:"headerStructName"`
	AddressOffset    Uint64  `xml:"addressOffset"`
	*RegisterPropertiesGroup
	Items Items `xml:",any"`
}
