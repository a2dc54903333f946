// seehuhn.de/go/dux - glyph geometry and page layout for the dux script
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"bytes"

	"golang.org/x/text/language"
	"seehuhn.de/go/icc"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/dux/internal/buildinfo"
	"seehuhn.de/go/dux/internal/pdf"
)

// basicInfo is the part of the XMP basic namespace written by the device.
type basicInfo struct {
	_           xmp.Namespace `xmp:"http://ns.adobe.com/xap/1.0/"`
	_           xmp.Prefix    `xmp:"xmp"`
	CreatorTool xmp.AgentName
}

// pdfInfo is the part of the Adobe PDF namespace written by the device.
type pdfInfo struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Producer xmp.AgentName
}

// metadata returns the XMP packet describing the document.
func (d *Device) metadata() (*xmp.Packet, error) {
	tool := buildinfo.Short("dux")

	packet := xmp.NewPacket()
	dc := &xmp.DublinCore{}
	if d.Title != "" {
		dc.Title.Set(language.MustParse("x-default"), d.Title)
	}
	basic := &basicInfo{CreatorTool: xmp.NewAgentName(tool)}
	info := &pdfInfo{Producer: xmp.NewAgentName(tool)}
	err := packet.Set(dc, basic, info)
	if err != nil {
		return nil, err
	}
	return packet, nil
}

// writeMetadata writes the XMP metadata stream for the catalog.
func (d *Device) writeMetadata() (*pdf.Reference, error) {
	packet, err := d.metadata()
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	err = packet.Write(buf, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return nil, err
	}
	return d.out.WriteIndirect(&pdf.Stream{
		Dict: pdf.Dict{
			"Type":    pdf.Name("Metadata"),
			"Subtype": pdf.Name("XML"),
		},
		Data: buf.Bytes(),
	}, nil)
}

// writeOutputIntents writes the sRGB output intent for the catalog.
// All colours on the pages are given as DeviceRGB values.
func (d *Device) writeOutputIntents() (pdf.Array, error) {
	profile := icc.SRGBv2Profile
	p, err := icc.Decode(profile)
	if err != nil {
		return nil, err
	}

	stm, err := pdf.FlateStream(profile)
	if err != nil {
		return nil, err
	}
	stm.Dict["N"] = pdf.Integer(p.ColorSpace.NumComponents())
	profileRef, err := d.out.WriteIndirect(stm, nil)
	if err != nil {
		return nil, err
	}

	intent := pdf.Dict{
		"Type":                      pdf.Name("OutputIntent"),
		"S":                         pdf.Name("GTS_PDFA1"),
		"OutputConditionIdentifier": pdf.String("sRGB IEC61966-2.1"),
		"Info":                      pdf.String("sRGB IEC61966-2.1"),
		"DestOutputProfile":         profileRef,
	}
	return pdf.Array{intent}, nil
}
