package pptx

import (
	"archive/zip"
	"fmt"
	"strings"
)

const slideHeader = `<p:sld %s>
  <p:cSld%s>
    <p:spTree>
      <p:nvGrpSpPr>
        <p:cNvPr id="1" name=""/>
        <p:cNvGrpSpPr/>
        <p:nvPr/>
      </p:nvGrpSpPr>
      <p:grpSpPr>
        <a:xfrm>
          <a:off x="0" y="0"/>
          <a:ext cx="0" cy="0"/>
          <a:chOff x="0" y="0"/>
          <a:chExt cx="0" cy="0"/>
        </a:xfrm>
      </p:grpSpPr>
`

const slideFooter = `    </p:spTree>
  </p:cSld>
  <p:clrMapOvr>
    <a:masterClrMapping/>
  </p:clrMapOvr>
</p:sld>`

// slideXML accumulates the shape tree of one slide. Shape ids start at 2;
// id 1 is the tree's own group.
type slideXML struct {
	strings.Builder
	nextID int
}

func (w *PPTXWriter) writeSlide(zw *zip.Writer, slide *Slide, slideNum int) error {
	sx := &slideXML{nextID: 2}
	sx.WriteString(xmlDecl)
	nameAttr := ""
	if slide.name != "" {
		nameAttr = ` name="` + xmlEscape(slide.name) + `"`
	}
	fmt.Fprintf(sx, slideHeader, nsPML, nameAttr)

	for _, shape := range slide.shapes {
		switch s := shape.(type) {
		case *RichTextShape:
			sx.textBox(s)
		case *AutoShape:
			sx.autoShape(s)
		}
	}
	sx.WriteString(slideFooter)

	return writeRawXMLToZip(zw, fmt.Sprintf("ppt/slides/slide%d.xml", slideNum), sx.String())
}

func (w *PPTXWriter) writeSlideRels(zw *zip.Writer, slideNum int) error {
	rels := xmlRelationships{
		Xmlns: nsRelationships,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relTypeSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		},
	}
	return writeXMLToZip(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", slideNum), rels)
}

// openShape writes <p:sp> up to and including <p:spPr>. It only reads the
// shape.
func (sx *slideXML) openShape(b *BaseShape, outline *Border, defaultName, cNvSpPr, geometry string) {
	id := sx.nextID
	sx.nextID++
	name := b.name
	if name == "" {
		name = fmt.Sprintf("%s %d", defaultName, id)
	}
	fmt.Fprintf(sx, `      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="%s"/>
          %s
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="%s">
            <a:avLst/>
          </a:prstGeom>
`, id, xmlEscape(name), cNvSpPr, b.offsetX, b.offsetY, b.width, b.height, geometry)
	sx.fill(b.fill)
	sx.outline(outline)
	sx.WriteString("        </p:spPr>\n")
}

// autoShape writes a preset shape. Shapes without an outline of their own
// get a hidden one.
func (sx *slideXML) autoShape(s *AutoShape) {
	outline := s.border
	if outline == nil {
		outline = NewBorder()
	}
	sx.openShape(&s.BaseShape, outline, "Shape", "<p:cNvSpPr/>", string(s.shapeType))
	sx.WriteString("      </p:sp>\n")
}

func (sx *slideXML) textBox(s *RichTextShape) {
	sx.openShape(&s.BaseShape, s.border, "TextBox", `<p:cNvSpPr txBox="1"/>`, string(AutoShapeRectangle))
	wrap := "none"
	if s.wordWrap {
		wrap = "square"
	}
	fmt.Fprintf(sx, "        <p:txBody>\n          <a:bodyPr wrap=\"%s\" rtlCol=\"0\"/>\n          <a:lstStyle/>\n", wrap)
	for _, para := range s.paragraphs {
		sx.paragraph(para)
	}
	sx.WriteString("        </p:txBody>\n      </p:sp>\n")
}

func (sx *slideXML) paragraph(para *Paragraph) {
	var attrs string
	if a := para.alignment; a != nil {
		if a.Horizontal != "" {
			attrs += ` algn="` + string(a.Horizontal) + `"`
		}
		if a.RTL {
			attrs += ` rtl="1"`
		}
	}
	fmt.Fprintf(sx, "          <a:p>\n            <a:pPr%s/>\n", attrs)
	for _, tr := range para.runs {
		sx.run(tr)
	}
	sx.WriteString("          </a:p>\n")
}

// run writes one <a:r>. The typeface goes to both <a:latin> and <a:cs> so
// Arabic text uses the same face as Latin text.
func (sx *slideXML) run(tr *TextRun) {
	f := tr.font
	lang := tr.lang
	if lang == "" {
		lang = "en-US"
	}
	fmt.Fprintf(sx, `            <a:r>
              <a:rPr lang="%s" sz="%d" dirty="0"`, lang, f.Size*100)
	if f.Bold {
		sx.WriteString(` b="1"`)
	}
	sx.WriteString(">\n")
	if f.Color.ARGB != "" {
		fmt.Fprintf(sx, "              <a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill>\n", f.Color.RGB())
	}
	if f.Name != "" {
		face := xmlEscape(f.Name)
		fmt.Fprintf(sx, "              <a:latin typeface=\"%s\"/>\n              <a:cs typeface=\"%s\"/>\n", face, face)
	}
	fmt.Fprintf(sx, "              </a:rPr>\n              <a:t>%s</a:t>\n            </a:r>\n", xmlEscape(tr.text))
}

func (sx *slideXML) fill(f *Fill) {
	if f != nil && f.Type == FillSolid {
		fmt.Fprintf(sx, "          <a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill>\n", f.Color.RGB())
		return
	}
	sx.WriteString("          <a:noFill/>\n")
}

// outline writes <a:ln>. A nil border inherits the theme line and writes
// nothing; BorderNone hides the line.
func (sx *slideXML) outline(b *Border) {
	switch {
	case b == nil:
	case b.Style == BorderNone:
		sx.WriteString("          <a:ln><a:noFill/></a:ln>\n")
	default:
		fmt.Fprintf(sx, "          <a:ln w=\"%d\"><a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill></a:ln>\n",
			b.Width, b.Color.RGB())
	}
}
