package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
)

// XML namespace constants
const (
	nsRelationships  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsOfficeDocRels  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsDCTerms        = "http://purl.org/dc/terms/"
	nsDC             = "http://purl.org/dc/elements/1.1/"
	nsCoreProperties = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtProperties  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsXSI            = "http://www.w3.org/2001/XMLSchema-instance"

	relTypeSlide       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeSlideMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relTypeSlideLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTypeTheme       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relTypePresProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	relTypeViewProps   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	relTypeTableStyles = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"
	relTypeOfficeDoc   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProps   = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtProps    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"

	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideMaster  = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout  = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps    = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps    = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles  = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps    = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtProps     = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctRels         = "application/vnd.openxmlformats-package.relationships+xml"
)

// xmlDecl prefixes every raw part.
const xmlDecl = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// nsPML is the namespace triple shared by every PresentationML root element.
var nsPML = fmt.Sprintf(`xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"`, nsDrawingML, nsOfficeDocRels, nsPresentationML)

// createZipEntry adds a deflated entry with a zero modification time so that
// identical presentations produce identical archives.
func createZipEntry(zw *zip.Writer, path string) (interface{ Write([]byte) (int, error) }, error) {
	fw, err := zw.CreateHeader(&zip.FileHeader{Name: path, Method: zip.Deflate})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s in zip: %w", path, err)
	}
	return fw, nil
}

func writeXMLToZip(zw *zip.Writer, path string, v interface{}) error {
	fw, err := createZipEntry(zw, path)
	if err != nil {
		return err
	}
	if _, err := fw.Write([]byte(xml.Header)); err != nil {
		return err
	}
	var b strings.Builder
	enc := xml.NewEncoder(&b)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	_, err = fw.Write([]byte(b.String()))
	return err
}

func writeRawXMLToZip(zw *zip.Writer, path string, content string) error {
	fw, err := createZipEntry(zw, path)
	if err != nil {
		return err
	}
	_, err = fw.Write([]byte(content))
	return err
}

// --- Content Types ---

type xmlContentTypes struct {
	XMLName   xml.Name      `xml:"Types"`
	Xmlns     string        `xml:"xmlns,attr"`
	Defaults  []xmlDefault  `xml:"Default"`
	Overrides []xmlOverride `xml:"Override"`
}

type xmlDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

func (w *PPTXWriter) writeContentTypes(zw *zip.Writer) error {
	ct := xmlContentTypes{
		Xmlns: nsContentTypes,
		Defaults: []xmlDefault{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []xmlOverride{
			{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
			{PartName: "/ppt/presProps.xml", ContentType: ctPresProps},
			{PartName: "/ppt/viewProps.xml", ContentType: ctViewProps},
			{PartName: "/ppt/tableStyles.xml", ContentType: ctTableStyles},
			{PartName: "/ppt/slideMasters/slideMaster1.xml", ContentType: ctSlideMaster},
			{PartName: "/ppt/slideLayouts/slideLayout1.xml", ContentType: ctSlideLayout},
			{PartName: "/ppt/theme/theme1.xml", ContentType: ctTheme},
			{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
			{PartName: "/docProps/app.xml", ContentType: ctExtProps},
		},
	}

	for i := range w.presentation.slides {
		ct.Overrides = append(ct.Overrides, xmlOverride{
			PartName:    fmt.Sprintf("/ppt/slides/slide%d.xml", i+1),
			ContentType: ctSlide,
		})
	}

	return writeXMLToZip(zw, "[Content_Types].xml", ct)
}

// --- Relationships ---

type xmlRelationships struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Xmlns         string            `xml:"xmlns,attr"`
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

func (w *PPTXWriter) writeRootRels(zw *zip.Writer) error {
	rels := xmlRelationships{
		Xmlns: nsRelationships,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relTypeOfficeDoc, Target: "ppt/presentation.xml"},
			{ID: "rId2", Type: relTypeCoreProps, Target: "docProps/core.xml"},
			{ID: "rId3", Type: relTypeExtProps, Target: "docProps/app.xml"},
		},
	}
	return writeXMLToZip(zw, "_rels/.rels", rels)
}

// presentationRelID returns the relationship id of slide n (1-based) in
// ppt/_rels/presentation.xml.rels. rId1 is the slide master.
func presentationRelID(n int) string {
	return fmt.Sprintf("rId%d", n+1)
}

func (w *PPTXWriter) writePresentationRels(zw *zip.Writer) error {
	rels := xmlRelationships{Xmlns: nsRelationships}

	rels.Relationships = append(rels.Relationships, xmlRelationship{
		ID:     "rId1",
		Type:   relTypeSlideMaster,
		Target: "slideMasters/slideMaster1.xml",
	})
	for i := range w.presentation.slides {
		rels.Relationships = append(rels.Relationships, xmlRelationship{
			ID:     presentationRelID(i + 1),
			Type:   relTypeSlide,
			Target: fmt.Sprintf("slides/slide%d.xml", i+1),
		})
	}

	relIdx := len(w.presentation.slides) + 2
	for _, r := range []struct{ typ, target string }{
		{relTypePresProps, "presProps.xml"},
		{relTypeViewProps, "viewProps.xml"},
		{relTypeTableStyles, "tableStyles.xml"},
		{relTypeTheme, "theme/theme1.xml"},
	} {
		rels.Relationships = append(rels.Relationships, xmlRelationship{
			ID:     fmt.Sprintf("rId%d", relIdx),
			Type:   r.typ,
			Target: r.target,
		})
		relIdx++
	}

	return writeXMLToZip(zw, "ppt/_rels/presentation.xml.rels", rels)
}

// --- Document properties ---

func (w *PPTXWriter) writeAppProperties(zw *zip.Writer) error {
	props := w.presentation.properties
	content := fmt.Sprintf(xmlDecl+`<Properties xmlns="%s" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">
  <Application>%s</Application>
  <PresentationFormat>%s</PresentationFormat>
  <Company>%s</Company>
  <Slides>%d</Slides>
</Properties>`, nsExtProperties,
		xmlEscape(props.Application),
		presentationFormat(w.presentation.layout),
		xmlEscape(props.Company),
		len(w.presentation.slides))
	return writeRawXMLToZip(zw, "docProps/app.xml", content)
}

func presentationFormat(l *DocumentLayout) string {
	switch l.Name {
	case LayoutScreen16x9:
		return "Widescreen"
	case LayoutScreen4x3:
		return "On-screen Show (4:3)"
	default:
		return "Custom"
	}
}

func (w *PPTXWriter) writeCoreProperties(zw *zip.Writer) error {
	props := w.presentation.properties
	content := fmt.Sprintf(xmlDecl+`<cp:coreProperties xmlns:cp="%s" xmlns:dc="%s" xmlns:dcterms="%s" xmlns:xsi="%s">
  <dc:title>%s</dc:title>
  <dc:subject>%s</dc:subject>
  <dc:creator>%s</dc:creator>
  <cp:keywords>%s</cp:keywords>
  <dc:description>%s</dc:description>
  <cp:lastModifiedBy>%s</cp:lastModifiedBy>
  <dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>
  <dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>
</cp:coreProperties>`,
		nsCoreProperties, nsDC, nsDCTerms, nsXSI,
		xmlEscape(props.Title),
		xmlEscape(props.Subject),
		xmlEscape(props.Creator),
		xmlEscape(props.Keywords),
		xmlEscape(props.Description),
		xmlEscape(props.LastModifiedBy),
		props.Created.UTC().Format("2006-01-02T15:04:05Z"),
		props.Modified.UTC().Format("2006-01-02T15:04:05Z"),
	)
	return writeRawXMLToZip(zw, "docProps/core.xml", content)
}

// --- Presentation part ---

const (
	slideMasterID = 2147483648
	slideLayoutID = 2147483649
	firstSlideID  = 256
)

func (w *PPTXWriter) writePresentation(zw *zip.Writer) error {
	var b strings.Builder
	b.WriteString(xmlDecl)
	fmt.Fprintf(&b, `<p:presentation %s saveSubsetFonts="1">`, nsPML)
	fmt.Fprintf(&b, `<p:sldMasterIdLst><p:sldMasterId id="%d" r:id="rId1"/></p:sldMasterIdLst>`, slideMasterID)
	if len(w.presentation.slides) > 0 {
		b.WriteString(`<p:sldIdLst>`)
		for i := range w.presentation.slides {
			fmt.Fprintf(&b, `<p:sldId id="%d" r:id="%s"/>`, firstSlideID+i, presentationRelID(i+1))
		}
		b.WriteString(`</p:sldIdLst>`)
	}
	layout := w.presentation.layout
	if typ := layout.sldSzType(); typ != "custom" {
		fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d" type="%s"/>`, layout.CX, layout.CY, typ)
	} else {
		fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, layout.CX, layout.CY)
	}
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return writeRawXMLToZip(zw, "ppt/presentation.xml", b.String())
}

func (w *PPTXWriter) writePresProps(zw *zip.Writer) error {
	return writeRawXMLToZip(zw, "ppt/presProps.xml",
		xmlDecl+fmt.Sprintf(`<p:presentationPr %s/>`, nsPML))
}

func (w *PPTXWriter) writeViewProps(zw *zip.Writer) error {
	return writeRawXMLToZip(zw, "ppt/viewProps.xml", xmlDecl+fmt.Sprintf(`<p:viewPr %s>`+
		`<p:normalViewPr><p:restoredLeft sz="15620"/><p:restoredTop sz="94660"/></p:normalViewPr>`+
		`<p:gridSpacing cx="76200" cy="76200"/>`+
		`</p:viewPr>`, nsPML))
}

func (w *PPTXWriter) writeTableStyles(zw *zip.Writer) error {
	return writeRawXMLToZip(zw, "ppt/tableStyles.xml", xmlDecl+fmt.Sprintf(
		`<a:tblStyleLst xmlns:a="%s" def="{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"/>`, nsDrawingML))
}

// emptySpTree is the shape tree of the master and the blank layout.
const emptySpTree = `<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr></p:spTree>`

func (w *PPTXWriter) writeSlideMaster(zw *zip.Writer) error {
	content := xmlDecl + fmt.Sprintf(`<p:sldMaster %s>`, nsPML) +
		`<p:cSld><p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg>` + emptySpTree + `</p:cSld>` +
		`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
		fmt.Sprintf(`<p:sldLayoutIdLst><p:sldLayoutId id="%d" r:id="rId1"/></p:sldLayoutIdLst>`, slideLayoutID) +
		`</p:sldMaster>`
	if err := writeRawXMLToZip(zw, "ppt/slideMasters/slideMaster1.xml", content); err != nil {
		return err
	}
	rels := xmlRelationships{
		Xmlns: nsRelationships,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relTypeSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
			{ID: "rId2", Type: relTypeTheme, Target: "../theme/theme1.xml"},
		},
	}
	return writeXMLToZip(zw, "ppt/slideMasters/_rels/slideMaster1.xml.rels", rels)
}

func (w *PPTXWriter) writeSlideLayout(zw *zip.Writer) error {
	content := xmlDecl + fmt.Sprintf(`<p:sldLayout %s type="blank" preserve="1">`, nsPML) +
		`<p:cSld name="Blank">` + emptySpTree + `</p:cSld>` +
		`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
		`</p:sldLayout>`
	if err := writeRawXMLToZip(zw, "ppt/slideLayouts/slideLayout1.xml", content); err != nil {
		return err
	}
	rels := xmlRelationships{
		Xmlns: nsRelationships,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relTypeSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
		},
	}
	return writeXMLToZip(zw, "ppt/slideLayouts/_rels/slideLayout1.xml.rels", rels)
}

func (w *PPTXWriter) writeTheme(zw *zip.Writer) error {
	var b strings.Builder
	b.WriteString(xmlDecl)
	fmt.Fprintf(&b, `<a:theme xmlns:a="%s" name="Office Theme"><a:themeElements>`, nsDrawingML)

	b.WriteString(`<a:clrScheme name="Office">`)
	b.WriteString(`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>`)
	b.WriteString(`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>`)
	for _, c := range []struct{ name, rgb string }{
		{"dk2", "44546A"}, {"lt2", "E7E6E6"},
		{"accent1", "4472C4"}, {"accent2", "ED7D31"}, {"accent3", "A5A5A5"},
		{"accent4", "FFC000"}, {"accent5", "5B9BD5"}, {"accent6", "70AD47"},
		{"hlink", "0563C1"}, {"folHlink", "954F72"},
	} {
		fmt.Fprintf(&b, `<a:%s><a:srgbClr val="%s"/></a:%s>`, c.name, c.rgb, c.name)
	}
	b.WriteString(`</a:clrScheme>`)

	fontSet := fmt.Sprintf(`<a:latin typeface="%[1]s"/><a:ea typeface=""/><a:cs typeface="%[1]s"/>`, DefaultFontName)
	fmt.Fprintf(&b, `<a:fontScheme name="Office"><a:majorFont>%s</a:majorFont><a:minorFont>%s</a:minorFont></a:fontScheme>`, fontSet, fontSet)

	solid := `<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`
	b.WriteString(`<a:fmtScheme name="Office"><a:fillStyleLst>`)
	b.WriteString(strings.Repeat(solid, 3))
	b.WriteString(`</a:fillStyleLst><a:lnStyleLst>`)
	for _, width := range []int{6350, 12700, 19050} {
		fmt.Fprintf(&b, `<a:ln w="%d" cap="flat" cmpd="sng" algn="ctr">%s<a:prstDash val="solid"/></a:ln>`, width, solid)
	}
	b.WriteString(`</a:lnStyleLst><a:effectStyleLst>`)
	b.WriteString(strings.Repeat(`<a:effectStyle><a:effectLst/></a:effectStyle>`, 3))
	b.WriteString(`</a:effectStyleLst><a:bgFillStyleLst>`)
	b.WriteString(strings.Repeat(solid, 3))
	b.WriteString(`</a:bgFillStyleLst></a:fmtScheme>`)

	b.WriteString(`</a:themeElements><a:objectDefaults/><a:extraClrSchemeLst/></a:theme>`)
	return writeRawXMLToZip(zw, "ppt/theme/theme1.xml", b.String())
}

// xmlEscape escapes special XML characters using the standard library.
func xmlEscape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
