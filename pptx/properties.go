package pptx

import "time"

// DocumentProperties are written to docProps/core.xml and docProps/app.xml.
type DocumentProperties struct {
	Title, Subject, Description, Keywords string
	Creator, LastModifiedBy               string
	Company, Application                  string
	Created, Modified                     time.Time
}

// NewDocumentProperties stamps the properties with the current time, to the
// second. Reproducible output needs Created and Modified overwritten.
func NewDocumentProperties() *DocumentProperties {
	now := time.Now().UTC().Truncate(time.Second)
	return &DocumentProperties{
		Creator:        "seradeck",
		LastModifiedBy: "seradeck",
		Application:    "Microsoft Office PowerPoint",
		Created:        now,
		Modified:       now,
	}
}

// Slide sizes known to PowerPoint.
const (
	LayoutScreen4x3  = "screen4x3"
	LayoutScreen16x9 = "screen16x9"
)

// DocumentLayout is the page size in EMU.
type DocumentLayout struct {
	CX, CY int64
	Name   string
}

var layoutSizes = map[string][2]int64{
	LayoutScreen4x3:  {9144000, 6858000},
	LayoutScreen16x9: {12192000, 6858000},
}

// NewDocumentLayout returns a 10 x 7.5 inch page.
func NewDocumentLayout() *DocumentLayout {
	l := &DocumentLayout{}
	l.SetLayout(LayoutScreen4x3)
	return l
}

// SetLayout switches to a named page size. Unknown names keep the current
// dimensions.
func (dl *DocumentLayout) SetLayout(name string) {
	dl.Name = name
	if size, ok := layoutSizes[name]; ok {
		dl.CX, dl.CY = size[0], size[1]
	}
}

// sldSzType returns the <p:sldSz type> value. Only 4:3 has a preset type
// name; everything else is "custom".
func (dl *DocumentLayout) sldSzType() string {
	if dl.Name == LayoutScreen4x3 {
		return LayoutScreen4x3
	}
	return "custom"
}
