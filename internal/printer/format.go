package printer

type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// PageFormat is a Paper seen in a given orientation. Coordinates have
// their origin at the top left of the oriented page.
type PageFormat struct {
	Paper       Paper
	Orientation Orientation
}

func NewPageFormat(paper Paper) PageFormat {
	return PageFormat{Paper: paper, Orientation: Portrait}
}

func (f PageFormat) Width() float64 {
	if f.Orientation == Landscape {
		return f.Paper.Height
	}
	return f.Paper.Width
}

func (f PageFormat) Height() float64 {
	if f.Orientation == Landscape {
		return f.Paper.Width
	}
	return f.Paper.Height
}

func (f PageFormat) ImageableX() float64 {
	if f.Orientation == Landscape {
		return f.Paper.Height - (f.Paper.ImageableY + f.Paper.ImageableHeight)
	}
	return f.Paper.ImageableX
}

func (f PageFormat) ImageableY() float64 {
	if f.Orientation == Landscape {
		return f.Paper.ImageableX
	}
	return f.Paper.ImageableY
}

func (f PageFormat) ImageableWidth() float64 {
	if f.Orientation == Landscape {
		return f.Paper.ImageableHeight
	}
	return f.Paper.ImageableWidth
}

func (f PageFormat) ImageableHeight() float64 {
	if f.Orientation == Landscape {
		return f.Paper.ImageableWidth
	}
	return f.Paper.ImageableHeight
}

// WithPaper returns a copy of f printed on paper.
func (f PageFormat) WithPaper(paper Paper) PageFormat {
	f.Paper = paper
	return f
}
