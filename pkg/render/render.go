package render

import (
	"fmt"
	"io"
	"strings"
)

// Renderer turns a chart into an artifact
type Renderer interface {
	Render(w io.Writer, chart Chart) error
	// Extension is the file extension of the artifact, without the dot
	Extension() string
	ContentType() string
}

var renderers = map[string]func() Renderer{
	"png":  func() Renderer { return NewPNGRenderer(DefaultUnit) },
	"txt":  NewTextRenderer,
	"xlsx": NewWorkbookRenderer,
}

// Formats lists the available artifact formats
func Formats() []string {
	return []string{"png", "txt", "xlsx"}
}

func NewRenderer(format string) (Renderer, error) {
	constructor, ok := renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (valid formats are %v)", format, Formats())
	}
	return constructor(), nil
}
