package docvane

import "github.com/docvane/docvane/model"

// ImageOptions controls whether embedded images are extracted to disk
// during a load, and how they are scaled.
type ImageOptions = model.ImageOptions

// defaultImageOptions returns the default options: extraction disabled.
func defaultImageOptions() ImageOptions {
	return ImageOptions{
		Enabled:   false,
		MaxWidth:  0, // unconstrained
		MaxHeight: 0,
		Scale:     0, // no explicit scaling
	}
}
