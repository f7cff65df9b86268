// Package images extracts embedded media from a DOCX package into a
// temporary directory so callers can reference image files on disk.
package images

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/draw"

	"github.com/docvane/docvane/model"
)

// Extracted is one extracted image: the package relationship that referenced
// it and the file it was written to.
type Extracted struct {
	RelationshipID string
	Path           string
}

// Extractor writes a document's embedded images to a temporary directory.
// Close removes the directory and everything in it.
type Extractor struct {
	dir    string
	byID   map[string]string
	sorted []Extracted
}

// NewExtractor creates an extractor with a fresh temporary directory.
func NewExtractor() (*Extractor, error) {
	dir, err := os.MkdirTemp("", "docvane-images-")
	if err != nil {
		return nil, fmt.Errorf("creating image directory: %w", err)
	}
	return &Extractor{dir: dir, byID: make(map[string]string)}, nil
}

// Dir returns the directory extracted images are written to.
func (e *Extractor) Dir() string {
	return e.dir
}

// Close removes the temporary directory and all extracted images.
func (e *Extractor) Close() error {
	if e.dir == "" {
		return nil
	}
	err := os.RemoveAll(e.dir)
	e.dir = ""
	return err
}

type relationships struct {
	Relationships []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// ExtractFromDocx pulls every image relationship's target out of the package
// and writes it under the extractor's directory, resizing when the options
// ask for it. Non-image relationships are ignored.
func (e *Extractor) ExtractFromDocx(filename string, opts model.ImageOptions) error {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return fmt.Errorf("opening package: %w", err)
	}
	defer zr.Close()

	relData, err := readZipFile(&zr.Reader, "word/_rels/document.xml.rels")
	if err != nil {
		// No relationships part means no referenced images.
		return nil
	}

	var rels relationships
	if err := xml.Unmarshal(relData, &rels); err != nil {
		return fmt.Errorf("parsing relationships: %w", err)
	}

	for _, rel := range rels.Relationships {
		if !strings.HasSuffix(rel.Type, "/image") {
			continue
		}

		target := path.Join("word", rel.Target)
		data, err := readZipFile(&zr.Reader, target)
		if err != nil {
			continue
		}

		outPath := filepath.Join(e.dir, path.Base(rel.Target))
		if err := writeImage(outPath, data, opts); err != nil {
			return fmt.Errorf("extracting %s: %w", rel.Target, err)
		}
		e.byID[rel.ID] = outPath
	}

	e.buildSorted()
	return nil
}

// Path returns the extracted file for a relationship ID.
func (e *Extractor) Path(relationshipID string) (string, bool) {
	p, ok := e.byID[relationshipID]
	return p, ok
}

// Sorted returns the extracted images ordered by relationship ID, with the
// numeric part compared as a number so rId10 sorts after rId9.
func (e *Extractor) Sorted() []Extracted {
	return e.sorted
}

func (e *Extractor) buildSorted() {
	e.sorted = e.sorted[:0]
	for id, p := range e.byID {
		e.sorted = append(e.sorted, Extracted{RelationshipID: id, Path: p})
	}
	sort.Slice(e.sorted, func(i, j int) bool {
		a, b := e.sorted[i].RelationshipID, e.sorted[j].RelationshipID
		an, aerr := relNumber(a)
		bn, berr := relNumber(b)
		if aerr == nil && berr == nil && an != bn {
			return an < bn
		}
		return a < b
	})
}

// relNumber parses the numeric suffix of a relationship ID like "rId12".
func relNumber(id string) (int, error) {
	start := len(id)
	for start > 0 && id[start-1] >= '0' && id[start-1] <= '9' {
		start--
	}
	return strconv.Atoi(id[start:])
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// writeImage writes image bytes to disk, rescaling PNG and JPEG data when the
// options call for it. Formats the standard decoders do not know are copied
// through untouched.
func writeImage(outPath string, data []byte, opts model.ImageOptions) error {
	if !needsResize(opts) {
		return os.WriteFile(outPath, data, 0o644)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return os.WriteFile(outPath, data, 0o644)
	}

	bounds := img.Bounds()
	w, h := targetSize(bounds.Dx(), bounds.Dy(), opts)
	if w == bounds.Dx() && h == bounds.Dy() {
		return os.WriteFile(outPath, data, 0o644)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	switch format {
	case "jpeg":
		return jpeg.Encode(out, dst, &jpeg.Options{Quality: 90})
	default:
		return png.Encode(out, dst)
	}
}

func needsResize(opts model.ImageOptions) bool {
	return (opts.Scale > 0 && opts.Scale != 1) || opts.MaxWidth > 0 || opts.MaxHeight > 0
}

// targetSize applies the explicit scale first, then shrinks further to fit
// the max bounds while keeping aspect ratio. Images are never enlarged by
// the max bounds.
func targetSize(w, h int, opts model.ImageOptions) (int, int) {
	fw, fh := float64(w), float64(h)

	if opts.Scale > 0 && opts.Scale != 1 {
		fw *= opts.Scale
		fh *= opts.Scale
	}

	if opts.MaxWidth > 0 && fw > float64(opts.MaxWidth) {
		ratio := float64(opts.MaxWidth) / fw
		fw *= ratio
		fh *= ratio
	}
	if opts.MaxHeight > 0 && fh > float64(opts.MaxHeight) {
		ratio := float64(opts.MaxHeight) / fh
		fw *= ratio
		fh *= ratio
	}

	tw, th := int(fw+0.5), int(fh+0.5)
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	return tw, th
}
