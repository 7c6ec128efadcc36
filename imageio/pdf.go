package imageio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nickjwhite/gofpdf"

	"github.com/gogpu/imgproc/image"
)

// EncodePDF writes a PDF with one page per image. By default each page has
// the pixel size of its image at one point per pixel; WithPDFPageSize fixes
// the page size and fits every image inside it.
func EncodePDF(w io.Writer, imgs []*image.Image[uint8], opts ...Option) error {
	if len(imgs) == 0 {
		return fmt.Errorf("%w: pdf: no images", ErrEncode)
	}
	o := collect(opts)

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	for i, img := range imgs {
		var buf bytes.Buffer
		if err := Encode(&buf, img, PNG); err != nil {
			return fmt.Errorf("pdf page %d: %w", i+1, err)
		}

		iw, ih := float64(img.Width()), float64(img.Height())
		pw, ph := o.pageWidth, o.pageHeight
		if pw == 0 {
			pw, ph = iw, ih
		}
		s := min(pw/iw, ph/ih)
		dw, dh := iw*s, ih*s

		name := fmt.Sprintf("page%d", i)
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: pw, Ht: ph})
		pdf.RegisterImageOptionsReader(name, imgOpts, &buf)
		pdf.ImageOptions(name, (pw-dw)/2, (ph-dh)/2, dw, dh, false, imgOpts, 0, "")
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("%w: pdf page %d: %w", ErrEncode, i+1, err)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: pdf: %w", ErrEncode, err)
	}
	return nil
}

// WritePDF is EncodePDF into the file at path.
func WritePDF(path string, imgs []*image.Image[uint8], opts ...Option) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodePDF(w, imgs, opts...)
	})
}
