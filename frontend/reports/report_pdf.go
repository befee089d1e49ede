package reports

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"

	"uploadlink/infrastructure/tracking"
)

// renderMonthlyReportPDF lays out the month's upload tracker as a printable
// calendar grid. The footer carries a code 128 barcode of the report
// reference so printed copies can be traced back to the month they cover.
func renderMonthlyReportPDF(period tracking.Period, weeks []tracking.Week, generatedAt time.Time) ([]byte, error) {
	reference := reportReference(period)
	barcodePNG, err := renderCode128PNG(reference, 1200, 220)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Upload Status Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 14, fmt.Sprintf("Upload Status - %s %d", period.Month, period.Year), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, "Generated: "+generatedAt.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pageW, _ := pdf.GetPageSize()
	margin := 14.0
	gridW := pageW - (2 * margin)
	cellW := gridW / 7
	headerH := 8.0
	cellH := 16.0

	pdf.SetX(margin)
	pdf.SetFont("Helvetica", "B", 11)
	for _, name := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		pdf.CellFormat(cellW, headerH, name, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(headerH)

	for _, week := range weeks {
		pdf.SetX(margin)
		for _, cell := range week {
			if cell.Blank() {
				pdf.SetFillColor(245, 245, 245)
				pdf.CellFormat(cellW, cellH, "", "1", 0, "C", true, 0, "")
				continue
			}
			setCategoryFill(pdf, cell.Category)
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(cellW, cellH, fmt.Sprintf("%d", cell.Day), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(cellH)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(margin)
	pdf.CellFormat(0, 6, "Green: upload confirmed. Red: upload pending or missed. Grey: not applicable.", "", 1, "L", false, 0, "")

	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	imageName := "report-barcode-" + reference
	pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
	imgW := 90.0
	imgH := 16.0
	x := (pageW - imgW) / 2
	y := pdf.GetY() + 4
	pdf.ImageOptions(imageName, x, y, imgW, imgH, false, opt, 0, "")
	pdf.SetY(y + imgH + 2)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, reference, "", 1, "C", false, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func reportReference(period tracking.Period) string {
	return fmt.Sprintf("UPL-%04d%02d", period.Year, int(period.Month))
}

func setCategoryFill(pdf *gofpdf.Fpdf, category tracking.Category) {
	switch category {
	case tracking.CategoryConfirmed:
		pdf.SetFillColor(198, 239, 206)
	case tracking.CategoryPendingOverdue:
		pdf.SetFillColor(255, 199, 206)
	default:
		pdf.SetFillColor(235, 235, 235)
	}
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}
	normalized := toNRGBA(scaled)
	var out bytes.Buffer
	if err := png.Encode(&out, normalized); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
