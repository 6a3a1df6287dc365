package utils

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"twiginvoice/models"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Renderer produces the final invoice document from templated data.
type Renderer interface {
	Render(data models.InvoicePDFData) ([]byte, error)
}

// ChromeRenderer renders the HTML invoice template to PDF through
// headless Chrome.
type ChromeRenderer struct {
	TemplateDir string
}

func (cr *ChromeRenderer) Render(data models.InvoicePDFData) ([]byte, error) {
	tmpl, err := template.ParseFiles(filepath.Join(cr.TemplateDir, "invoice_template.html"))
	if err != nil {
		return nil, fmt.Errorf("load invoice template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("render invoice template: %w", err)
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		</style>
		</head>
		<body>` + body.String() + `</body></html>`

	// Chrome prints from a file URL, so write the page out first.
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "invoice_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print invoice PDF: %w", err)
	}

	return pdfBuf, nil
}
