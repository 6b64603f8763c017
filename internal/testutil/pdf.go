// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// MinimalPDF builds a small but well-formed PDF with the given number of
// letter-sized pages. Each page fills a square so the content stream is not empty.
func MinimalPDF(pages int) ([]byte, error) {
	if pages < 1 {
		return nil, fmt.Errorf("page count must be positive: %d", pages)
	}

	var buf bytes.Buffer
	var offsets []int

	writeObject := func(num int, body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, 0, pages)
	for i := 0; i < pages; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+2*i))
	}

	writeObject(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObject(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages))

	for i := 0; i < pages; i++ {
		pageNum := 3 + 2*i
		contentNum := pageNum + 1
		content := fmt.Sprintf("0 0 1 rg %d 10 100 100 re f", 10+i)

		writeObject(pageNum, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> /Contents %d 0 R >>",
			contentNum))
		writeObject(contentNum, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefOffset)

	return buf.Bytes(), nil
}

// WritePDF writes a MinimalPDF with the given page count to path and fails the test on error
func WritePDF(t testing.TB, path string, pages int) string {
	t.Helper()

	data, err := MinimalPDF(pages)
	if err != nil {
		t.Fatalf("build pdf: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write pdf %s: %v", path, err)
	}
	return path
}
