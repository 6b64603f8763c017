package merge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/ytget/pdf-merger/internal/model"
)

// Validation modes accepted by the engine
const (
	ValidationStrict  = "strict"
	ValidationRelaxed = "relaxed"
)

// TempSuffix marks partially written merge output
const TempSuffix = ".tmp"

// PDFCPUEngine concatenates PDFs with pdfcpu.
// Output is written to a temporary sibling file and renamed into place, so the
// destination is either complete or untouched.
type PDFCPUEngine struct {
	mutex          sync.RWMutex
	validationMode string
}

// NewPDFCPUEngine creates an engine with the given validation mode.
// Unknown modes fall back to relaxed.
func NewPDFCPUEngine(validationMode string) *PDFCPUEngine {
	// Keep pdfcpu from creating its user config directory.
	api.DisableConfigDir()

	e := &PDFCPUEngine{}
	e.SetValidationMode(validationMode)
	return e
}

// SetValidationMode switches between strict and relaxed validation.
// Unknown modes fall back to relaxed.
func (e *PDFCPUEngine) SetValidationMode(mode string) {
	if mode != ValidationStrict {
		mode = ValidationRelaxed
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.validationMode = mode
}

// ValidationMode returns the configured validation mode
func (e *PDFCPUEngine) ValidationMode() string {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.validationMode
}

// newConfiguration returns a fresh pdfcpu configuration; pdfcpu mutates it per command
func (e *PDFCPUEngine) newConfiguration() *pdfmodel.Configuration {
	conf := pdfmodel.NewDefaultConfiguration()
	if e.ValidationMode() == ValidationStrict {
		conf.ValidationMode = pdfmodel.ValidationStrict
	} else {
		conf.ValidationMode = pdfmodel.ValidationRelaxed
	}
	return conf
}

// Concatenate merges req.Files in order into req.Destination
func (e *PDFCPUEngine) Concatenate(ctx context.Context, req model.MergeRequest) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &MergeError{Kind: KindInvalidInput, Err: fmt.Errorf("pdf engine panic: %v", r)}
		}
	}()

	for _, input := range req.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.validateInput(input); err != nil {
			return err
		}
	}

	if err := checkDestinationDir(req.Destination); err != nil {
		return err
	}

	tmpPath := fmt.Sprintf("%s.%s%s", req.Destination, uuid.NewString(), TempSuffix)

	if len(req.Files) == 1 {
		// Nothing to concatenate; the validated input is the output.
		if err := copyFile(req.Files[0], tmpPath); err != nil {
			removeTemp(tmpPath)
			return classifyEngineError(err, tmpPath)
		}
	} else if err := api.MergeCreateFile(req.Files, tmpPath, req.DividerPage, e.newConfiguration()); err != nil {
		removeTemp(tmpPath)
		return classifyEngineError(err, tmpPath)
	}

	if err := os.Rename(tmpPath, req.Destination); err != nil {
		removeTemp(tmpPath)
		return &MergeError{Kind: KindWriteFailure, Path: req.Destination, Err: err}
	}

	return nil
}

// PageCount returns the number of pages in a PDF file
func (e *PDFCPUEngine) PageCount(path string) (count int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("count pages of %s: %v", path, r)
		}
	}()

	count, err = api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("count pages of %s: %w", path, err)
	}
	return count, nil
}

// validateInput checks that input is a regular file pdfcpu accepts
func (e *PDFCPUEngine) validateInput(input string) error {
	info, err := os.Stat(input)
	if err != nil {
		return &MergeError{Kind: KindInvalidInput, Path: input, Err: err}
	}
	if !info.Mode().IsRegular() {
		return &MergeError{Kind: KindInvalidInput, Path: input, Err: errors.New("not a regular file")}
	}

	if err := api.ValidateFile(input, e.newConfiguration()); err != nil {
		return &MergeError{Kind: KindInvalidInput, Path: input, Err: err}
	}
	return nil
}

// checkDestinationDir makes sure the output can be created next to destination
func checkDestinationDir(destination string) error {
	dir := filepath.Dir(destination)

	info, err := os.Stat(dir)
	if err != nil {
		return &MergeError{Kind: KindWriteFailure, Path: destination, Err: err}
	}
	if !info.IsDir() {
		return &MergeError{Kind: KindWriteFailure, Path: destination, Err: fmt.Errorf("%s is not a directory", dir)}
	}
	return nil
}

// classifyEngineError separates output failures from input failures
func classifyEngineError(err error, tmpPath string) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Path == tmpPath {
		return &MergeError{Kind: KindWriteFailure, Path: tmpPath, Err: err}
	}
	if errors.Is(err, fs.ErrPermission) {
		return &MergeError{Kind: KindWriteFailure, Err: err}
	}
	return &MergeError{Kind: KindInvalidInput, Err: err}
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// removeTemp deletes a partial output file
func removeTemp(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("failed to remove temporary file %s: %v", path, err)
	}
}
