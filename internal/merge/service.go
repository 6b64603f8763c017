package merge

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ytget/pdf-merger/internal/model"
)

// Service handles merge operations
type Service struct {
	engine      Engine
	mutex       sync.Mutex
	status      model.MergeStatus
	dividerPage bool
	onUpdate    func(*model.MergeTask) // callback for UI updates
}

// NewService creates a new merge service around a PDF engine
func NewService(engine Engine) *Service {
	return &Service{
		engine: engine,
		status: model.MergeStatusIdle,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.MergeTask)) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.onUpdate = callback
}

// SetDividerPage configures whether a blank page separates merged inputs
func (s *Service) SetDividerPage(enabled bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.dividerPage = enabled
}

// SetValidationMode forwards the validation mode to engines that support it
func (s *Service) SetValidationMode(mode string) {
	if engine, ok := s.engine.(configurableEngine); ok {
		engine.SetValidationMode(mode)
	}
}

// Status returns the current service phase
func (s *Service) Status() model.MergeStatus {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.status
}

// PageCount returns the number of pages in a PDF file
func (s *Service) PageCount(path string) (int, error) {
	if s.engine == nil {
		return 0, ErrEngineUnavailable
	}
	return s.engine.PageCount(path)
}

// Merge concatenates files in order into destination.
//
// An empty file list fails with ErrNoFilesSelected. An empty destination means
// the user cancelled the save dialog: nothing happens and (nil, nil) is returned.
// Both checks run before any I/O.
func (s *Service) Merge(ctx context.Context, files []string, destination string) (*model.MergeTask, error) {
	if len(files) == 0 {
		log.Printf("merge rejected: no files selected")
		return nil, ErrNoFilesSelected
	}
	if destination == "" {
		log.Printf("merge cancelled: no destination chosen")
		return nil, nil
	}

	s.mutex.Lock()
	if s.status.IsActive() {
		s.mutex.Unlock()
		return nil, ErrMergeInProgress
	}
	s.status = model.MergeStatusValidating
	req := model.NewMergeRequest(files, destination)
	req.DividerPage = s.dividerPage
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.status = model.MergeStatusIdle
		s.mutex.Unlock()
	}()

	task := model.NewMergeTask(req)
	s.notifyUpdate(task)

	log.Printf("merge %s: %d files -> %s", req.ID, len(req.Files), req.Destination)

	if s.engine == nil {
		return task, s.fail(task, &MergeError{Kind: KindEngineUnavailable, Err: ErrEngineUnavailable})
	}

	s.setStatus(task, model.MergeStatusMerging)

	if err := s.engine.Concatenate(ctx, req); err != nil {
		return task, s.fail(task, classify(err))
	}

	if pages, err := s.engine.PageCount(req.Destination); err == nil {
		task.PageCount = pages
	} else {
		log.Printf("merge %s: could not count output pages: %v", req.ID, err)
	}

	task.FinishedAt = time.Now()
	s.setStatus(task, model.MergeStatusSucceeded)

	log.Printf("merge %s succeeded in %s (%d pages)", req.ID, task.Duration(), task.PageCount)
	return task, nil
}

// fail moves task to the failed state and returns err for the caller
func (s *Service) fail(task *model.MergeTask, err *MergeError) error {
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.setStatus(task, model.MergeStatusFailed)

	log.Printf("merge %s failed (%s): %v", task.Request.ID, err.Kind, err.Err)
	return fmt.Errorf("merge into %s: %w", task.Destination(), err)
}

// setStatus records the phase on both the task and the service, then notifies
func (s *Service) setStatus(task *model.MergeTask, status model.MergeStatus) {
	s.mutex.Lock()
	task.Status = status
	if status.IsActive() {
		s.status = status
	}
	s.mutex.Unlock()

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.MergeTask) {
	s.mutex.Lock()
	callback := s.onUpdate
	s.mutex.Unlock()

	if callback != nil {
		callback(task)
	}
}
