package client

import (
	"context"
	"errors"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
)

// Per-file upload states.
const (
	StateIdle      = "idle"
	StateUploading = "uploading"
	StateDone      = "done"
	StateError     = "error"
)

// File is one local file to upload.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// FileResult tracks one file through the idle → uploading → done|error
// state machine. Each result is owned exclusively by its file's upload
// goroutine until Run returns.
type FileResult struct {
	Name     string
	Target   Target
	State    string
	Progress int
	Err      error
}

// Report is the outcome of a full upload-ingest-status run.
type Report struct {
	Files []FileResult
	JobID string
	Job   JobStatus
}

// RunOptions tunes a Run.
type RunOptions struct {
	// PollInterval between status polls; defaults to one second.
	PollInterval time.Duration
	// OnProgress receives per-file transfer percentages.
	OnProgress func(index, pct int)
	// OnStatus receives each successfully polled job status.
	OnStatus func(JobStatus)
}

// Run drives the whole lifecycle: request presigned targets, upload every
// file concurrently with independent progress tracking, start an ingest job
// for the files that uploaded successfully, and poll the job to completion.
// If no file succeeds, no ingest call is made and Report.JobID stays empty.
func (c *Client) Run(ctx context.Context, files []File, opts RunOptions) (*Report, error) {
	if len(files) == 0 {
		return nil, errors.New("no files to upload")
	}

	contentTypes := make([]string, len(files))
	for i, f := range files {
		contentTypes[i] = f.ContentType
	}

	targets, err := c.RequestTargets(ctx, contentTypes)
	if err != nil {
		return nil, err
	}

	report := &Report{Files: make([]FileResult, len(files))}
	for i := range files {
		report.Files[i] = FileResult{Name: files[i].Name, Target: targets[i], State: StateIdle}
	}

	// Upload failures stay in the per-file result; they never abort the batch.
	g, gctx := errgroup.WithContext(ctx)
	for i := range files {
		result := &report.Files[i]
		file := files[i]
		index := i
		g.Go(func() error {
			result.State = StateUploading
			err := c.Upload(gctx, result.Target, file.Content, file.Size, func(pct int) {
				result.Progress = pct
				if opts.OnProgress != nil {
					opts.OnProgress(index, pct)
				}
			})
			if err != nil {
				result.State = StateError
				result.Err = err
				return nil
			}
			result.State = StateDone
			result.Progress = 100
			return nil
		})
	}
	_ = g.Wait()

	var photos []PhotoRef
	for _, r := range report.Files {
		if r.State == StateDone {
			photos = append(photos, PhotoRef{Key: r.Target.Key, ContentType: r.Target.ContentType})
		}
	}
	if len(photos) == 0 {
		return report, nil
	}

	jobID, err := c.StartIngest(ctx, photos)
	if err != nil {
		return report, err
	}
	report.JobID = jobID

	status, err := c.WaitForJob(ctx, jobID, opts.PollInterval, opts.OnStatus)
	if err != nil {
		return report, err
	}
	report.Job = status
	return report, nil
}
