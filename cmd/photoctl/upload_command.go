package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/photoflow/service/internal/client"
)

// imageTypes covers the extensions the gallery accepts; mime.TypeByExtension
// fills the gaps for anything registered on the host.
var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".heic": "image/heic",
	".heif": "image/heif",
}

func newUploadCommand(server *string, interval *time.Duration) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>...",
		Short: "Upload photos and run them through ingest",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd, *server, *interval, args)
		},
	}
}

func runUpload(cmd *cobra.Command, server string, interval time.Duration, paths []string) error {
	out := cmd.OutOrStdout()

	files := make([]client.File, 0, len(paths))
	for _, path := range paths {
		contentType, err := contentTypeFor(path)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		files = append(files, client.File{
			Name:        filepath.Base(path),
			ContentType: contentType,
			Size:        info.Size(),
			Content:     f,
		})
	}

	c := client.New(server)
	report, err := c.Run(cmd.Context(), files, client.RunOptions{
		PollInterval: interval,
		OnProgress: func(index, pct int) {
			if pct%25 == 0 {
				fmt.Fprintf(out, "%s: %d%%\n", files[index].Name, pct)
			}
		},
		OnStatus: func(s client.JobStatus) {
			fmt.Fprintf(out, "job: %s (%d%%)\n", s.Status, s.Progress)
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, renderSummary(report))

	failed := 0
	for _, f := range report.Files {
		if f.State == client.StateError {
			failed++
		}
	}
	if failed == len(report.Files) {
		return fmt.Errorf("all %d uploads failed", failed)
	}

	fmt.Fprintf(out, "Job ID: %s\n", report.JobID)
	fmt.Fprintf(out, "Status: %s\n", report.Job.Status)
	if failed > 0 {
		fmt.Fprintf(out, "%d of %d uploads failed; retry them with another upload run\n", failed, len(report.Files))
	}
	return nil
}

// contentTypeFor infers the image content type from the file extension and
// rejects anything the server would refuse, before any network call.
func contentTypeFor(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if contentType, ok := imageTypes[ext]; ok {
		return contentType, nil
	}
	if contentType := mime.TypeByExtension(ext); strings.HasPrefix(contentType, "image/") {
		return contentType, nil
	}
	return "", fmt.Errorf("%s: not a recognized image file", path)
}
