package output

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"

	"github.com/arthur-debert/lydio/pkg/errors"
	"github.com/arthur-debert/lydio/pkg/logging"
)

// WriteFile writes content to path through a synthfs pipeline, creating the
// parent directory when needed. An existing file is replaced only when
// overwrite is set; the new content is written to a sibling temporary file
// first and renamed over the old one, so a failed write leaves it intact.
func WriteFile(ctx context.Context, path, content string, overwrite bool) error {
	logger := logging.GetLogger("output.writer")

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "invalid output path: %s", path)
	}
	relPath, err := filepath.Rel("/", abs)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to convert path: %s", abs)
	}
	relDir := filepath.Dir(relPath)
	osfs := filesystem.NewOSFileSystem("/")

	target := relPath
	replacing := false
	if _, err := os.Lstat(abs); err == nil {
		if !overwrite {
			return errors.Newf(errors.ErrFileWrite, "output file already exists: %s", abs).
				WithDetail("path", abs)
		}
		replacing = true
		target = filepath.Join(relDir, "."+filepath.Base(relPath)+".tmp")
		if err := clearTemp(osfs, target); err != nil {
			return err
		}
	}

	pipeline := synthfs.NewMemPipeline()

	if _, err := os.Stat(filepath.Dir(abs)); os.IsNotExist(err) {
		dirOp := operations.NewCreateDirectoryOperation(
			core.OperationID(fmt.Sprintf("create-dir-%s", relDir)), relDir)
		dirOp.SetItem(&directoryItem{path: relDir, mode: 0755})
		if err := pipeline.Add(synthfs.NewOperationsPackageAdapter(dirOp)); err != nil {
			return errors.Wrap(err, errors.ErrFileWrite, "failed to add operation to pipeline")
		}
	}

	fileOp := operations.NewCreateFileOperation(
		core.OperationID(fmt.Sprintf("write-file-%s", target)), target)
	fileOp.SetItem(&fileItem{path: target, content: []byte(content), mode: 0644})
	if err := pipeline.Add(synthfs.NewOperationsPackageAdapter(fileOp)); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to add operation to pipeline")
	}

	result := synthfs.NewExecutor().Run(ctx, pipeline, osfs)
	if result.GetError() != nil {
		logger.Error().Err(result.GetError()).Str("target", abs).Msg("Pipeline execution failed")
		if replacing {
			_ = osfs.Remove(target)
		}
		return errors.Wrapf(result.GetError(), errors.ErrFileWrite, "failed to write %s", abs).
			WithDetail("path", abs)
	}

	if replacing {
		logger.Debug().Str("from", target).Str("target", abs).Msg("Replacing existing output file")
		if err := osfs.Rename(target, relPath); err != nil {
			_ = osfs.Remove(target)
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot replace %s", abs).
				WithDetail("path", abs)
		}
	}

	logger.Info().Str("target", abs).Int("bytes", len(content)).Msg("Wrote stylesheet")
	return nil
}

// clearTemp removes a leftover temporary file. Anything other than a regular
// file at that path is left alone and reported.
func clearTemp(osfs *filesystem.OSFileSystem, rel string) error {
	info, err := osfs.Stat(rel)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil || !info.Mode().IsRegular() {
		return errors.Newf(errors.ErrFileWrite, "temporary path is in use: /%s", rel).
			WithDetail("path", "/"+rel)
	}
	if err := osfs.Remove(rel); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot remove stale temporary file /%s", rel)
	}
	return nil
}

// fileItem implements the interface needed for file operations
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

// directoryItem implements the interface needed for directory operations
type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }
