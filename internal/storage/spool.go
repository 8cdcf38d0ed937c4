// Package storage spools generated invoice files to disk for the
// short window between rendering and download. Files never outlive
// the request that created them.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// SpoolStore writes rendered documents under a single base directory
// and confines every operation to it.
type SpoolStore struct {
	baseDir string
	logger  *zap.Logger
}

// NewSpoolStore creates the base directory if needed.
func NewSpoolStore(baseDir string, logger *zap.Logger) (*SpoolStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create spool directory: %w", err)
	}
	return &SpoolStore{baseDir: baseDir, logger: logger}, nil
}

// Save writes content to a fresh uniquely named file and returns its
// path. The caller owns the file and must Remove it on every exit
// path.
func (s *SpoolStore) Save(prefix string, content []byte) (string, error) {
	f, err := os.CreateTemp(s.baseDir, prefix+"-*.pdf")
	if err != nil {
		s.logger.Error("Failed to create spool file", zap.Error(err))
		return "", fmt.Errorf("failed to create spool file: %w", err)
	}
	path := f.Name()

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(path)
		s.logger.Error("Failed to write spool file", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("failed to write spool file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close spool file: %w", err)
	}

	s.logger.Debug("Spool file written",
		zap.String("path", path),
		zap.Int("size", len(content)))

	return path, nil
}

// Remove deletes a spooled file after confirming the path stays
// inside the base directory.
func (s *SpoolStore) Remove(path string) error {
	if err := s.validatePath(path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		s.logger.Warn("Failed to remove spool file", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to remove spool file: %w", err)
	}
	return nil
}

// validatePath checks that the path is safe and within baseDir.
func (s *SpoolStore) validatePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	absBase, err := filepath.Abs(s.baseDir)
	if err != nil {
		return fmt.Errorf("failed to resolve base path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) && absPath != absBase {
		return fmt.Errorf("path escapes spool directory: %s", path)
	}

	return nil
}
