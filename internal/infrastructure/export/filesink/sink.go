// Package filesink stores exported documents in a local directory.
package filesink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cablequote/internal/usecase/interfaces"
	logx "cablequote/pkg/logger"
)

type Sink struct {
	dir string
}

var _ interfaces.IDocumentSink = (*Sink)(nil)

// New creates dir when it does not exist yet.
func New(dir string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir %s: %w", dir, err)
	}
	return &Sink{dir: dir}, nil
}

// Save writes data under name and returns the file path. The file is
// written to a temp name first and renamed, so readers never see a
// partial document.
func (s *Sink) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid document name %q", name)
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename %s: %w", name, err)
	}

	logx.Debug().Str("path", path).Int("bytes", len(data)).Msg("[export][filesink] document saved")
	return path, nil
}
