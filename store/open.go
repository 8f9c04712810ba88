package store

import (
	"fmt"

	"github.com/spf13/afero"
)

// Backend kinds accepted by OpenBackend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// OpenBackend returns the backend of the given kind rooted at dir.
func OpenBackend(kind, dir string) (Backend, error) {
	switch kind {
	case BackendFile, "":
		return NewFileBackend(afero.NewOsFs(), dir)
	case BackendSQLite:
		return NewSQLiteBackend(dir)
	default:
		return nil, fmt.Errorf("%w: %q (use file or sqlite)", ErrUnsupportedBackend, kind)
	}
}
