// Package storage provides the object-storage collaborator: named-blob upload
// with public-URL retrieval. The production implementation writes to local
// disk and serves the files back under /uploads/.
package storage

import (
	"context"
	"io"
)

// Store saves uploaded blobs and returns the public URL they will be served
// from. Implementations must generate collision-resistant object names; the
// original filename only contributes its extension.
type Store interface {
	Save(ctx context.Context, originalName string, r io.Reader) (publicURL string, err error)
}
