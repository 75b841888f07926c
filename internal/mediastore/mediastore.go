package mediastore

import (
	"context"
	"io"
)

// Kind classifies an asset for the media host. Deletion must use the same
// kind the asset was uploaded with; deleting with the wrong kind silently
// does nothing.
type Kind string

const (
	// KindImage covers render images and model thumbnails.
	KindImage Kind = "image"
	// KindRaw covers binary 3D assets (glb/gltf).
	KindRaw Kind = "raw"
)

// Asset is the result of an upload: a public URL for serving and an opaque
// handle required to delete the binary later.
type Asset struct {
	URL            string
	DeletionHandle string
}

// AllowedFormats is the upload allow-list, keyed by lowercase extension
// without the dot.
var AllowedFormats = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"glb":  true,
	"gltf": true,
}

// MediaStore stores binary assets in a remote host. Implementations must be
// safe for concurrent use. Delete is idempotent: deleting an asset that is
// already gone is success, not an error.
type MediaStore interface {
	Upload(ctx context.Context, r io.Reader, kind Kind, format string) (*Asset, error)
	Delete(ctx context.Context, deletionHandle string, kind Kind) error
}
