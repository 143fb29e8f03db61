package storage

import (
	"net/http"

	"github.com/spf13/afero"
)

// AssetStore serves the bundled frontend from an afero filesystem, so tests
// can swap in an in-memory filesystem and production can point at either the
// embedded bundle or a directory on disk.
type AssetStore struct {
	httpFs *afero.HttpFs
	root   string
}

// NewAssetStore wraps fs, serving files from root.
func NewAssetStore(fs afero.Fs, root string) *AssetStore {
	return &AssetStore{httpFs: afero.NewHttpFs(fs), root: root}
}

// Handler returns a file server over the store. Requests for "/" resolve to
// index.html per the standard library's file-serving rules.
func (s *AssetStore) Handler() http.Handler {
	return http.FileServer(s.httpFs.Dir(s.root))
}
