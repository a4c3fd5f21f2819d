// Package zip bundles rendered prompts into downloadable archives for the
// result-export endpoint.
package zip

import (
	"archive/zip"
	"bytes"
)

// Asset is one file inside an export archive, typically a per-model prompt
// as text.
type Asset struct {
	Filename string
	MIME     string
	Data     []byte
}

// ArchiveAssets writes the assets into an in-memory zip. An unwritable entry
// aborts the archive; an uncreatable one is skipped.
func ArchiveAssets(assets []Asset) []byte {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, asset := range assets {
		w, err := zw.Create(asset.Filename)
		if err != nil {
			continue
		}
		if _, err := w.Write(asset.Data); err != nil {
			return nil
		}
	}
	_ = zw.Close()
	return buf.Bytes()
}
