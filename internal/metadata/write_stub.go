// file: internal/metadata/write_stub.go
// version: 1.0.0
// guid: 1a4b7c0d-3e5f-4a7b-8c9d-0e1f2a3b4c5d

//go:build !taglib

package metadata

// writeBasicTags stub when taglib is not compiled in
func writeBasicTags(path, title, artist, album string) error {
	return ErrTaglibUnavailable
}
