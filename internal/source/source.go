// Package source reads translation input files. Inputs may be plain or
// compressed (.xz, .gz); decompression is transparent and the raw bytes
// are digested for run reports.
package source

import (
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/bibledata/core/errors"
)

// Input is a fully-read input file.
type Input struct {
	// Path is the path the input was read from.
	Path string

	// Data is the decompressed content.
	Data []byte

	// SHA256 and BLAKE3 are hex digests of the decompressed content.
	SHA256 string
	BLAKE3 string
}

// Read opens, decompresses, and digests the input file. The file handle
// is scoped to this call and closed on every path.
func Read(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.NotFoundError{Resource: "input file", ID: path, Err: err}
		}
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(path, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		reader = xzr
	case strings.HasSuffix(path, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		defer gzr.Close()
		reader = gzr
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}

	sha := sha256.Sum256(data)
	b3 := blake3.Sum256(data)

	return &Input{
		Path:   path,
		Data:   data,
		SHA256: hex.EncodeToString(sha[:]),
		BLAKE3: hex.EncodeToString(b3[:]),
	}, nil
}

// Ext returns the content extension with any compression suffix removed:
// "bible.json.xz" reports ".json".
func (in *Input) Ext() string {
	name := in.Path
	for _, suffix := range []string{".xz", ".gz"} {
		name = strings.TrimSuffix(name, suffix)
	}
	return strings.ToLower(filepath.Ext(name))
}
