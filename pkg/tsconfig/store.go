package tsconfig

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/alirezahematidev/ts-path/pkg/errors"
)

// Exists reports whether path is an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Read loads and decodes the config at path.
func Read(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeConfigNotFound, err, "config file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeConfigIO, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes a tsconfig document. Comments and trailing commas are
// accepted. The top level must be an object. data is not modified.
func Parse(data []byte) (Document, error) {
	std, err := hujson.Standardize(bytes.Clone(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigParse, err, "parse tsconfig")
	}
	var doc Document
	if err := json.Unmarshal(std, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigParse, err, "decode tsconfig")
	}
	if doc == nil {
		return nil, errors.New(errors.ErrCodeConfigParse, "tsconfig must be a JSON object")
	}
	return doc, nil
}

// Marshal encodes doc as two-space indented JSON with a trailing newline.
func Marshal(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode tsconfig")
	}
	return append(data, '\n'), nil
}

// Write encodes doc and replaces the file at path. The file is written to a
// temporary sibling first and renamed into place.
func Write(path string, doc Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	return WriteRaw(path, data)
}

// WriteRaw atomically replaces the file at path with data.
func WriteRaw(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tsconfig-*.json")
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigIO, err, "write %s", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrCodeConfigIO, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeConfigIO, err, "write %s", path)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeConfigIO, err, "write %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(errors.ErrCodeConfigIO, err, "write %s", path)
	}
	return nil
}
