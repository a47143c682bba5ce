// Package namer maps namespaces and keys onto backend-specific names:
// S3 bucket names and filesystem paths.
package namer

import (
	"path"
	"path/filepath"
	"strings"
)

// SidecarSuffix is appended to a key's data file name to form the name of
// the file holding its expiration and metadata.
const SidecarSuffix = ".meta.json"

// BucketName normalizes a namespace name to satisfy bucket naming rules:
// it is lower-cased and underscores are replaced with hyphens.
func BucketName(namespace string) string {
	return strings.ReplaceAll(strings.ToLower(namespace), "_", "-")
}

// FileNamer lays keys out under <root>/<namespace>/<key>.
type FileNamer struct {
	root string
}

// NewFileNamer returns a FileNamer rooted at root.
func NewFileNamer(root string) FileNamer {
	return FileNamer{root: root}
}

// NamespaceDir returns the directory holding the namespace's keys.
func (n FileNamer) NamespaceDir(namespace string) (string, error) {
	switch {
	case namespace == "":
		return "", errInvalidName(namespace, "namespace is empty")
	case namespace == "." || namespace == "..":
		return "", errInvalidName(namespace, "namespace is a relative path element")
	case strings.ContainsAny(namespace, `/\`):
		return "", errInvalidName(namespace, "namespace contains a path separator")
	}

	return filepath.Join(n.root, namespace), nil
}

// DataPath returns the path of the file holding the key's value.
// Keys may contain '/' to form a hierarchy below the namespace directory.
func (n FileNamer) DataPath(namespace, key string) (string, error) {
	dir, err := n.NamespaceDir(namespace)
	if err != nil {
		return "", err
	}

	if err := checkKey(key); err != nil {
		return "", err
	}

	return filepath.Join(dir, filepath.FromSlash(key)), nil
}

// SidecarPath returns the path of the file holding the expiration and
// metadata of the key stored at dataPath.
func SidecarPath(dataPath string) string {
	return dataPath + SidecarSuffix
}

// IsSidecar reports whether a file name belongs to a sidecar file.
func IsSidecar(name string) bool {
	return strings.HasSuffix(name, SidecarSuffix)
}

// KeyFromRelative converts a path relative to the namespace directory back to a key.
func KeyFromRelative(rel string) string {
	return filepath.ToSlash(rel)
}

func checkKey(key string) error {
	switch {
	case key == "":
		return errInvalidKey(key, "key is empty")
	case IsSidecar(key):
		return errInvalidKey(key, "key collides with the sidecar suffix "+SidecarSuffix)
	case strings.HasPrefix(key, "/"):
		return errInvalidKey(key, "key is absolute")
	}

	cleaned := path.Clean(key)
	if cleaned != key || cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return errInvalidKey(key, "key is not a canonical relative path")
	}

	return nil
}
