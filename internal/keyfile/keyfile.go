package keyfile

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// File is a loaded event-settings key file.
//
// It wraps the parsed ini source and presents the typed lookup contract
// used by the settings resolver. A File is immutable after Load and safe
// for concurrent reads.
type File struct {
	src  *ini.File
	path string
}

// Load parses the first candidate path that loads successfully.
//
// Candidates are tried in order; a candidate that is missing or fails to
// parse is skipped. If no candidate loads, Load returns an error matching
// ErrNoFile, the only fatal outcome at this layer.
//
// Inline comments are disabled so raw values may contain ';' (the settings
// mini-language uses it as a list separator).
func Load(paths ...string) (*File, error) {
	opts := ini.LoadOptions{
		IgnoreInlineComment: true,
	}

	for _, path := range paths {
		src, err := ini.LoadSources(opts, path)
		if err != nil {
			continue
		}
		return &File{src: src, path: path}, nil
	}

	return nil, fmt.Errorf("%w: tried %v", ErrNoFile, paths)
}

// Path returns the path of the candidate that loaded.
func (f *File) Path() string {
	return f.path
}

// Groups returns all group names in file order.
//
// The implicit default section is excluded; the settings source only uses
// named groups.
func (f *File) Groups() []string {
	names := f.src.SectionStrings()
	groups := make([]string, 0, len(names))
	for _, name := range names {
		if name == ini.DefaultSection {
			continue
		}
		groups = append(groups, name)
	}
	return groups
}

// HasGroup reports whether a group with the given name exists.
func (f *File) HasGroup(name string) bool {
	_, err := f.src.GetSection(name)
	return err == nil
}

// String reads a string field from a group.
func (f *File) String(group, key string) (string, error) {
	k, err := f.lookup(group, key)
	if err != nil {
		return "", err
	}
	return k.String(), nil
}

// Int reads an integer field from a group.
//
// A present but non-integer value returns an error matching ErrInvalidValue.
func (f *File) Int(group, key string) (int, error) {
	k, err := f.lookup(group, key)
	if err != nil {
		return 0, err
	}

	v, err := k.Int()
	if err != nil {
		return 0, fmt.Errorf("%w: %q in group %q is not an integer", ErrInvalidValue, key, group)
	}
	return v, nil
}

// Bool reads a boolean field from a group.
//
// A present but non-boolean value returns an error matching ErrInvalidValue.
func (f *File) Bool(group, key string) (bool, error) {
	k, err := f.lookup(group, key)
	if err != nil {
		return false, err
	}

	v, err := k.Bool()
	if err != nil {
		return false, fmt.Errorf("%w: %q in group %q is not a boolean", ErrInvalidValue, key, group)
	}
	return v, nil
}

// lookup fetches a key, mapping absence to the package's sentinel errors.
func (f *File) lookup(group, key string) (*ini.Key, error) {
	sec, err := f.src.GetSection(group)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, group)
	}

	k, err := sec.GetKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %q in group %q", ErrKeyNotFound, key, group)
	}
	return k, nil
}
