package kit

import (
	"os"
	"path"
	"strings"

	"github.com/cockroachdb/errors"
)

// Hooks for the process environment; tests replace them.
var (
	getwd       = os.Getwd
	userHomeDir = os.UserHomeDir
)

// Path wraps a slash-separated filesystem location. Paths naming an existing
// directory carry a trailing slash, so directory-ness survives after the
// directory is removed from disk.
type Path struct {
	url Str
}

// PathFrom returns a Path for url, appending a slash when url names an
// existing directory.
func PathFrom(url string) Path {
	if url != "" && !strings.HasSuffix(url, "/") && isDir(url) {
		url += "/"
	}
	return Path{url: Str(url)}
}

// RootPath returns "/".
func RootPath() Path { return Path{url: "/"} }

// CurrentPath returns the working directory with a trailing slash.
func CurrentPath() (Path, error) {
	wd, err := getwd()
	if err != nil {
		return Path{}, errors.Wrap(err, "current path")
	}
	return Path{url: Str(withSlash(wd))}, nil
}

// UserPath returns the home directory of the current user with a trailing
// slash.
func UserPath() (Path, error) {
	home, err := userHomeDir()
	if err != nil {
		return Path{}, errors.Wrap(err, "user path")
	}
	return Path{url: Str(withSlash(home))}, nil
}

// String implement the formatting output interface fmt.Stringer
func (p Path) String() string { return string(p.url) }

// Str returns the underlying string.
func (p Path) Str() Str { return p.url }

// Clone returns a copy of p.
func (p Path) Clone() Path { return p }

// Equals reports whether both paths have the same text.
func (p Path) Equals(other Path) bool { return p.url == other.url }

// IsAbs reports whether p starts at the root.
func (p Path) IsAbs() bool { return strings.HasPrefix(string(p.url), "/") }

// IsDir reports whether p names a directory: either it ends with a slash or
// it exists on disk as one.
func (p Path) IsDir() bool {
	return strings.HasSuffix(string(p.url), "/") || isDir(string(p.url))
}

// Exists reports whether anything exists at p. Symbolic links are not
// followed.
func (p Path) Exists() bool {
	_, err := os.Lstat(string(p.url))
	return err == nil
}

// Append returns p with s appended verbatim, followed by a slash when the
// result names an existing directory.
func (p Path) Append(s string) Path {
	return PathFrom(string(p.url) + s)
}

// Parent returns the directory containing p. The parent of a top-level
// entry is the root; the parent of a bare relative name is "./".
func (p Path) Parent() Path {
	if p.url.LastIndexOf('/') == 0 {
		return RootPath()
	}
	var cut int
	if strings.HasSuffix(string(p.url), "/") {
		cut = p.url.NthLastIndexOf(2, '/')
	} else {
		cut = p.url.LastIndexOf('/')
	}
	if cut < 0 {
		return Path{url: "./"}
	}
	return Path{url: p.url[:cut+1]}
}

// Name returns the final element of p without any trailing slash.
// The name of the root or an empty path is "/".
func (p Path) Name() Str {
	u := strings.TrimSuffix(string(p.url), "/")
	if u == "" {
		return "/"
	}
	return Str(u[strings.LastIndexByte(u, '/')+1:])
}

// Extension returns the text after the last dot of the final element, or an
// empty Str for directories and names without a dot.
func (p Path) Extension() Str {
	if strings.HasSuffix(string(p.url), "/") {
		return ""
	}
	name := p.Name()
	i := name.LastIndexOf('.')
	if i < 0 {
		return ""
	}
	return name[i+1:]
}

// Components returns the non-empty elements of p.
func (p Path) Components() *Vector[Str] {
	return p.url.Split('/')
}

// Remove returns p without its index-th element. An out-of-range index
// returns p unchanged.
func (p Path) Remove(index int) Path {
	parts := p.Components()
	if index < 0 || index >= parts.Len() {
		return p
	}
	parts.Delete(index)
	return p.rebuild(parts)
}

// Normalize lexically resolves "." and ".." elements. Leading ".." elements
// of a relative path are kept; ".." at the root stays at the root.
func (p Path) Normalize() Path {
	if p.url == "" {
		return p
	}
	clean := path.Clean(string(p.url))
	if clean == "/" || clean == "." {
		return Path{url: Str(withSlash(clean))}
	}
	if strings.HasSuffix(string(p.url), "/") {
		clean += "/"
	}
	return Path{url: Str(clean)}
}

// Files lists the entries of the directory p. Directories carry a trailing
// slash. With absolute set, every entry is prefixed with p.
func (p Path) Files(absolute bool) (*Vector[Path], error) {
	entries, err := os.ReadDir(string(p.url))
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", p.url)
	}
	files := NewVector[Path](len(entries), Path.Clone, NoDestroy[Path])
	prefix := ""
	if absolute {
		prefix = withSlash(string(p.url))
	}
	for _, e := range entries {
		name := prefix + e.Name()
		if e.IsDir() {
			name += "/"
		}
		files.Add(Path{url: Str(name)})
	}
	return files, nil
}

func (p Path) rebuild(parts *Vector[Str]) Path {
	b := NewStrBuilder()
	if p.IsAbs() {
		b.AppendByte('/')
	}
	for i, part := range parts.All() {
		if i > 0 {
			b.AppendByte('/')
		}
		b.Append(string(part))
	}
	if parts.Len() > 0 && strings.HasSuffix(string(p.url), "/") {
		b.AppendByte('/')
	}
	if b.Len() == 0 {
		return Path{url: "./"}
	}
	return Path{url: b.Build()}
}

func withSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

func isDir(url string) bool {
	fi, err := os.Lstat(url)
	return err == nil && fi.IsDir()
}
