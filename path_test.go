package kit

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/prashantv/gostub"
	"github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/require"
)

func TestPath_Lexical(t *testing.T) {
	convey.Convey("parent", t, func() {
		convey.So(PathFrom("/usr/local/bin/go").Parent().String(), convey.ShouldEqual, "/usr/local/bin/")
		convey.So(PathFrom("/usr/local/bin/").Parent().String(), convey.ShouldEqual, "/usr/local/")
		convey.So(PathFrom("/usr").Parent().String(), convey.ShouldEqual, "/")
		convey.So(PathFrom("/usr/").Parent().String(), convey.ShouldEqual, "/")
		convey.So(RootPath().Parent().String(), convey.ShouldEqual, "/")
		convey.So(PathFrom("a/b.txt").Parent().String(), convey.ShouldEqual, "a/")
		convey.So(PathFrom("b.txt").Parent().String(), convey.ShouldEqual, "./")
	})

	convey.Convey("name and extension", t, func() {
		convey.So(PathFrom("/usr/local/archive.tar.gz").Name(), convey.ShouldEqual, Str("archive.tar.gz"))
		convey.So(PathFrom("/usr/local/archive.tar.gz").Extension(), convey.ShouldEqual, Str("gz"))
		convey.So(PathFrom("/usr/local/").Name(), convey.ShouldEqual, Str("local"))
		convey.So(PathFrom("/usr/local.d/").Extension(), convey.ShouldEqual, Str(""))
		convey.So(PathFrom("Makefile").Extension(), convey.ShouldEqual, Str(""))
		convey.So(RootPath().Name(), convey.ShouldEqual, Str("/"))
		convey.So(PathFrom("").Name(), convey.ShouldEqual, Str("/"))
	})

	convey.Convey("components and remove", t, func() {
		p := PathFrom("/usr/local/bin/")
		convey.So(vectorValues(p.Components()), convey.ShouldResemble, []Str{"usr", "local", "bin"})
		convey.So(p.Remove(1).String(), convey.ShouldEqual, "/usr/bin/")
		convey.So(p.Remove(3).String(), convey.ShouldEqual, "/usr/local/bin/")
		convey.So(PathFrom("a/b").Remove(0).String(), convey.ShouldEqual, "b")
		convey.So(PathFrom("a").Remove(0).String(), convey.ShouldEqual, "./")
		convey.So(PathFrom("/a").Remove(0).String(), convey.ShouldEqual, "/")
	})

	convey.Convey("normalize", t, func() {
		convey.So(PathFrom("/usr/./local/../bin/").Normalize().String(), convey.ShouldEqual, "/usr/bin/")
		convey.So(PathFrom("/nonexistent//lib").Normalize().String(), convey.ShouldEqual, "/nonexistent/lib")
		convey.So(PathFrom("/..").Normalize().String(), convey.ShouldEqual, "/")
		convey.So(PathFrom("../a/./b/..").Normalize().String(), convey.ShouldEqual, "../a")
		convey.So(PathFrom("a/..").Normalize().String(), convey.ShouldEqual, "./")
		convey.So(PathFrom("").Normalize().String(), convey.ShouldEqual, "")
	})

	convey.Convey("misc", t, func() {
		convey.So(PathFrom("/a").IsAbs(), convey.ShouldBeTrue)
		convey.So(PathFrom("a").IsAbs(), convey.ShouldBeFalse)
		convey.So(PathFrom("x/").IsDir(), convey.ShouldBeTrue)
		convey.So(PathFrom("/a").Equals(PathFrom("/a").Clone()), convey.ShouldBeTrue)
		convey.So(PathFrom("/a").Str(), convey.ShouldEqual, Str("/a"))
	})
}

func TestPath_Filesystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))

	root := PathFrom(dir)
	require.Equal(t, dir+"/", root.String())
	require.True(t, root.IsDir())
	require.True(t, root.Exists())

	sub := root.Append("sub")
	require.Equal(t, dir+"/sub/", sub.String())
	require.True(t, sub.IsDir())

	file := root.Append("a.txt")
	require.True(t, file.Exists())
	require.False(t, file.IsDir())
	require.False(t, root.Append("missing").Exists())

	files, err := root.Files(false)
	require.NoError(t, err)
	var names []string
	for _, f := range files.All() {
		names = append(names, f.String())
	}
	sort.Strings(names)
	require.Equal(t, []string{"a.txt", "sub/"}, names)

	files, err = PathFrom(dir).Files(true)
	require.NoError(t, err)
	require.Equal(t, 2, files.Len())
	for _, f := range files.All() {
		require.True(t, f.Exists(), f.String())
		require.True(t, f.IsAbs())
	}

	_, err = root.Append("missing").Files(false)
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))

	// Directory-ness sticks after removal.
	require.NoError(t, os.Remove(filepath.Join(dir, "sub")))
	require.True(t, sub.IsDir())
	require.False(t, sub.Exists())
}

func TestPath_Environment(t *testing.T) {
	convey.Convey("current and user paths", t, func() {
		stubs := gostub.Stub(&getwd, func() (string, error) { return "/work", nil })
		defer stubs.Reset()
		stubs.Stub(&userHomeDir, func() (string, error) { return "/home/kit/", nil })

		p, err := CurrentPath()
		convey.So(err, convey.ShouldBeNil)
		convey.So(p.String(), convey.ShouldEqual, "/work/")

		p, err = UserPath()
		convey.So(err, convey.ShouldBeNil)
		convey.So(p.String(), convey.ShouldEqual, "/home/kit/")
	})

	convey.Convey("lookup failures are wrapped", t, func() {
		boom := errors.New("boom")
		stubs := gostub.Stub(&getwd, func() (string, error) { return "", boom })
		defer stubs.Reset()
		stubs.Stub(&userHomeDir, func() (string, error) { return "", boom })

		_, err := CurrentPath()
		convey.So(errors.Is(err, boom), convey.ShouldBeTrue)
		convey.So(err.Error(), convey.ShouldEqual, "current path: boom")

		_, err = UserPath()
		convey.So(errors.Is(err, boom), convey.ShouldBeTrue)
		convey.So(err.Error(), convey.ShouldEqual, "user path: boom")
	})
}
