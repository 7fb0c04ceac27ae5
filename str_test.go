package kit

import (
	"fmt"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/require"
)

func TestStr(t *testing.T) {
	convey.Convey("search", t, func() {
		s := StrFrom("a/b/c/b")
		convey.So(s.IndexOf('/'), convey.ShouldEqual, 1)
		convey.So(s.LastIndexOf('/'), convey.ShouldEqual, 5)
		convey.So(s.IndexOf('x'), convey.ShouldEqual, -1)
		convey.So(s.NthIndexOf(2, '/'), convey.ShouldEqual, 3)
		convey.So(s.NthIndexOf(4, '/'), convey.ShouldEqual, -1)
		convey.So(s.NthLastIndexOf(1, '/'), convey.ShouldEqual, 5)
		convey.So(s.NthLastIndexOf(3, '/'), convey.ShouldEqual, 1)
		convey.So(s.IndexOfStr("b"), convey.ShouldEqual, 2)
		convey.So(s.LastIndexOfStr("b"), convey.ShouldEqual, 6)
		convey.So(s.Contains('c'), convey.ShouldBeTrue)
		convey.So(s.ContainsStr("c/b"), convey.ShouldBeTrue)
		convey.So(s.ContainsStr("b/a"), convey.ShouldBeFalse)
	})

	convey.Convey("transform", t, func() {
		s := StrFormat("%s-%d", "Key", 7)
		convey.So(s.String(), convey.ShouldEqual, "Key-7")
		convey.So(s.Len(), convey.ShouldEqual, 5)
		convey.So(s.Sub(0, 3), convey.ShouldEqual, Str("Key"))
		convey.So(s.Sub(5, 0), convey.ShouldEqual, Str(""))
		convey.So(s.Upper(), convey.ShouldEqual, Str("KEY-7"))
		convey.So(s.Lower(), convey.ShouldEqual, Str("key-7"))
		convey.So(s.Replace("-", "::"), convey.ShouldEqual, Str("Key::7"))
		convey.So(Str("aaa").Replace("a", "bb"), convey.ShouldEqual, Str("bbbbbb"))
		convey.So(s.Replace("", "x"), convey.ShouldEqual, s)
	})

	convey.Convey("compare", t, func() {
		convey.So(Str("abc").Equals("abc"), convey.ShouldBeTrue)
		convey.So(Str("abc").Equals("ABC"), convey.ShouldBeFalse)
		convey.So(Str("abc").EqualsFold("ABC"), convey.ShouldBeTrue)
		convey.So(Str("a").Compare("b"), convey.ShouldBeLessThan, 0)
		convey.So(Str("b").Compare("a"), convey.ShouldBeGreaterThan, 0)
		convey.So(Str("a").Compare("a"), convey.ShouldEqual, 0)
		convey.So(Str("abc").Hash(), convey.ShouldEqual, StringHash("abc"))
	})
}

func TestStr_Split(t *testing.T) {
	cases := []struct {
		in   Str
		want []Str
	}{
		{"/a//b/", []Str{"a", "b"}},
		{"a", []Str{"a"}},
		{"", nil},
		{"///", nil},
		{"usr/local/bin", []Str{"usr", "local", "bin"}},
	}
	for _, c := range cases {
		require.Equal(t, c.want, vectorValues(c.in.Split('/')), "split %q", c.in)
	}
}

func TestStr_Contract(t *testing.T) {
	requireAssertion(t, "illegal range: string of size 3 cannot hold [1, 4)", func() {
		Str("abc").Sub(1, 3)
	})
	requireAssertion(t, "n is 0", func() {
		Str("abc").NthIndexOf(0, 'a')
	})
	requireAssertion(t, "n is -1", func() {
		Str("abc").NthLastIndexOf(-1, 'a')
	})
}

func TestStrStrategies(t *testing.T) {
	s := StrStrategy()
	require.True(t, s.Equal("a", "a"))
	require.False(t, s.Equal("a", "A"))
	require.Equal(t, Str("a"), s.Clone("a"))

	f := StrFoldStrategy()
	require.True(t, f.Equal("Key", "kEY"))
	require.Equal(t, f.Hash("Key"), f.Hash("KEY"))
}

func TestStrBuilder(t *testing.T) {
	b := NewStrBuilder()
	b.Append("Key").AppendByte(' ').Appendf("%d", 5).AppendSub("xxValuexx", 2, 5)
	require.Equal(t, Str("Key 5Value"), b.Build())
	require.Equal(t, 10, b.Len())

	c := b.Clone()
	b.Reset()
	require.Equal(t, 0, b.Len())
	require.Equal(t, Str(""), b.Build())
	require.Equal(t, Str("Key 5Value"), c.Build())

	require.Equal(t, Str("seed!"), StrBuilderFrom("seed").AppendByte('!').Build())

	fmt.Fprintf(b, "%03d", 7)
	require.Equal(t, Str("007"), b.Build())
	b.Reset()

	var zero StrBuilder
	require.Equal(t, Str("ok"), zero.Append("ok").Build())

	requireAssertion(t, "illegal range", func() { b.AppendSub("abc", 2, 2) })
}
