package scan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guynir/jack/pkg/scan"
)

func TestScanner_Find(t *testing.T) {
	t.Parallel()

	t.Run("successive matches", func(t *testing.T) {
		t.Parallel()
		s := scan.New("a;b;c")

		require.Equal(t, -1, s.Offset())
		require.Equal(t, 1, s.Find(";"))
		require.Equal(t, 1, s.Offset())
		require.Equal(t, 3, s.Find(";"))
		require.False(t, s.Consumed())
		require.Equal(t, -1, s.Find(";"))
		require.True(t, s.Consumed())
		require.Equal(t, 5, s.Offset())
	})

	t.Run("escaped match is skipped", func(t *testing.T) {
		t.Parallel()
		s := scan.New(`a\;b;c`)

		require.Equal(t, 4, s.Find(";"))
	})

	t.Run("escape at offset zero escapes nothing", func(t *testing.T) {
		t.Parallel()
		s := scan.New(`;abc`, scan.WithEscape(';'))

		require.Equal(t, 0, s.Find(";"))
	})

	t.Run("custom escape", func(t *testing.T) {
		t.Parallel()
		s := scan.New(`a!;b;c`, scan.WithEscape('!'))

		require.Equal(t, 4, s.Find(";"))
	})

	t.Run("multi rune delimiter", func(t *testing.T) {
		t.Parallel()
		s := scan.New("x ${a} ${b}")

		require.Equal(t, 2, s.Find("${"))
		require.Equal(t, 5, s.Find("}"))
		require.Equal(t, 7, s.Find("${"))
	})

	t.Run("offsets count runes", func(t *testing.T) {
		t.Parallel()
		s := scan.New("żółw;kot")

		require.Equal(t, 4, s.Find(";"))
	})

	t.Run("tail shorter than delimiter", func(t *testing.T) {
		t.Parallel()
		s := scan.New("abc$")

		require.Equal(t, -1, s.Find("${"))
		require.True(t, s.Consumed())
	})

	t.Run("empty delimiter", func(t *testing.T) {
		t.Parallel()
		s := scan.New("abc")

		require.Equal(t, -1, s.Find(""))
		require.True(t, s.Consumed())
	})

	t.Run("empty text is consumed", func(t *testing.T) {
		t.Parallel()
		s := scan.New("")

		require.True(t, s.Consumed())
		require.Equal(t, -1, s.Find(";"))
	})
}

func TestScanner_Seek(t *testing.T) {
	t.Parallel()

	s := scan.New("${a}${b}")
	require.Equal(t, 0, s.Find("${"))

	s.Seek(2)
	require.Equal(t, 3, s.Find("}"))

	s.Seek(4)
	require.Equal(t, 4, s.Find("${"))
	require.Equal(t, "b", s.Slice(6, 7))

	s.Seek(100)
	require.True(t, s.Consumed())
	require.Equal(t, s.Len(), s.Offset())
}

func TestIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		delim string
		from  int
		want  int
	}{
		{name: "first", text: "a=b", delim: "=", want: 1},
		{name: "from", text: "a=b=c", delim: "=", from: 2, want: 3},
		{name: "escaped", text: `a\=b=c`, delim: "=", want: 4},
		{name: "missing", text: "abc", delim: "=", want: -1},
		{name: "negative from", text: "a=b", delim: "=", from: -1, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, scan.Index(tt.text, tt.delim, tt.from, scan.DefaultEscape))
		})
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty text", text: "", want: []string{}},
		{name: "no delimiter", text: "abc", want: []string{"abc"}},
		{name: "plain", text: "A;B;C", want: []string{"A", "B", "C"}},
		{name: "escaped delimiter kept", text: `A\;B;C;D`, want: []string{`A\;B`, "C", "D"}},
		{name: "only delimiters", text: ";;", want: []string{"", "", ""}},
		{name: "leading and trailing", text: ";A;", want: []string{"", "A", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, scan.Split(tt.text, ";", scan.DefaultEscape))
		})
	}
}

func TestSplit_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := [][]string{
		{"a"},
		{"a", "b", "c"},
		{"", "x", ""},
		{`esc\;aped`, "plain"},
		{"αβγ", "δ"},
	}

	for _, parts := range cases {
		joined := strings.Join(parts, ";")
		require.Equal(t, parts, scan.Split(joined, ";", scan.DefaultEscape))
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		delims []string
		want   string
	}{
		{name: "single delimiter", text: `a\;b`, delims: []string{";"}, want: "a;b"},
		{name: "several delimiters", text: `k\=v\;w`, delims: []string{";", "="}, want: "k=v;w"},
		{name: "multi rune delimiter", text: `cost \${x}`, delims: []string{"${"}, want: "cost ${x}"},
		{name: "unrelated escape kept", text: `C:\dir`, delims: []string{";"}, want: `C:\dir`},
		{name: "one escape consumes one match", text: `\\;`, delims: []string{";"}, want: `\;`},
		{name: "no delimiters", text: `a\;b`, want: `a\;b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, scan.Unescape(tt.text, scan.DefaultEscape, tt.delims...))
		})
	}
}
