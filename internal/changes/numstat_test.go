package changes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNumstat_NumericFields(t *testing.T) {
	t.Parallel()

	records := ParseNumstat("10\t5\tsrc/a.py\n3\t0\tsrc/b.py")

	require.Len(t, records, 2)
	require.Equal(t, Record{Path: "src/a.py", Insertions: 10, Deletions: 5}, records[0])
	require.Equal(t, Record{Path: "src/b.py", Insertions: 3, Deletions: 0}, records[1])
}

func TestParseNumstat_BinaryMarkersNormalizeToZero(t *testing.T) {
	t.Parallel()

	records := ParseNumstat("-\t-\timages/logo.png")

	require.Len(t, records, 1)
	require.Equal(t, 0, records[0].Insertions)
	require.Equal(t, 0, records[0].Deletions)
	require.Equal(t, "images/logo.png", records[0].Path)
}

func TestParseNumstat_RenameForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "brace-delimited partial path",
			line: "1\t1\t{old => new}/file.txt",
			want: "new/file.txt",
		},
		{
			name: "full dual path",
			line: "1\t1\toldfull => newfull",
			want: "newfull",
		},
		{
			name: "no rename",
			line: "1\t1\tplain/path.go",
			want: "plain/path.go",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			records := ParseNumstat(tc.line)

			require.Len(t, records, 1)
			require.Equal(t, tc.want, records[0].Path)
		})
	}
}

func TestParseNumstat_EmptyAndWhitespaceInput(t *testing.T) {
	t.Parallel()

	require.Empty(t, ParseNumstat(""))
	require.Empty(t, ParseNumstat("   \n\t\n  "))
}

func TestParseNumstat_MalformedLinesDropped(t *testing.T) {
	t.Parallel()

	records := ParseNumstat("10\t5\n\n7\t2\tkept.go\njunk")

	require.Len(t, records, 1)
	require.Equal(t, "kept.go", records[0].Path)
}

func TestParseNumstat_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	records := ParseNumstat("1\t0\tz.go\n2\t0\ta.go")

	require.Equal(t, "z.go", records[0].Path)
	require.Equal(t, "a.go", records[1].Path)
	require.Nil(t, records[0].Loc)
}
