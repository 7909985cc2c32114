package deployer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListing_FileRow(t *testing.T) {
	t.Parallel()

	entries := ParseListing("f 32M 2025-12-01 19:03:12 | file.z64")

	require.Len(t, entries, 1)
	assert.Equal(t, Entry{
		Name:     "file.z64",
		Kind:     KindFile,
		SizeText: "32M",
		Path:     "/file.z64",
	}, entries[0], "relative names must be rooted with a leading slash")
	assert.True(t, entries[0].HasSize())
}

func TestParseListing_DirRow(t *testing.T) {
	t.Parallel()

	entries := ParseListing("d ---- 2024-06-01 12:00:00 | /menu")

	require.Len(t, entries, 1)
	assert.Equal(t, Entry{
		Name:     "menu",
		Kind:     KindDir,
		SizeText: SizePlaceholder,
		Path:     "/menu",
	}, entries[0])
	assert.True(t, entries[0].IsDir())
	assert.False(t, entries[0].HasSize(), "the placeholder means unknown, not a size")
}

func TestParseListing_NameFormsNormalize(t *testing.T) {
	t.Parallel()

	// Root listings print "/menu", subdirectory listings print "menu"; both
	// forms must yield a bare Name and an absolute Path.
	tests := []struct {
		name string
		raw  string
		want Entry
	}{
		{
			"rooted_dir_name",
			"d ---- 2024-06-01 12:00:00 | /menu",
			Entry{Name: "menu", Kind: KindDir, SizeText: SizePlaceholder, Path: "/menu"},
		},
		{
			"bare_dir_name",
			"d ---- 2024-06-01 12:00:00 | menu",
			Entry{Name: "menu", Kind: KindDir, SizeText: SizePlaceholder, Path: "/menu"},
		},
		{
			"rooted_nested_file_name",
			"f 32M 2025-12-01 19:03:12 | /menu/bg.mp3",
			Entry{Name: "menu/bg.mp3", Kind: KindFile, SizeText: "32M", Path: "/menu/bg.mp3"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			entries := ParseListing(tt.raw)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.want, entries[0])
		})
	}
}

func TestParseListing_MalformedLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"empty_input", ""},
		{"blank_lines", "\n\n   \n"},
		{"no_pipe", "d ---- 2024-06-01 12:00:00 /menu"},
		{"whitespace_only_line", "   \t  "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Empty(t, ParseListing(tt.raw), "malformed lines must be dropped silently")
		})
	}
}

func TestParseListing_MixedResponse(t *testing.T) {
	t.Parallel()

	raw := "d ---- 2024-06-01 12:00:00 | /menu\n" +
		"\n" +
		"garbage without separator\n" +
		"f  64M 2025-12-01 19:03:12 | game.n64\n"

	entries := ParseListing(raw)

	require.Len(t, entries, 2, "bad rows must not take good rows down with them")
	assert.Equal(t, KindDir, entries[0].Kind)
	assert.Equal(t, "game.n64", entries[1].Name)
	assert.Equal(t, "64M", entries[1].SizeText)
}

func TestParseListing_MetadataWithoutSize(t *testing.T) {
	t.Parallel()

	entries := ParseListing("f | lone.z64")

	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].SizeText)
	assert.False(t, entries[0].HasSize())
}

func TestParseListing_NameKeepsInnerPipeContent(t *testing.T) {
	t.Parallel()

	// Split happens at the first pipe only; later pipes belong to the name.
	entries := ParseListing("f 1M 2025-01-01 00:00:00 | weird | name.z64")

	require.Len(t, entries, 1)
	assert.Equal(t, "weird | name.z64", entries[0].Name)
}
