package deployer

import "strings"

// EntryKind distinguishes directory rows from file rows in a listing.
type EntryKind string

const (
	KindDir  EntryKind = "dir"
	KindFile EntryKind = "file"
)

// SizePlaceholder is what the deployer prints in place of a size it does not
// know (directories, mainly). It means "unknown", not zero.
const SizePlaceholder = "----"

// Entry is one row of an SD card directory listing. Entries are produced
// fresh on every listing call and never persisted.
type Entry struct {
	Name     string
	Kind     EntryKind
	SizeText string // raw device-formatted size token, e.g. "32M"; may be empty or the placeholder
	Path     string // absolute SD card path, always "/"-prefixed
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDir
}

// HasSize reports whether the entry carries a usable size token.
func (e Entry) HasSize() bool {
	return e.SizeText != "" && e.SizeText != SizePlaceholder
}

// ParseListing converts the deployer's plain-text directory listing into
// entries. Rows look like:
//
//	d ---- 2024-06-01 12:00:00 | /menu
//	f  32M 2025-12-01 19:03:12 | file.z64
//
// Each line splits at the first pipe into a metadata field and a name field.
// The first metadata character selects directory vs file; the second
// whitespace token, when present, is the size. Root listings print names
// with a leading slash while subdirectory listings print them bare; Name is
// normalized to the bare form and Path to the absolute one so callers never
// see the difference. Blank lines and lines without a pipe are skipped
// silently: the device text protocol is best-effort and a malformed row is
// not worth failing a whole listing over.
func ParseListing(raw string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		meta, name, found := strings.Cut(line, "|")
		if !found {
			continue
		}
		meta = strings.TrimSpace(meta)
		name = strings.TrimSpace(name)

		kind := KindFile
		if strings.HasPrefix(meta, "d") {
			kind = KindDir
		}

		sizeText := ""
		if fields := strings.Fields(meta); len(fields) >= 2 {
			sizeText = fields[1]
		}

		path := name
		if strings.HasPrefix(name, "/") {
			name = strings.TrimPrefix(name, "/")
		} else {
			path = "/" + path
		}

		entries = append(entries, Entry{
			Name:     name,
			Kind:     kind,
			SizeText: sizeText,
			Path:     path,
		})
	}
	return entries
}
