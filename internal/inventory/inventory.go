// Package inventory enumerates ROM files on the local filesystem and on the
// cart's SD card, and diffs the two sets by normalized name.
package inventory

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/TheLeggett/Summer-Breeze/internal/deployer"
)

// Extensions is the recognized ROM extension set, matched case-insensitively.
var Extensions = []string{".z64", ".n64", ".v64"}

// IsRomName reports whether name carries a recognized ROM extension.
func IsRomName(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// NormalizeName derives the comparison key for a ROM name: at most one
// recognized extension is stripped (case-insensitive, whole suffix), then
// the remainder is lowercased and trimmed. Each check consumes the full
// suffix once, so stacked recognized extensions cannot collide.
func NormalizeName(name string) string {
	lower := strings.ToLower(name)
	for _, ext := range Extensions {
		if strings.HasSuffix(lower, ext) {
			name = name[:len(name)-len(ext)]
			break
		}
	}
	return strings.TrimSpace(strings.ToLower(name))
}

// LocalRom is a ROM file found under the local roms directory.
type LocalRom struct {
	Path string // full filesystem path
	Name string // base filename including extension
	Size int64  // size in bytes
}

// ScanLocal recursively walks dir and returns the ROM files beneath it,
// sorted case-insensitively by filename. A missing directory yields an
// empty result without error.
func ScanLocal(dir string) ([]LocalRom, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var roms []LocalRom
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsRomName(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		roms = append(roms, LocalRom{Path: path, Name: d.Name(), Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByName(roms)
	return roms, nil
}

// ScanMenuVersions returns the menu files (ROM-extension) directly inside
// dir, sorted case-insensitively by filename. The menu directory is flat;
// no recursion.
func ScanMenuVersions(dir string) ([]LocalRom, error) {
	return scanFlat(dir, IsRomName)
}

// ScanMusic returns the .mp3 files directly inside dir, sorted
// case-insensitively by filename.
func ScanMusic(dir string) ([]LocalRom, error) {
	return scanFlat(dir, func(name string) bool {
		return strings.EqualFold(filepath.Ext(name), ".mp3")
	})
}

func scanFlat(dir string, match func(name string) bool) ([]LocalRom, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []LocalRom
	for _, e := range entries {
		if e.IsDir() || !match(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		files = append(files, LocalRom{
			Path: filepath.Join(dir, e.Name()),
			Name: e.Name(),
			Size: info.Size(),
		})
	}

	sortByName(files)
	return files, nil
}

func sortByName(roms []LocalRom) {
	sort.Slice(roms, func(i, j int) bool {
		return strings.ToLower(roms[i].Name) < strings.ToLower(roms[j].Name)
	})
}

// Lister is the remote listing capability the walk needs; satisfied by
// *deployer.Client.
type Lister interface {
	List(path string) []deployer.Entry
}

// WalkRemote depth-first walks the SD card from root and collects every file
// entry with a ROM extension. The listing for each directory is fetched live;
// maxDepth caps the recursion as a defensive measure against a misbehaving
// deployer.
func WalkRemote(l Lister, root string, maxDepth int) []deployer.Entry {
	var found []deployer.Entry
	walkRemote(l, root, maxDepth, &found)
	return found
}

func walkRemote(l Lister, path string, depth int, found *[]deployer.Entry) {
	if depth < 0 {
		return
	}
	for _, e := range l.List(path) {
		if e.IsDir() {
			walkRemote(l, e.Path, depth-1, found)
		} else if IsRomName(e.Name) {
			*found = append(*found, e)
		}
	}
}

// Diff partitions local ROMs by whether a remote ROM with the same
// normalized name exists.
type Diff struct {
	OnCart  []LocalRom
	Missing []LocalRom
}

// Compare diffs local ROMs against a remote inventory by normalized name
// only. Sizes are ignored: the device truncates and rounds its size display,
// so names are the only reliable key.
func Compare(local []LocalRom, remote []deployer.Entry) Diff {
	remoteNames := make(map[string]struct{}, len(remote))
	for _, e := range remote {
		remoteNames[NormalizeName(e.Name)] = struct{}{}
	}

	var diff Diff
	for _, rom := range local {
		if _, ok := remoteNames[NormalizeName(rom.Name)]; ok {
			diff.OnCart = append(diff.OnCart, rom)
		} else {
			diff.Missing = append(diff.Missing, rom)
		}
	}
	return diff
}
