package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
)

// FileInfo describes one input file found on disk
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery lists input files. Relative directories passed to its methods
// are resolved against the base path.
type Discovery struct {
	basePath string
}

func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindCSVFiles lists regular files in dir with a .csv extension in any
// case. Names are ordered naturally, so velocity_2 sorts before velocity_10.
// Subdirectories are not searched.
func (d *Discovery) FindCSVFiles(dir string) ([]FileInfo, error) {
	root := d.resolve(dir)
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		files = append(files, FileInfo{
			Path:    filepath.Join(root, e.Name()),
			Name:    e.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.SliceStable(files, func(i, j int) bool { return natural.Less(files[i].Name, files[j].Name) })
	return files, nil
}

// Inventory compares a configured file list with what is on disk
type Inventory struct {
	// Present are configured files that exist, in configured order
	Present []FileInfo
	// Missing are configured names with no matching file
	Missing []string
	// Unlisted are files on disk that are not configured
	Unlisted []FileInfo
}

// Reconcile matches configured names against found files by exact name
func Reconcile(configured []string, found []FileInfo) Inventory {
	byName := make(map[string]FileInfo, len(found))
	for _, f := range found {
		byName[f.Name] = f
	}

	var inv Inventory
	listed := make(map[string]bool, len(configured))
	for _, name := range configured {
		listed[name] = true
		if f, ok := byName[name]; ok {
			inv.Present = append(inv.Present, f)
			continue
		}
		inv.Missing = append(inv.Missing, name)
	}
	for _, f := range found {
		if !listed[f.Name] {
			inv.Unlisted = append(inv.Unlisted, f)
		}
	}
	return inv
}

// Names returns the base names of files
func Names(files []FileInfo) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}

// Exclude returns names without any entry in skip, preserving order
func Exclude(names []string, skip []string) []string {
	drop := make(map[string]bool, len(skip))
	for _, s := range skip {
		drop[s] = true
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !drop[n] {
			out = append(out, n)
		}
	}
	return out
}

func (d *Discovery) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(d.basePath, dir)
}
