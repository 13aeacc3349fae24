package report

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Entry is a single item in a directory listing.
type Entry struct {
	Name  string
	IsDir bool
	// Size in bytes, only meaningful for files.
	Size int64
}

func entryFromInfo(name string, info fs.FileInfo) Entry {
	return Entry{Name: name, IsDir: info.IsDir(), Size: info.Size()}
}

// ListDir returns the immediate entries of dir sorted by name. Symlinks are
// described as links, use Resolve to follow them.
func ListDir(fsys afero.Fs, dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, entryFromInfo(info.Name(), info))
	}
	return entries, nil
}

// Resolve stats the entry so a symlink reports what it points to. If that
// fails the warning is logged and the entry is returned unchanged.
func (e Entry) Resolve(fsys afero.Fs, dir string) Entry {
	target, err := fsys.Stat(path.Join(dir, e.Name))
	if err != nil {
		log.WithField("entry", e.Name).WithError(err).Warn("could not stat directory entry")
		return e
	}
	return entryFromInfo(e.Name, target)
}

func (r *reporter) directoryInfo() error {
	r.header("Directory info")

	cwd, err := r.virtOS.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	r.out.Printf("Working directory: %s\n", cwd)

	entries, err := ListDir(r.virtOS, cwd)
	switch {
	case errors.Is(err, fs.ErrPermission):
		r.out.Println(r.color.Sprintf(ColorBoldRed, "Permission denied reading the current directory"))
	case err != nil:
		r.out.Println(r.color.Sprintf(ColorBoldRed, "Error reading directory: %v", err))
	default:
		if err := r.listEntries(cwd, entries); err != nil {
			return err
		}
	}

	r.out.Println()
	return nil
}

// listEntries prints at most MaxEntries entries, only those are resolved.
func (r *reporter) listEntries(dir string, entries []Entry) error {
	r.out.Printf("Entries: %d\n", len(entries))
	if len(entries) == 0 {
		r.out.Println("Directory is empty")
		return nil
	}

	r.out.Println()
	r.out.Println("Files:")

	shown := entries
	if len(shown) > r.cfg.MaxEntries {
		shown = shown[:r.cfg.MaxEntries]
	}
	for i, entry := range shown {
		if err := checkpoint(r.ctx); err != nil {
			return err
		}
		entry = entry.Resolve(r.virtOS, dir)
		if entry.IsDir {
			r.out.Printf("  %2d. %s/\n", i+1, r.color.Sprintf(ColorBoldBlue, "%s", entry.Name))
		} else {
			r.out.Printf("  %2d. %s (%d bytes)\n", i+1, entry.Name, entry.Size)
		}
	}

	if remainder := len(entries) - len(shown); remainder > 0 {
		r.out.Printf("  ... and %d more\n", remainder)
	}
	return nil
}
