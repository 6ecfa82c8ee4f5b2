package watch

import (
	"path"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Action is what a change requires from the manager.
type Action int

const (
	// ActionNone ignores the event.
	ActionNone Action = iota
	// ActionImport re-imports a single file.
	ActionImport
	// ActionResync synchronizes a directory subtree.
	ActionResync
)

func (a Action) String() string {
	switch a {
	case ActionImport:
		return "import"
	case ActionResync:
		return "resync"
	default:
		return "none"
	}
}

// Change is a pending update of one registry path.
type Change struct {
	Action Action
	Path   string
}

// Classify maps an event on the registry path p to a change. isDir reports
// whether p currently is a directory; it is ignored for removals.
func Classify(op fsnotify.Op, p string, isDir bool) Change {
	switch {
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return Change{Action: ActionResync, Path: path.Dir(p)}
	case op.Has(fsnotify.Create) && isDir:
		return Change{Action: ActionResync, Path: p}
	case op.Has(fsnotify.Create), op.Has(fsnotify.Write):
		if isDir {
			return Change{}
		}
		return Change{Action: ActionImport, Path: p}
	default:
		return Change{}
	}
}

// Coalesce removes duplicates and changes covered by a resync of an enclosing
// directory. The result is ordered by path, resyncs first.
func Coalesce(changes []Change) []Change {
	resync := make(map[string]struct{})
	imports := make(map[string]struct{})
	for _, c := range changes {
		switch c.Action {
		case ActionResync:
			resync[c.Path] = struct{}{}
		case ActionImport:
			imports[c.Path] = struct{}{}
		}
	}

	covered := func(p string) bool {
		for dir := path.Dir(p); ; dir = path.Dir(dir) {
			if _, ok := resync[dir]; ok {
				return true
			}
			if dir == "." || dir == "/" || !strings.Contains(dir, "/") {
				return false
			}
		}
	}

	var out []Change
	for p := range resync {
		if !covered(p) {
			out = append(out, Change{Action: ActionResync, Path: p})
		}
	}
	for p := range imports {
		if !covered(p) {
			out = append(out, Change{Action: ActionImport, Path: p})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Action != out[j].Action {
			return out[i].Action > out[j].Action
		}
		return out[i].Path < out[j].Path
	})
	return out
}
