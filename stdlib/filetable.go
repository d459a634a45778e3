package stdlib

import (
	"go.uber.org/multierr"

	"github.com/patlang/patlib"
)

// FileTable owns the open file handles of one evaluation session. Handle ids
// are unique among mapped entries; the id counter is monotonic and never
// reused, and 0 is never issued. The table is not synchronized: builtins run
// one at a time within a session.
type FileTable struct {
	lastID uint64
	open   map[uint64]patlib.File
}

func NewFileTable() *FileTable {
	return &FileTable{open: make(map[uint64]patlib.File)}
}

// Add maps f under the next handle id and returns the id.
func (t *FileTable) Add(f patlib.File) uint64 {
	t.lastID++
	t.open[t.lastID] = f
	return t.lastID
}

// Get returns the file mapped under id. An unmapped id aborts; this is the
// shared precondition of every std.file operation except open.
func (t *FileTable) Get(id uint64) (patlib.File, error) {
	f, ok := t.open[id]
	if !ok {
		return nil, patlib.Abortf("failed to access invalid file")
	}
	return f, nil
}

// Take removes the mapping under id and returns the file, with the same
// precondition as Get. The id is never issued again.
func (t *FileTable) Take(id uint64) (patlib.File, error) {
	f, err := t.Get(id)
	if err != nil {
		return nil, err
	}
	delete(t.open, id)
	return f, nil
}

// Len returns the number of currently mapped handles.
func (t *FileTable) Len() int { return len(t.open) }

// CloseAll closes and unmaps every handle, collecting close failures.
func (t *FileTable) CloseAll() error {
	var err error
	for id, f := range t.open {
		err = multierr.Append(err, f.Close())
		delete(t.open, id)
	}
	return err
}
