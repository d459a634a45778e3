// Package stdlib implements the builtin surface of the pattern language:
// the std, std.mem, std.string, std.http, std.file, std.math and std.hash
// namespaces. The functions mirror the contracts of the evaluation bridge:
// arguments arrive count-validated, coercion failures and precondition
// violations abort, and side-effect-only functions return no value.
package stdlib

import (
	"github.com/patlang/patlib"
	"github.com/patlang/patlib/hostio"
)

var (
	nsStd       = []string{"std"}
	nsStdMem    = []string{"std", "mem"}
	nsStdString = []string{"std", "string"}
	nsStdHTTP   = []string{"std", "http"}
	nsStdFile   = []string{"std", "file"}
	nsStdMath   = []string{"std", "math"}
	nsStdHash   = []string{"std", "hash"}
)

// FileOpener opens a host file for std.file.open.
type FileOpener func(path string, mode patlib.FileMode) (patlib.File, error)

// Library owns the session-scoped state of the builtins: the file handle
// table and the host capability hooks. One Library serves one evaluation
// session; builtins run synchronously and sequentially within it.
type Library struct {
	files    *FileTable
	openFile FileOpener
	net      patlib.Net
}

// LibraryOption configures a Library.
type LibraryOption func(*Library)

// WithFileOpener replaces the default os-backed file opener.
func WithFileOpener(open FileOpener) LibraryOption {
	return func(l *Library) { l.openFile = open }
}

// WithNet replaces the default HTTP-backed network capability.
func WithNet(net patlib.Net) LibraryOption {
	return func(l *Library) { l.net = net }
}

// New creates a Library with an empty handle table and the hostio defaults.
func New(opts ...LibraryOption) *Library {
	l := &Library{
		files:    NewFileTable(),
		openFile: hostio.OpenFile,
		net:      hostio.NewNet(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Register adds every builtin to r. Call once, before evaluation begins.
func (l *Library) Register(r *patlib.Registry) {
	registerStd(r)
	registerMem(r)
	registerString(r)
	l.registerFile(r)
	l.registerHTTP(r)
	registerMath(r)
	registerHash(r)
}

// Close is the session teardown hook: it closes and unmaps every open file
// handle. Nothing runs automatically on an evaluation abort; handles stay
// open until closed by script or by this call.
func (l *Library) Close() error {
	return l.files.CloseAll()
}
