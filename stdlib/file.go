package stdlib

import (
	"github.com/patlang/patlib"
	"github.com/patlang/patlib/literal"
)

// The std.file namespace. Every function is dangerous tier: the host must
// grant permission before the registry dispatches to any of them. All
// operations except open and close share the handle-validity precondition
// through FileTable.Get.

func (l *Library) registerFile(r *patlib.Registry) {
	// open(path, mode)
	r.RegisterDangerous(nsStdFile, "open", patlib.Exactly(2), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		path, err := patlib.ToString(args[0], false)
		if err != nil {
			return nil, err
		}
		modeCode, err := patlib.ToUint64(args[1])
		if err != nil {
			return nil, err
		}

		var mode patlib.FileMode
		switch modeCode {
		case 1:
			mode = patlib.FileModeRead
		case 2:
			mode = patlib.FileModeWrite
		case 3:
			mode = patlib.FileModeCreate
		default:
			return nil, patlib.Abortf("invalid file open mode")
		}

		f, err := l.openFile(path, mode)
		if err != nil {
			return nil, patlib.Abortf("failed to open file %s", path)
		}
		return literal.U64(l.files.Add(f)), nil
	})

	// close(file)
	r.RegisterDangerous(nsStdFile, "close", patlib.Exactly(1), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		id, err := patlib.ToUint64(args[0])
		if err != nil {
			return nil, err
		}
		f, err := l.files.Take(id)
		if err != nil {
			return nil, err
		}
		if err := f.Close(); err != nil {
			return nil, patlib.Abortf("failed to close file: %v", err)
		}
		return nil, nil
	})

	// read(file, size)
	r.RegisterDangerous(nsStdFile, "read", patlib.Exactly(2), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		f, err := l.lookupFile(args[0])
		if err != nil {
			return nil, err
		}
		size, err := patlib.ToUint64(args[1])
		if err != nil {
			return nil, err
		}
		data, err := f.ReadString(int(size))
		if err != nil {
			return nil, patlib.Abortf("failed to read from file: %v", err)
		}
		return literal.String(data), nil
	})

	// write(file, data)
	r.RegisterDangerous(nsStdFile, "write", patlib.Exactly(2), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		f, err := l.lookupFile(args[0])
		if err != nil {
			return nil, err
		}
		data, err := patlib.ToString(args[1], true)
		if err != nil {
			return nil, err
		}
		if err := f.WriteString(data); err != nil {
			return nil, patlib.Abortf("failed to write to file: %v", err)
		}
		return nil, nil
	})

	// seek(file, offset)
	r.RegisterDangerous(nsStdFile, "seek", patlib.Exactly(2), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		f, err := l.lookupFile(args[0])
		if err != nil {
			return nil, err
		}
		offset, err := patlib.ToUint64(args[1])
		if err != nil {
			return nil, err
		}
		if err := f.Seek(offset); err != nil {
			return nil, patlib.Abortf("failed to seek in file: %v", err)
		}
		return nil, nil
	})

	// size(file)
	r.RegisterDangerous(nsStdFile, "size", patlib.Exactly(1), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		f, err := l.lookupFile(args[0])
		if err != nil {
			return nil, err
		}
		size, err := f.Size()
		if err != nil {
			return nil, patlib.Abortf("failed to query file size: %v", err)
		}
		return literal.U64(size), nil
	})

	// resize(file, size)
	r.RegisterDangerous(nsStdFile, "resize", patlib.Exactly(2), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		f, err := l.lookupFile(args[0])
		if err != nil {
			return nil, err
		}
		size, err := patlib.ToUint64(args[1])
		if err != nil {
			return nil, err
		}
		if err := f.SetSize(size); err != nil {
			return nil, patlib.Abortf("failed to resize file: %v", err)
		}
		return nil, nil
	})

	// flush(file)
	r.RegisterDangerous(nsStdFile, "flush", patlib.Exactly(1), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		f, err := l.lookupFile(args[0])
		if err != nil {
			return nil, err
		}
		if err := f.Flush(); err != nil {
			return nil, patlib.Abortf("failed to flush file: %v", err)
		}
		return nil, nil
	})

	// remove(file). Deletes the underlying file and releases the handle:
	// any later operation on the id aborts as invalid.
	r.RegisterDangerous(nsStdFile, "remove", patlib.Exactly(1), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		id, err := patlib.ToUint64(args[0])
		if err != nil {
			return nil, err
		}
		f, err := l.files.Take(id)
		if err != nil {
			return nil, err
		}
		if err := f.Remove(); err != nil {
			return nil, patlib.Abortf("failed to remove file: %v", err)
		}
		return nil, nil
	})
}

// lookupFile coerces a handle argument and resolves it in the table.
func (l *Library) lookupFile(arg literal.Value) (patlib.File, error) {
	id, err := patlib.ToUint64(arg)
	if err != nil {
		return nil, err
	}
	return l.files.Get(id)
}
