package stdlib

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/patlang/patlib"
	"github.com/patlang/patlib/literal"
)

type fakePattern struct {
	rendered string
}

func (p fakePattern) ToString() string { return p.rendered }

func TestPrint(t *testing.T) {
	reg := newTestRegistry(New())
	ctx, logs := observedContext(nil)

	t.Run("plain message", func(t *testing.T) {
		_, err := reg.Invoke(ctx, nsStd, "print", []literal.Value{literal.String("hello")})
		require.NoError(t, err)
	})
	t.Run("positional substitution", func(t *testing.T) {
		ret, err := reg.Invoke(ctx, nsStd, "print", []literal.Value{
			literal.String("value = {{index . 0}}, flag = {{index . 1}}"),
			literal.U64(16),
			literal.Bool(true),
		})
		require.NoError(t, err)
		require.Nil(t, ret)
	})

	entries := logs.All()
	require.EqualValues(t, 2, len(entries))
	require.EqualValues(t, zapcore.InfoLevel, entries[0].Level)
	require.EqualValues(t, "hello", entries[0].Message)
	require.EqualValues(t, "value = 16, flag = true", entries[1].Message)
}

func TestFormat(t *testing.T) {
	reg := newTestRegistry(New())
	ctx, _ := observedContext(nil)

	t.Run("renders and returns", func(t *testing.T) {
		ret, err := reg.Invoke(ctx, nsStd, "format", []literal.Value{
			literal.String("{{index . 0}} at {{index . 1}}"),
			literal.S64(-1),
			literal.U64(0x10),
		})
		require.NoError(t, err)
		require.EqualValues(t, literal.String("-1 at 16"), ret)
	})
	t.Run("pattern arguments render through their capability", func(t *testing.T) {
		ret, err := reg.Invoke(ctx, nsStd, "format", []literal.Value{
			literal.String("{{index . 0}}"),
			literal.Pattern{Ref: fakePattern{rendered: "u32 magic = 0xCAFEBABE"}},
		})
		require.NoError(t, err)
		require.EqualValues(t, literal.String("u32 magic = 0xCAFEBABE"), ret)
	})
	t.Run("malformed template aborts", func(t *testing.T) {
		_, err := reg.Invoke(ctx, nsStd, "format", []literal.Value{
			literal.String("{{index ."),
			literal.U64(1),
		})
		require.True(t, patlib.IsAbort(err))
		require.Contains(t, err.Error(), "format error")
	})
	t.Run("missing argument aborts", func(t *testing.T) {
		_, err := reg.Invoke(ctx, nsStd, "format", []literal.Value{
			literal.String("{{index . 5}}"),
			literal.U64(1),
		})
		require.True(t, patlib.IsAbort(err))
		require.Contains(t, err.Error(), "format error")
	})
}

func TestEnv(t *testing.T) {
	reg := newTestRegistry(New())
	ctx, logs := observedContext(nil)
	ctx.Env = map[string]string{"PAT_INCLUDE": "/usr/share/pat"}

	t.Run("present", func(t *testing.T) {
		ret, err := reg.Invoke(ctx, nsStd, "env", []literal.Value{literal.String("PAT_INCLUDE")})
		require.NoError(t, err)
		require.EqualValues(t, literal.String("/usr/share/pat"), ret)
	})
	t.Run("missing soft-fails with a warning", func(t *testing.T) {
		ret, err := reg.Invoke(ctx, nsStd, "env", []literal.Value{literal.String("NO_SUCH_VAR")})
		require.NoError(t, err)
		require.EqualValues(t, literal.String(""), ret)

		entries := logs.All()
		require.EqualValues(t, 1, len(entries))
		require.EqualValues(t, zapcore.WarnLevel, entries[0].Level)
		require.Contains(t, entries[0].Message, "NO_SUCH_VAR")
	})
}

func TestSizeofPack(t *testing.T) {
	reg := newTestRegistry(New())
	ctx, _ := observedContext(nil)

	ret, err := reg.Invoke(ctx, nsStd, "sizeof_pack", nil)
	require.NoError(t, err)
	require.EqualValues(t, literal.U64(0), ret)

	ret, err = reg.Invoke(ctx, nsStd, "sizeof_pack", []literal.Value{
		literal.U64(1), literal.String("x"), literal.Bool(false),
	})
	require.NoError(t, err)
	require.EqualValues(t, literal.U64(3), ret)
}

func TestErrorAndWarning(t *testing.T) {
	reg := newTestRegistry(New())
	ctx, logs := observedContext(nil)

	t.Run("error aborts with the message", func(t *testing.T) {
		_, err := reg.Invoke(ctx, nsStd, "error", []literal.Value{literal.String("unexpected magic")})
		require.True(t, patlib.IsAbort(err))
		require.EqualValues(t, "unexpected magic", err.Error())
	})
	t.Run("error coerces non-strings", func(t *testing.T) {
		_, err := reg.Invoke(ctx, nsStd, "error", []literal.Value{literal.S64(-3)})
		require.True(t, patlib.IsAbort(err))
		require.EqualValues(t, "-3", err.Error())
	})
	t.Run("warning logs and returns nothing", func(t *testing.T) {
		ret, err := reg.Invoke(ctx, nsStd, "warning", []literal.Value{literal.String("deprecated field")})
		require.NoError(t, err)
		require.Nil(t, ret)

		entries := logs.All()
		require.EqualValues(t, 1, len(entries))
		require.EqualValues(t, zapcore.WarnLevel, entries[0].Level)
		require.EqualValues(t, "deprecated field", entries[0].Message)
	})
}
