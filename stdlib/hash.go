package stdlib

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/patlang/patlib"
	"github.com/patlang/patlib/literal"
)

func registerHash(r *patlib.Registry) {
	// blake2b(args...) concatenates the string-coerced arguments and
	// returns the BLAKE2b-256 digest as lowercase hex.
	r.Register(nsStdHash, "blake2b", patlib.AtLeast(1), func(_ patlib.EvaluationContext, args []literal.Value) (literal.Value, error) {
		parts := make([][]byte, 0, len(args))
		for _, a := range args {
			s, err := patlib.ToString(a, true)
			if err != nil {
				return nil, err
			}
			parts = append(parts, []byte(s))
		}
		digest := blake2b.Sum256(patlib.Concat(parts...))
		return literal.String(hex.EncodeToString(digest[:])), nil
	})
}
