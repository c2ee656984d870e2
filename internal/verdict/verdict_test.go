package verdict

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessages(t *testing.T) {
	testCases := []struct {
		name string
		err  *EnforcedTypingError
		want string
	}{
		{
			name: "plain",
			err:  Mismatch("return", "int", "str"),
			want: "'return' is a int, but should be str.",
		},
		{
			name: "pair",
			err:  PairMismatch("data", "str", "str", "str", "int"),
			want: "'data' has a key type of str and a value type of str.\nShould have a key type of str and a value type of int.",
		},
		{
			name: "index",
			err:  IndexMismatch("items", 2, "str", "int"),
			want: "'items' has a str at index 2, but should be int.",
		},
		{
			name: "length",
			err:  LengthMismatch("point", 3, 2),
			want: "'point' has a length of 3, but should be a length of 2.",
		},
		{
			name: "arity",
			err:  Arity("items", "list[int, str]", 2, 1),
			want: "'items' is annotated as list[int, str] with 2 sub-types, but that container takes 1.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestEnforcedTypingError_Matching(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("calling greet: %w", InvalidAnnotation("user", "list[Nope]", cause))

	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.ErrorIs(t, err, cause)

	var typingErr *EnforcedTypingError
	require.True(t, errors.As(err, &typingErr))
	assert.Contains(t, typingErr.Error(), `"list[Nope]"`)
}
