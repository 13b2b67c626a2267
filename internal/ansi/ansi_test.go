package ansi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		codes []string
		text  string
		want  string
	}{
		{
			name:  "single code",
			codes: []string{"1"},
			text:  "hello",
			want:  "\x1b[1mhello\x1b[0m",
		},
		{
			name:  "codes joined with semicolons",
			codes: []string{"1", "31", "42"},
			text:  "hello",
			want:  "\x1b[1;31;42mhello\x1b[0m",
		},
		{
			name:  "no codes still emits empty parameter list and reset",
			codes: nil,
			text:  "plain",
			want:  "\x1b[mplain\x1b[0m",
		},
		{
			name:  "empty text",
			codes: []string{"4"},
			text:  "",
			want:  "\x1b[4m\x1b[0m",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Wrap(tc.codes, tc.text))
		})
	}
}

func TestStripRemovesEscapeSequences(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no escapes", input: "plain text", want: "plain text"},
		{name: "sgr sequence", input: "\x1b[1;31mred\x1b[0m", want: "red"},
		{name: "empty parameter list", input: "\x1b[mx\x1b[0m", want: "x"},
		{name: "cursor movement", input: "a\x1b[2Kb", want: "ab"},
		{name: "interleaved", input: "\x1b[32mgreen\x1b[0m and \x1b[44mblue bg\x1b[0m", want: "green and blue bg"},
		{name: "multibyte text survives", input: "\x1b[1molá\x1b[0m", want: "olá"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Strip(tc.input))
		})
	}
}

func TestStripRoundTripsWrap(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "hi", "hello world", "semi;colons", "tabs\tkept"} {
		require.Equal(t, text, Strip(Wrap([]string{"1", "31"}, text)))
	}
}

func TestStripIsIdempotent(t *testing.T) {
	t.Parallel()

	input := "\x1b[1m bold \x1b[0m and \x1b[91mbright\x1b[0m"
	once := Strip(input)
	require.Equal(t, once, Strip(once))
}

func TestVisibleLength(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2, VisibleLength("\x1b[31mhi\x1b[0m"))
	require.Equal(t, 0, VisibleLength("\x1b[m\x1b[0m"))
	require.Equal(t, 3, VisibleLength("olá"))
}
