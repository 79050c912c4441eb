package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Request
	}{
		{name: "defaults", args: nil, want: Request{Version: VersionUnspecified, Format: FormatLowercase}},
		{name: "v4", args: []string{"v4"}, want: Request{Version: VersionRandom, Format: FormatLowercase}},
		{name: "v5", args: []string{"v5"}, want: Request{Version: VersionNameDerived, Format: FormatLowercase}},
		{name: "short upper", args: []string{"-u"}, want: Request{Format: FormatUppercase}},
		{name: "capital upper", args: []string{"-U"}, want: Request{Format: FormatUppercase}},
		{name: "long upper", args: []string{"--uppercase"}, want: Request{Format: FormatUppercase}},
		{name: "binary", args: []string{"-b"}, want: Request{Format: FormatBinary}},
		{name: "long binary", args: []string{"--binary"}, want: Request{Format: FormatBinary}},
		{name: "last format wins", args: []string{"-l", "-u"}, want: Request{Format: FormatUppercase}},
		{name: "last format wins reversed", args: []string{"-u", "--lowercase"}, want: Request{Format: FormatLowercase}},
		{name: "last version wins", args: []string{"v5", "v4"}, want: Request{Version: VersionRandom}},
		{name: "independent axes", args: []string{"-b", "v5", "-U"}, want: Request{Version: VersionNameDerived, Format: FormatUppercase}},
		{name: "repeated", args: []string{"-u", "-u", "-u"}, want: Request{Format: FormatUppercase}},
		{name: "help", args: []string{"v5", "-h", "-b"}, want: Request{Version: VersionNameDerived, Format: FormatBinary, Help: true}},
		{name: "long help", args: []string{"--help"}, want: Request{Help: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.args, FormatLowercase)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_RepeatIsIdempotent(t *testing.T) {
	single, err := Resolve([]string{"-u"}, FormatLowercase)
	require.NoError(t, err)
	conflict, err := Resolve([]string{"-l", "-u"}, FormatLowercase)
	require.NoError(t, err)
	assert.Equal(t, single, conflict)
}

func TestResolve_DefaultFormat(t *testing.T) {
	req, err := Resolve([]string{"v4"}, FormatBinary)
	require.NoError(t, err)
	assert.Equal(t, FormatBinary, req.Format)

	req, err = Resolve([]string{"v4", "-l"}, FormatBinary)
	require.NoError(t, err)
	assert.Equal(t, FormatLowercase, req.Format)
}

func TestResolve_Unrecognized(t *testing.T) {
	for _, args := range [][]string{
		{"--bogus"},
		{"v4", "--bogus"},
		{"V4"},
		{"v6"},
		{"-x", "-u"},
		{"-h", "--bogus"},
		{"--bogus", "--help"},
		{""},
	} {
		_, err := Resolve(args, FormatLowercase)
		require.Error(t, err, "%q", args)
		assert.True(t, IsKind(err, KindUnrecognizedOption))
	}

	_, err := Resolve([]string{"-u", "--bogus"}, FormatLowercase)
	assert.Contains(t, err.Error(), `"--bogus"`)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":          FormatLowercase,
		"lowercase": FormatLowercase,
		"uppercase": FormatUppercase,
		"binary":    FormatBinary,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("hex")
	assert.Error(t, err)
}
