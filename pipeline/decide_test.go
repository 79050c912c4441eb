package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		version Version
		input   Availability
		want    Action
		wantErr Kind
	}{
		{VersionUnspecified, Piped, ActionPassthrough, 0},
		{VersionUnspecified, Interactive, ActionRandom, 0},
		{VersionRandom, Piped, ActionRandom, 0},
		{VersionRandom, Interactive, ActionRandom, 0},
		{VersionNameDerived, Piped, ActionNameDerived, 0},
		{VersionNameDerived, Interactive, 0, KindMissingInput},
	}

	for _, tt := range tests {
		t.Run(tt.version.String()+"/"+tt.input.String(), func(t *testing.T) {
			got, err := Decide(tt.version, tt.input)
			if tt.wantErr != 0 {
				assert.True(t, IsKind(err, tt.wantErr))
				assert.EqualError(t, err, "stdin is a tty; pipe something in")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecide_UnknownVersion(t *testing.T) {
	_, err := Decide(Version(9), Piped)
	assert.Error(t, err)
}

func TestAction_ReadsInput(t *testing.T) {
	assert.False(t, ActionRandom.ReadsInput())
	assert.True(t, ActionNameDerived.ReadsInput())
	assert.True(t, ActionPassthrough.ReadsInput())
}
