package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/guitarchords/internal/domain"
)

func apply(b *domain.Fretboard, cmd Command) {
	for _, a := range cmd.Actions {
		b.Apply(a)
	}
}

func TestParsePlaySetsEveryString(t *testing.T) {
	b := domain.NewFretboard(0)
	b.ToggleFret(5, 3)
	b.ToggleMute(2)

	cmd, err := Parse("  PLAY x 3, 2;0 x 13 ", b)
	require.NoError(t, err)
	assert.True(t, cmd.Submit)
	apply(b, cmd)

	assert.Equal(t, []int{2}, b.FretsOn(1))
	assert.Equal(t, []int{1}, b.FretsOn(2))
	assert.Empty(t, b.FretsOn(3))
	assert.Equal(t, []int{12}, b.FretsOn(5))
	assert.Equal(t, [domain.Strings]bool{false, false, false, false, true, false}, b.Muted)
}

func TestParseSubmitAlias(t *testing.T) {
	cmd, err := Parse("submit 0 0 0 0 0 0", domain.NewFretboard(1))
	require.NoError(t, err)
	assert.True(t, cmd.Submit)
	assert.Empty(t, cmd.Actions)
}

func TestParseResetMutesAllAndReleasesFrets(t *testing.T) {
	b := domain.NewFretboard(4)
	b.ToggleMute(0)
	b.ToggleFret(0, 1)
	b.ToggleFret(7, 1)
	b.ToggleFret(2, 5)

	for _, text := range []string{"mute", " Reset "} {
		c := *b
		cmd, err := Parse(text, &c)
		require.NoError(t, err)
		assert.False(t, cmd.Submit)
		apply(&c, cmd)
		for s := 0; s < domain.Strings; s++ {
			assert.Empty(t, c.FretsOn(s))
			assert.Equal(t, s != 4, c.Muted[s], "string %d", s)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []struct {
		text string
		want error
	}{
		{"strum", ErrUnrecognized},
		{"play", ErrUnrecognized},
		{"play a b c d e f", ErrUnrecognized},
		{"mute 3", ErrUnrecognized},
		{"play 1 2 3", ErrTokenCount},
		{"play 0 0 0 0 0 0 0", ErrTokenCount},
		{"play 0 0 0 0 0 14", ErrBadToken},
		{"play 0 0 xx 0 0 0", ErrBadToken},
	}
	b := domain.NewFretboard(0)
	b.ToggleFret(3, 2)
	before := *b
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			cmd, err := Parse(tc.text, b)
			require.ErrorIs(t, err, tc.want)
			assert.Empty(t, cmd.Actions)
			assert.False(t, cmd.Submit)
			assert.Equal(t, before, *b)
		})
	}
}
