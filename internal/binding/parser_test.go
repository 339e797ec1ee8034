package binding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fehkeys/fehkeys/internal/actions"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    KeyCode
		unknown []byte
		wantErr error
	}{
		{name: "plain letter", spec: "x", want: NewKeyCode('x', 0)},
		{name: "named key", spec: "Escape", want: NewKeyCode(0xff1b, 0)},
		{name: "control", spec: "C-Delete", want: NewKeyCode(0xffff, Control)},
		{name: "all modifiers", spec: "A-C-S-Left", want: NewKeyCode(0xff51, Alt|Control|Shift)},
		{name: "repeated modifier", spec: "C-C-q", want: NewKeyCode('q', Control)},
		{name: "minus with control", spec: "C--", want: NewKeyCode('-', Control)},
		{name: "unknown modifier ignored", spec: "M-q", want: NewKeyCode('q', 0), unknown: []byte{'M'}},
		{name: "lowercase modifier ignored", spec: "c-S-q", want: NewKeyCode('q', Shift), unknown: []byte{'c'}},
		{name: "empty", spec: "", wantErr: ErrEmptyKey},
		{name: "unknown keysym", spec: "C-Nope", wantErr: ErrUnknownKeysym},
		{name: "dangling modifier", spec: "C-", wantErr: ErrUnknownKeysym},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.spec)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Code)
			assert.Equal(t, tt.unknown, got.UnknownModifiers)
		})
	}
}

func TestParser_Parse(t *testing.T) {
	p := NewParser(actions.NewTable("close", "menu_up", "move_left"))

	got, err := p.Parse("close", "x")
	require.NoError(t, err)
	assert.Equal(t, Feh, got.Namespace)
	assert.Equal(t, Binding{Key: NewKeyCode('x', 0), Action: 0}, got.Binding)

	got, err = p.Parse("menu_up", "Up")
	require.NoError(t, err)
	assert.Equal(t, Menu, got.Namespace)
	assert.Equal(t, actions.ID(1), got.Binding.Action)

	got, err = p.Parse("move_left", "S-h")
	require.NoError(t, err)
	assert.Equal(t, Move, got.Namespace)
	assert.Equal(t, NewKeyCode('h', Shift), got.Binding.Key)
}

func TestParser_ParseUnresolvedAction(t *testing.T) {
	p := NewParser(actions.NewTable("close"))

	_, err := p.Parse("bogus_action", "x")
	var ue actions.UnresolvedError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "bogus_action", ue.Name)

	// The action is checked before the key so a bad key cannot hide it.
	_, err = p.Parse("bogus_action", "")
	require.True(t, errors.As(err, &ue))
}

func TestParser_ParseDeclarationUsesRemap(t *testing.T) {
	p := NewParser(actions.NewTable("quit", "menu_close"))

	got, err := p.ParseDeclaration(Declaration{Action: "quit", Key: "Escape", Remap: "menu_close"})
	require.NoError(t, err)
	assert.Equal(t, Menu, got.Namespace)
	assert.Equal(t, actions.ID(1), got.Binding.Action)
}

func TestDefaults_ResolveAgainstShippedTable(t *testing.T) {
	p := NewParser(actions.Default)
	for _, d := range Defaults {
		got, err := p.ParseDeclaration(d)
		require.NoError(t, err, "%s : %s", d.Action, d.Key)
		assert.Empty(t, got.UnknownModifiers)
	}
}
