package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_NoCriteria(t *testing.T) {
	// No prefix and no leading space when the criteria set is empty.
	assert.Equal(t, "focus", Build("focus"))
}

func TestBuild_WithCriteria(t *testing.T) {
	assert.Equal(t, "[con_id=123] focus", Build("focus", ConID(123)))
	assert.Equal(t, "[title=mpv floating] focus", Build("focus", Title("mpv"), Floating()))
}

func TestCommand_Raw(t *testing.T) {
	assert.Equal(t, "workspace 3", Raw("workspace 3").String())
	assert.Equal(t, "", Command{}.String())
}

func TestCommand_Exec(t *testing.T) {
	assert.Equal(t, "exec st", Exec("st").String())
	assert.Equal(t, "[con_id=123] exec st", Exec("st").WithCriteria(ConID(123)).String())
}

func TestCommand_WithCriteria_Order(t *testing.T) {
	cmd := Raw("123123").WithCriteria(ConMark("123"), ConID(123), WorkspaceFocused())
	assert.Equal(t, "[con_mark=123 con_id=123 workspace=__focused__] 123123", cmd.String())
}

func TestCommand_WithCriteria_Extends(t *testing.T) {
	cmd := Raw("kill").WithCriteria(Tiling()).WithCriteria(Class("firefox"))
	assert.Equal(t, "[tiling class=firefox] kill", cmd.String())
}

func TestCommand_WithCriteria_Immutable(t *testing.T) {
	base := Raw("focus").WithCriteria(Floating())
	_ = base.WithCriteria(Title("mpv"))
	assert.Equal(t, "[floating] focus", base.String())
}

func TestCommand_RenderDeterministic(t *testing.T) {
	build := func() string {
		return Build("focus", Title("mpv"), Floating())
	}
	first := build()
	for i := 0; i < 100; i++ {
		require.Equal(t, first, build())
	}
}
