package platform

import (
	"errors"
	"testing"

	"deepworktimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugName(t *testing.T) {
	assert.Equal(t, "deepworktimer", slugName("DeepWorkTimer"))
	assert.Equal(t, "deep-work-timer", slugName(" Deep Work Timer "))
	assert.Equal(t, "deepworktimer", slugName(""))
}

func TestCommandLineQuotesArguments(t *testing.T) {
	tests := []struct {
		name     string
		execPath string
		args     []string
		want     string
	}{
		{name: "bare", execPath: "/usr/bin/dwt", want: "/usr/bin/dwt"},
		{name: "spaces in path", execPath: "/opt/deep work/dwt", want: `"/opt/deep work/dwt"`},
		{name: "arguments", execPath: "/usr/bin/dwt", args: []string{"run", "--settings", "/tmp/my settings.json"}, want: `/usr/bin/dwt run --settings "/tmp/my settings.json"`},
		{name: "empty argument", execPath: "dwt", args: []string{""}, want: `dwt ""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commandLine(tt.execPath, tt.args))
		})
	}
}

func TestNativeModifiers(t *testing.T) {
	assert.Equal(t, uint32(modNoRepeat|modControl|modAlt), nativeModifiers(model.ModCtrl|model.ModAlt))
	assert.Equal(t, uint32(modNoRepeat|modShift|modWin), nativeModifiers(model.ModShift|model.ModSuper))
}

func TestVirtualKey(t *testing.T) {
	key, ok := virtualKey('1')
	require.True(t, ok)
	assert.Equal(t, uint32(0x31), key)

	key, ok = virtualKey('M')
	require.True(t, ok)
	assert.Equal(t, uint32(0x4D), key)

	key, ok = virtualKey('m')
	require.True(t, ok)
	assert.Equal(t, uint32(0x4D), key)

	_, ok = virtualKey('-')
	assert.False(t, ok)
}

func TestOpacityToAlpha(t *testing.T) {
	assert.Equal(t, uint8(0), opacityToAlpha(-1))
	assert.Equal(t, uint8(217), opacityToAlpha(0.85))
	assert.Equal(t, uint8(255), opacityToAlpha(2))
}

func TestZeroHandleIsNoOp(t *testing.T) {
	control := NewWindowControl()
	assert.NoError(t, control.SetClickThrough(0, true))
	assert.NoError(t, control.Move(0, model.Point{X: 10, Y: 10}))
	assert.NoError(t, control.SetTopmost(0))
	assert.NoError(t, control.SetOpacity(0, 0.5))

	_, err := control.Bounds(0)
	assert.ErrorIs(t, err, ErrNoHandle)
	_, err = control.IsClickThrough(0)
	assert.ErrorIs(t, err, ErrNoHandle)
}

func TestSingleInstanceGuard(t *testing.T) {
	name := "deepworktimer-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.NotEmpty(t, guard.Address())

	_, err = AcquireSingleInstance(name)
	assert.True(t, errors.Is(err, ErrAlreadyRunning))

	require.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
	assert.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestInstanceAddressIsStable(t *testing.T) {
	assert.Equal(t, instanceAddress("DeepWorkTimer"), instanceAddress("DeepWorkTimer"))
}
