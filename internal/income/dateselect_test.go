package income

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	day1 = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	day2 = time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	day3 = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
)

func TestNewDateSelector(t *testing.T) {
	s, err := NewDateSelector(PickerModal)
	require.NoError(t, err)
	assert.Equal(t, PickerModal, s.Mode())

	s, err = NewDateSelector(PickerInline)
	require.NoError(t, err)
	assert.Equal(t, PickerInline, s.Mode())

	s, err = NewDateSelector(PickerAuto)
	require.NoError(t, err)
	assert.Contains(t, []PickerMode{PickerModal, PickerInline}, s.Mode())

	_, err = NewDateSelector("wheel")
	assert.Error(t, err)
}

func TestPlatformPickerMode(t *testing.T) {
	assert.Equal(t, PickerInline, PlatformPickerMode("darwin"))
	assert.Equal(t, PickerInline, PlatformPickerMode("ios"))
	assert.Equal(t, PickerModal, PlatformPickerMode("linux"))
	assert.Equal(t, PickerModal, PlatformPickerMode("android"))
	assert.Equal(t, PickerModal, PlatformPickerMode("windows"))
}

func TestModalDateSelector(t *testing.T) {
	t.Run("changes are staged until done", func(t *testing.T) {
		f := NewForm(day1)
		s := &ModalDateSelector{}

		s.Open(&f)
		assert.True(t, s.Visible(f))
		assert.True(t, f.DatePickerVisible)

		s.Change(&f, day2)
		assert.Equal(t, day1, f.Date, "form untouched before confirmation")
		assert.Equal(t, day2, s.Shown(f))

		s.Done(&f)
		assert.Equal(t, day2, f.Date)
		assert.False(t, s.Visible(f))
		assert.False(t, f.DatePickerVisible)
	})

	t.Run("cancel discards the staged date", func(t *testing.T) {
		f := NewForm(day1)
		s := &ModalDateSelector{}

		s.Open(&f)
		s.Change(&f, day3)
		s.Cancel(&f)

		assert.Equal(t, day1, f.Date)
		assert.False(t, s.Visible(f))
		assert.Equal(t, day1, s.Shown(f))
	})

	t.Run("changes while closed are ignored", func(t *testing.T) {
		f := NewForm(day1)
		s := &ModalDateSelector{}

		s.Change(&f, day2)
		s.Done(&f)
		assert.Equal(t, day1, f.Date)
	})
}

func TestInlineDateSelector(t *testing.T) {
	t.Run("changes apply immediately", func(t *testing.T) {
		f := NewForm(day1)
		s := &InlineDateSelector{}

		s.Open(&f)
		assert.True(t, s.Visible(f))

		s.Change(&f, day2)
		assert.Equal(t, day2, f.Date)
		assert.Equal(t, day2, s.Shown(f))

		s.Done(&f)
		assert.Equal(t, day2, f.Date)
		assert.False(t, s.Visible(f))
	})

	t.Run("cancel hides without reverting", func(t *testing.T) {
		f := NewForm(day1)
		s := &InlineDateSelector{}

		s.Open(&f)
		s.Change(&f, day3)
		s.Cancel(&f)

		assert.Equal(t, day3, f.Date)
		assert.False(t, f.DatePickerVisible)
	})

	t.Run("changes while hidden are ignored", func(t *testing.T) {
		f := NewForm(day1)
		s := &InlineDateSelector{}

		s.Change(&f, day2)
		assert.Equal(t, day1, f.Date)
	})
}
