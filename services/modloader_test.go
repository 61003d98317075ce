package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAvailableLoaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		want    []LoaderID
	}{
		{"1.13.2", []LoaderID{Vanilla, Forge}},
		{"1.14", []LoaderID{Vanilla, Fabric, Forge}},
		{"1.19.2", []LoaderID{Vanilla, Fabric, Forge}},
		{"1.20", []LoaderID{Vanilla, Fabric, Forge}},
		{"1.20.1", []LoaderID{Vanilla, Fabric, Forge, NeoForge}},
		{"1.21.4", []LoaderID{Vanilla, Fabric, Forge, NeoForge}},
		{"1.0", []LoaderID{Vanilla, Forge}},
		{"0.30", []LoaderID{Vanilla}},
		{"0.0.0", []LoaderID{Vanilla}},
		{"", []LoaderID{Vanilla}},
		{"not a version", []LoaderID{Vanilla}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.version, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, AvailableLoaders(tt.version))
		})
	}
}

func TestLoadersReturnsCopy(t *testing.T) {
	t.Parallel()

	table := Loaders()
	require.Len(t, table, 4)
	require.NotNil(t, table[1].MinVersion)
	table[1].MinVersion[1] = 99
	table[0].Name = "changed"

	fresh := Loaders()
	assert.Equal(t, "Vanilla", fresh[0].Name)
	assert.Equal(t, VersionKey{1, 14, 0}, *fresh[1].MinVersion)
	assert.Nil(t, fresh[0].MinVersion)
}

func TestLookupLoader(t *testing.T) {
	t.Parallel()

	d, err := LookupLoader("NeoForge")
	require.NoError(t, err)
	assert.Equal(t, NeoForge, d.ID)

	_, err = LookupLoader("quilt")
	require.ErrorIs(t, err, ErrUnknownModloader)
}

func TestLoaderOptions(t *testing.T) {
	t.Parallel()

	options := LoaderOptions("1.16.5")
	require.Len(t, options, 4)

	ids := make([]LoaderID, len(options))
	for i, o := range options {
		ids[i] = o.ID
	}
	assert.Equal(t, []LoaderID{Vanilla, Fabric, Forge, NeoForge}, ids)

	assert.True(t, options[0].Available)
	assert.Empty(t, options[0].Hint())
	assert.True(t, options[1].Available)
	assert.True(t, options[2].Available)
	assert.False(t, options[3].Available)
	assert.Equal(t, "available from 1.20.1+", options[3].Hint())

	old := LoaderOptions("1.12.2")
	assert.Equal(t, "available from 1.14+", old[1].Hint())
}

func TestValidateSelection(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateSelection("1.20.1", "neoforge"))
	require.NoError(t, ValidateSelection("garbage", "vanilla"))

	err := ValidateSelection("1.14.0", "neoforge")
	require.ErrorIs(t, err, ErrInvalidSelection)
	assert.Contains(t, err.Error(), "1.20.1")

	err = ValidateSelection("1.20.1", "quilt")
	require.ErrorIs(t, err, ErrInvalidSelection)
	require.ErrorIs(t, err, ErrUnknownModloader)
}

// TestPropertyAvailableLoadersOrdered verifies results always start with
// vanilla and follow the table order.
func TestPropertyAvailableLoadersOrdered(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		version := rapid.StringMatching(`[0-9a-z.]{0,12}`).Draw(t, "version")
		got := AvailableLoaders(version)
		if len(got) == 0 || got[0] != Vanilla {
			t.Fatalf("vanilla missing for %q: %v", version, got)
		}
		next := 0
		for _, id := range got {
			for next < len(loaders) && loaders[next].ID != id {
				next++
			}
			if next == len(loaders) {
				t.Fatalf("%v out of table order for %q", got, version)
			}
			next++
		}
	})
}

// TestPropertyAvailableLoadersMonotonic verifies a newer version never loses
// a loader an older version has.
func TestPropertyAvailableLoadersMonotonic(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		a := versionKeyGen().Draw(t, "a")
		b := versionKeyGen().Draw(t, "b")
		if a.Compare(b) > 0 {
			a, b = b, a
		}
		newer := AvailableLoaders(b.String())
		for _, id := range AvailableLoaders(a.String()) {
			assert.Contains(t, newer, id)
		}
	})
}
