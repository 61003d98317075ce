package main

import (
	"bytes"
	"testing"

	"github.com/mrnavastar/magma/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedPicker struct {
	choices []string
	seen    [][]string
}

func (p *scriptedPicker) Pick(_ string, options []string) (string, error) {
	p.seen = append(p.seen, options)
	choice := p.choices[0]
	p.choices = p.choices[1:]
	return choice, nil
}

var testVersions = []string{"1.20.1", "1.16.5", "1.12.2"}

func TestRunSelection(t *testing.T) {
	t.Parallel()

	p := &scriptedPicker{choices: []string{"1.16.5", "fabric"}}
	var out bytes.Buffer
	flow := services.NewFlow()

	sel, err := runSelection(flow, testVersions, p, &out)
	require.NoError(t, err)
	assert.Equal(t, services.Selection{Version: "1.16.5", Modloader: services.Fabric}, sel)
	assert.Equal(t, services.StateConfirmed, flow.State())

	assert.Equal(t, []string{"1.20.1", "1.16.5", "1.12.2", cancelOption}, p.seen[0])
	assert.Equal(t, []string{"vanilla", "fabric", "forge", backOption, cancelOption}, p.seen[1])
	assert.Contains(t, out.String(), "NeoForge")
	assert.Contains(t, out.String(), "available from 1.20.1+")
}

func TestRunSelectionBack(t *testing.T) {
	t.Parallel()

	p := &scriptedPicker{choices: []string{"1.20.1", backOption, "1.12.2", "forge"}}
	sel, err := runSelection(services.NewFlow(), testVersions, p, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, services.Selection{Version: "1.12.2", Modloader: services.Forge}, sel)
	assert.Equal(t, []string{"vanilla", "forge", backOption, cancelOption}, p.seen[3])
}

func TestRunSelectionCancel(t *testing.T) {
	t.Parallel()

	flow := services.NewFlow()
	p := &scriptedPicker{choices: []string{"1.20.1", cancelOption}}
	_, err := runSelection(flow, testVersions, p, &bytes.Buffer{})
	require.ErrorIs(t, err, errCancelled)
	assert.Equal(t, services.StateCancelled, flow.State())

	flow = services.NewFlow()
	p = &scriptedPicker{choices: []string{cancelOption}}
	_, err = runSelection(flow, testVersions, p, &bytes.Buffer{})
	require.ErrorIs(t, err, errCancelled)
	assert.Equal(t, services.StateCancelled, flow.State())
}

func TestRunSelectionNoVersions(t *testing.T) {
	t.Parallel()

	_, err := runSelection(services.NewFlow(), nil, &scriptedPicker{}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestSelectFromFlags(t *testing.T) {
	t.Parallel()

	sel, err := selectFromFlags(services.NewFlow(), "1.20.1", "neoforge")
	require.NoError(t, err)
	assert.Equal(t, services.NeoForge, sel.Modloader)

	sel, err = selectFromFlags(services.NewFlow(), "1.8.9", "")
	require.NoError(t, err)
	assert.Equal(t, services.Vanilla, sel.Modloader)

	flow := services.NewFlow()
	_, err = selectFromFlags(flow, "1.14.0", "neoforge")
	require.ErrorIs(t, err, services.ErrInvalidSelection)
	assert.Equal(t, services.StateCancelled, flow.State())
}

func TestPrintVersions(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	printVersions(&out, []string{"1.20.1", "1.12.2"})
	assert.Contains(t, out.String(), "modern")
	assert.Contains(t, out.String(), "stable")

	out.Reset()
	printVersions(&out, nil)
	assert.Equal(t, "No versions found\n", out.String())
}

func TestPrintNews(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	printNews(&out, services.ParseNews("1. one\n2. two\n- bullet\n1. again"))
	assert.Contains(t, out.String(), "  1. one\n  2. two\n  • bullet\n  1. again\n")

	out.Reset()
	printNews(&out, nil)
	assert.Equal(t, "No news\n", out.String())
}
