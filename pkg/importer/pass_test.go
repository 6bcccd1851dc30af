package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/stylebridge/internal/testutil"
	"github.com/leapstack-labs/stylebridge/pkg/codestyle"
)

// marginImporter writes its "max" property to the right margin.
type marginImporter struct {
	margin int
	set    bool
}

func (m *marginImporter) HandleAttribute(name, value string) error {
	if name != "max" {
		return UnknownAttribute("Margin", name)
	}
	n, ok := ParseInt(value)
	if !ok {
		return InvalidValue("Margin", name, value)
	}
	m.margin, m.set = n, true
	return nil
}

func (m *marginImporter) Compile() codestyle.Change {
	if !m.set {
		return nil
	}
	margin := m.margin
	return func(s *codestyle.State) { s.Java.RightMargin = margin }
}

func registerTestImporters(t *testing.T) {
	t.Helper()
	Clear()
	t.Cleanup(Clear)
	Register(Def{
		Name:        "Margin",
		Group:       "sizes",
		Description: "test importer",
		ConfigKeys:  []string{"max"},
		New:         func() ModuleImporter { return &marginImporter{} },
	})
}

func TestRegistry(t *testing.T) {
	registerTestImporters(t)
	Register(Def{Name: "Alpha", Group: "misc", New: func() ModuleImporter { return &marginImporter{} }})

	assert.Equal(t, 2, Count())

	all := All()
	require.Len(t, all, 2)
	assert.Equal(t, "Alpha", all[0].Name)
	assert.Equal(t, "Margin", all[1].Name)

	sizes := ByGroup("sizes")
	require.Len(t, sizes, 1)
	assert.Equal(t, []string{"max"}, sizes[0].Info().ConfigKeys)

	_, ok := Get("Missing")
	assert.False(t, ok)

	Clear()
	assert.Equal(t, 0, Count())
}

func TestPassAppliesInDocumentOrder(t *testing.T) {
	registerTestImporters(t)

	root := NewModule("Checker").AddChild(
		NewModule("Margin", "max", "80"),
		NewModule("TreeWalker").AddChild(
			NewModule("Margin", "max", "100"),
			NewModule("Unknown", "foo", "bar"),
		),
	)

	settings := codestyle.NewSettings()
	pass := &Pass{Logger: testutil.NewTestLogger(t), Limit: 4}
	result, err := pass.Run(context.Background(), settings, root)
	require.NoError(t, err)

	assert.Equal(t, 100, settings.Snapshot().Java.RightMargin, "later module wins")
	assert.Equal(t, []string{"Margin", "Margin"}, result.Applied)
	assert.Equal(t, []string{"Unknown"}, result.Skipped, "containers are not reported")
	assert.Equal(t, 0, result.Warnings)
	assert.NotEmpty(t, result.ID)
}

func TestPassWarnsAndContinues(t *testing.T) {
	registerTestImporters(t)

	root := NewModule("Margin", "colour", "blue", "max", "wide", "max", "90")

	settings := codestyle.NewSettings()
	pass := &Pass{Logger: testutil.NewTestLogger(t)}
	result, err := pass.Run(context.Background(), settings, root)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Warnings)
	assert.Equal(t, 90, settings.Snapshot().Java.RightMargin)
}

func TestPassUnknownAttributeLeavesStateUnchanged(t *testing.T) {
	registerTestImporters(t)

	settings := codestyle.NewSettings()
	before := settings.Snapshot()

	result, err := (&Pass{}).Run(context.Background(), settings, NewModule("Margin", "colour", "blue"))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Warnings)
	assert.Equal(t, before, settings.Snapshot())
}

func TestPassCancelledLeavesSettingsUntouched(t *testing.T) {
	registerTestImporters(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	settings := codestyle.NewSettings()
	_, err := (&Pass{}).Run(ctx, settings, NewModule("Margin", "max", "10"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 120, settings.Snapshot().Java.RightMargin)
}

func TestPassNilSettings(t *testing.T) {
	_, err := (&Pass{}).Run(context.Background(), nil, NewModule("Margin"))
	assert.Error(t, err)
}

func TestAttributeErrors(t *testing.T) {
	err := UnknownAttribute("ImportOrder", "colour")
	assert.ErrorIs(t, err, ErrUnknownAttribute)
	assert.Contains(t, err.Error(), "ImportOrder")
	assert.Contains(t, err.Error(), "colour")

	err = InvalidValue("LineLength", "max", "wide")
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.NotErrorIs(t, err, ErrUnknownAttribute)
}
