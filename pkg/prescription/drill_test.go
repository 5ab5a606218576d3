package prescription_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swinglab/swinglab/pkg/prescription"
	"github.com/swinglab/swinglab/pkg/scoring"
)

func TestDrillValidate(t *testing.T) {
	valid := prescription.Drill{
		ID: "d1", Category: prescription.CategoryWhip,
		PriorityLevel: prescription.PriorityHigh, Targets: []string{"3.1"},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(d *prescription.Drill)
	}{
		{"missing id", func(d *prescription.Drill) { d.ID = "" }},
		{"missing category", func(d *prescription.Drill) { d.Category = "" }},
		{"unknown category", func(d *prescription.Drill) { d.Category = "power" }},
		{"unknown priority", func(d *prescription.Drill) { d.PriorityLevel = "urgent" }},
		{"no targets", func(d *prescription.Drill) { d.Targets = nil }},
		{"blank target", func(d *prescription.Drill) { d.Targets = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			d.Targets = append([]string(nil), valid.Targets...)
			tt.mutate(&d)
			err := d.Validate()
			assert.True(t, errors.Is(err, prescription.ErrInvalidDrill), "got %v", err)
		})
	}
}

func TestValidateCatalogDuplicate(t *testing.T) {
	c := sampleCatalog()
	c = append(c, c[0])
	err := prescription.ValidateCatalog(c)
	assert.True(t, errors.Is(err, prescription.ErrDuplicateDrill), "got %v", err)

	_, err = prescription.NewEngine(c)
	assert.Error(t, err)
}

func TestLoadCatalogYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drills.yaml")
	data := `
drills:
  - id: lag-pump
    title: Lag pump
    category: whip
    priority_level: very_high
    targets: ["3.1"]
    reps: 3x10
  - id: connection-ball
    title: Connection ball
    category: multi
    priority_level: high
    targets: ["2.3", "3.1"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	drills, err := prescription.LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, drills, 2)
	assert.Equal(t, prescription.PriorityVeryHigh, drills[0].PriorityLevel)
	assert.Equal(t, "3x10", drills[0].Reps)
	assert.Equal(t, []string{"2.3", "3.1"}, drills[1].Targets)
}

func TestLoadCatalogJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drills.json")
	data := `{"drills":[{"id":"tee","category":"anchor","priority_level":"low","targets":["1.4"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	drills, err := prescription.LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, drills, 1)
	assert.Equal(t, prescription.CategoryAnchor, drills[0].Category)
}

func TestLoadCatalogRejectsMalformedDrill(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drills.yaml")
	require.NoError(t, os.WriteFile(path, []byte("drills:\n  - id: x\n    category: whip\n"), 0o644))

	_, err := prescription.LoadCatalog(path)
	assert.True(t, errors.Is(err, prescription.ErrInvalidDrill), "got %v", err)
}

func TestDecodeCatalogUnknownFormat(t *testing.T) {
	_, err := prescription.DecodeCatalog([]byte("{}"), "toml")
	assert.Error(t, err)
}

func TestChecklistCoversEveryMetric(t *testing.T) {
	seen := map[prescription.ChecklistCode]scoring.MetricID{}
	for _, d := range scoring.DefaultMetrics() {
		code, ok := prescription.CodeFor(d.ID)
		if !assert.True(t, ok, "no checklist code for %s", d.ID) {
			continue
		}
		if prev, dup := seen[code]; dup {
			t.Errorf("code %s shared by %s and %s", code, prev, d.ID)
		}
		seen[code] = d.ID
	}

	_, ok := prescription.CodeFor("not_a_metric")
	assert.False(t, ok)
}

func TestChecklistCodesFollowPillar(t *testing.T) {
	prefix := map[scoring.Pillar]byte{
		scoring.PillarAnchor:    '1',
		scoring.PillarStability: '2',
		scoring.PillarWhip:      '3',
	}
	for _, d := range scoring.DefaultMetrics() {
		code, _ := prescription.CodeFor(d.ID)
		if assert.NotEmpty(t, code) {
			assert.Equal(t, prefix[d.Pillar], code[0], d.ID)
		}
	}
}

func TestDefaultCatalogCoversEveryMetric(t *testing.T) {
	drills, err := prescription.DefaultCatalog()
	require.NoError(t, err)
	require.NotEmpty(t, drills)

	targeted := map[string]bool{}
	for _, d := range drills {
		for _, code := range d.Targets {
			targeted[code] = true
		}
	}
	for _, def := range scoring.DefaultMetrics() {
		code, _ := prescription.CodeFor(def.ID)
		assert.True(t, targeted[string(code)], "no built-in drill targets %s (%s)", code, def.ID)
	}

	_, err = prescription.NewEngine(drills)
	assert.NoError(t, err)
}
