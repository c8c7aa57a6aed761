package jurisdiction

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeProfile(t *testing.T, dir, name string, doc map[string]any) {
	t.Helper()
	var (
		data []byte
		err  error
	)
	if filepath.Ext(name) == ".json" {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = yaml.Marshal(doc)
	}
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestBuiltin(t *testing.T) {
	profiles := Builtin()
	require.Len(t, profiles, 4)

	g := Generic()
	assert.Equal(t, GenericID, g.ID)
	assert.Equal(t, 1, g.Version)
	assert.Equal(t, LanguageBoth, g.Language)
	assert.Equal(t, Thresholds{Priority3: 20, Priority2: 40, Priority1: 60, Priority0: 80}, g.PriorityWeights.Thresholds)
	assert.Equal(t, 40, g.PriorityWeights.Weight(WeightSuspectedAbduction))
	for _, key := range RequiredWeightKeys {
		_, ok := g.PriorityWeights.Factors[key]
		assert.True(t, ok, key)
	}
	assert.NotContains(t, g.PriorityWeights.Factors, "thresholds")
}

func TestLoad_DirectoryAddsProfiles(t *testing.T) {
	dir := t.TempDir()

	yk := genericDoc(t)
	yk["id"] = "yukon"
	yk["name"] = "Yukon"
	writeProfile(t, dir, "yukon.yaml", yk)

	nb := genericDoc(t)
	nb["id"] = "new_brunswick"
	nb["language"] = "both"
	writeProfile(t, dir, "atlantic/new_brunswick.json", nb)

	on := genericDoc(t)
	on["id"] = "ontario"
	on["version"] = 2
	weightsOf(on)[WeightSuicidalRisk] = 45
	writeProfile(t, dir, "ontario-v2.yml", on)

	reg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "Yukon", reg.Resolve("yukon").Name)
	assert.Equal(t, "new_brunswick", reg.Resolve("new_brunswick").ID)
	assert.Equal(t, 45, reg.Resolve("ontario").PriorityWeights.Weight(WeightSuicidalRisk))
	assert.Equal(t, []int{1, 2}, reg.Versions("ontario"))
}

func TestLoad_InvalidDocumentFailsLoad(t *testing.T) {
	dir := t.TempDir()
	bad := genericDoc(t)
	bad["id"] = "bad"
	bad["language"] = "klingon"
	writeProfile(t, dir, "bad.yaml", bad)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "bad.yaml", verr.Source)
	assert.Contains(t, verr.Errors, "language must be one of en, fr, both")
}

func TestLoad_DuplicateOfBuiltinFails(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "generic.yaml", genericDoc(t))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate profile version generic@1")
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode("broken.json", []byte(`{"id": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode profile broken.json")
}

func TestPriorityWeights_JSONRoundTrip(t *testing.T) {
	g := Generic()

	out, err := json.Marshal(g.PriorityWeights)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(out, &flat))
	assert.EqualValues(t, 40, flat[WeightSuspectedAbduction])
	assert.Contains(t, flat, "thresholds")

	var back PriorityWeights
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, g.PriorityWeights, back)
}

func TestDecode_AcceptsIntegralFloatsLikeValidate(t *testing.T) {
	doc := genericDoc(t)
	doc["id"] = "float_zone"
	jsonDoc, err := json.Marshal(doc)
	require.NoError(t, err)
	yamlDoc, err := yaml.Marshal(doc)
	require.NoError(t, err)

	// Both encoders drop ".0", so put it back the way a hand-edited file has it.
	tests := []struct {
		name string
		data string
	}{
		{"float_zone.json", strings.Replace(string(jsonDoc), `"suspectedAbduction":40`, `"suspectedAbduction":30.0`, 1)},
		{"float_zone.yaml", strings.Replace(string(yamlDoc), "suspectedAbduction: 40", "suspectedAbduction: 30.0", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Contains(t, tt.data, "30.0")

			var parsed map[string]any
			if filepath.Ext(tt.name) == ".json" {
				require.NoError(t, json.Unmarshal([]byte(tt.data), &parsed))
			} else {
				require.NoError(t, yaml.Unmarshal([]byte(tt.data), &parsed))
			}
			require.True(t, Validate(parsed).Valid)

			p, err := Decode(tt.name, []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, 30, p.PriorityWeights.Weight(WeightSuspectedAbduction))
		})
	}

	var direct Profile
	require.NoError(t, json.Unmarshal([]byte(tests[0].data), &direct))
	assert.Equal(t, 30, direct.PriorityWeights.Weight(WeightSuspectedAbduction))
}

func TestDecode_RejectsFractionalWeightLikeValidate(t *testing.T) {
	doc := genericDoc(t)
	doc["id"] = "float_zone"
	weightsOf(doc)[WeightSuspectedAbduction] = 30.5
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.False(t, Validate(parsed).Valid)

	_, err = Decode("float_zone.json", data)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Errors, "priorityWeights.suspectedAbduction must be an integer")
}
