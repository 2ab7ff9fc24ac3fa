package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hathora/hathora-go/pkg/registry"
)

func builtin(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Builtin(nil)
	require.NoError(t, err)
	return reg
}

func TestLookupReturnsRequestedKey(t *testing.T) {
	reg := builtin(t)

	for _, capability := range registry.Capabilities() {
		for _, key := range reg.Models(capability) {
			def, err := reg.Lookup(capability, key)
			require.NoError(t, err)
			assert.Equal(t, key, def.Key)
			assert.Equal(t, capability, def.Capability)
		}
	}
}

func TestLookupUnknownKey(t *testing.T) {
	reg := builtin(t)

	_, err := reg.Lookup(registry.CapabilitySpeechSynthesis, "nonexistent")
	require.Error(t, err)

	var notFound *registry.ModelNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nonexistent", notFound.Key)
	assert.Equal(t, registry.CapabilitySpeechSynthesis, notFound.Capability)
	assert.Equal(t, []string{"kokoro", "resemble"}, notFound.Valid)
	assert.Equal(t, reg.Models(registry.CapabilitySpeechSynthesis), notFound.Valid)
}

func TestLookupIsCaseSensitive(t *testing.T) {
	reg := builtin(t)

	_, err := reg.Lookup(registry.CapabilitySpeechSynthesis, "Kokoro")
	var notFound *registry.ModelNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestModelsRegistrationOrder(t *testing.T) {
	reg := builtin(t)

	assert.Equal(t, []string{"parakeet"}, reg.Models(registry.CapabilityTranscription))
	assert.Equal(t, []string{"kokoro", "resemble"}, reg.Models(registry.CapabilitySpeechSynthesis))
	assert.Equal(t, []string{"qwen"}, reg.Models(registry.CapabilityChat))
}

func TestRegisterRejectsDuplicateKey(t *testing.T) {
	reg := registry.New()
	def := registry.ModelDefinition{Key: "m", Capability: registry.CapabilityChat, Shape: registry.ShapeJSON, PayloadField: "messages"}

	require.NoError(t, reg.Register(def))
	assert.Error(t, reg.Register(def))
}

func TestRegisterRejectsUnknownCapability(t *testing.T) {
	reg := registry.New()
	err := reg.Register(registry.ModelDefinition{Key: "m", Capability: "imagery"})
	assert.Error(t, err)
}

func TestValidateAppliesDefaults(t *testing.T) {
	reg := builtin(t)
	def, err := reg.Lookup(registry.CapabilitySpeechSynthesis, "kokoro")
	require.NoError(t, err)

	params, err := registry.Validate(def, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"voice", "speed"}, params.Names())
	assert.Equal(t, "af_bella", params.Value("voice"))
	assert.Equal(t, 1.0, params.Value("speed"))
}

func TestValidateOverrides(t *testing.T) {
	reg := builtin(t)
	def, err := reg.Lookup(registry.CapabilitySpeechSynthesis, "kokoro")
	require.NoError(t, err)

	params, err := registry.Validate(def, map[string]any{"voice": "af_bella", "speed": 1.2})
	require.NoError(t, err)
	assert.Equal(t, "af_bella", params.Value("voice"))
	assert.Equal(t, 1.2, params.Value("speed"))
}

func TestValidateUnknownParameter(t *testing.T) {
	reg := builtin(t)
	def, err := reg.Lookup(registry.CapabilitySpeechSynthesis, "kokoro")
	require.NoError(t, err)

	params, err := registry.Validate(def, map[string]any{"speed": 1.2, "exaggeration": 0.5})
	require.Error(t, err)

	var verr *registry.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"exaggeration"}, verr.Unknown)
	assert.Equal(t, []string{"voice", "speed"}, verr.Valid)
	// All-or-nothing: no defaults applied on rejection.
	assert.Zero(t, params.Len())
}

func TestValidateUnknownParametersSorted(t *testing.T) {
	reg := builtin(t)
	def, err := reg.Lookup(registry.CapabilitySpeechSynthesis, "kokoro")
	require.NoError(t, err)

	_, err = registry.Validate(def, map[string]any{"zeta": 1, "alpha": 2})
	var verr *registry.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"alpha", "zeta"}, verr.Unknown)
}

func TestValidateMissingRequired(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(registry.ModelDefinition{
		Key:          "strict",
		Capability:   registry.CapabilityChat,
		Shape:        registry.ShapeJSON,
		PayloadField: "messages",
		Params: []registry.ParamSpec{
			{Name: "project", Kind: registry.KindString, Required: true},
			{Name: "region", Kind: registry.KindString, Required: true},
			{Name: "verbose", Kind: registry.KindBool, Default: false, HasDefault: true},
		},
	}))
	def, err := reg.Lookup(registry.CapabilityChat, "strict")
	require.NoError(t, err)

	_, err = registry.Validate(def, map[string]any{"verbose": true})
	var verr *registry.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"project", "region"}, verr.Missing)
	assert.Empty(t, verr.Unknown)
}

func TestValidateResembleDefaults(t *testing.T) {
	reg := builtin(t)
	def, err := reg.Lookup(registry.CapabilitySpeechSynthesis, "resemble")
	require.NoError(t, err)

	params, err := registry.Validate(def, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, []string{"audio_prompt", "exaggeration", "cfg_weight"}, params.Names())

	v, ok := params.Get("audio_prompt")
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, 0.5, params.Value("exaggeration"))
	assert.Equal(t, 0.5, params.Value("cfg_weight"))
}

func TestValidateOptionalWithoutDefaultOmitted(t *testing.T) {
	reg := builtin(t)
	def, err := reg.Lookup(registry.CapabilityTranscription, "parakeet")
	require.NoError(t, err)

	params, err := registry.Validate(def, nil)
	require.NoError(t, err)
	// start_time and end_time have no default: absent unless supplied.
	assert.Zero(t, params.Len())

	params, err = registry.Validate(def, map[string]any{"start_time": 3.0})
	require.NoError(t, err)
	assert.Equal(t, []string{"start_time"}, params.Names())
}

func TestValidateOutOfRangePassesThrough(t *testing.T) {
	reg := builtin(t)
	def, err := reg.Lookup(registry.CapabilitySpeechSynthesis, "kokoro")
	require.NoError(t, err)

	// Declared bounds are display-only: recognized values are not clamped.
	params, err := registry.Validate(def, map[string]any{"speed": 9.9})
	require.NoError(t, err)
	assert.Equal(t, 9.9, params.Value("speed"))
}

func TestDescribeDefaultsRoundTrip(t *testing.T) {
	reg := builtin(t)

	for _, capability := range registry.Capabilities() {
		for _, key := range reg.Models(capability) {
			def, err := reg.Lookup(capability, key)
			require.NoError(t, err)

			fromDefaults, err := registry.Validate(def, nil)
			require.NoError(t, err)

			explicit := make(map[string]any)
			for _, spec := range registry.Describe(def) {
				if spec.HasDefault {
					explicit[spec.Name] = spec.Default
				}
			}
			fromExplicit, err := registry.Validate(def, explicit)
			require.NoError(t, err)

			assert.Equal(t, fromDefaults.Map(), fromExplicit.Map(), "model %s", key)
			assert.Equal(t, fromDefaults.Names(), fromExplicit.Names(), "model %s", key)
		}
	}
}

func TestDescribeIsACopy(t *testing.T) {
	reg := builtin(t)
	def, err := reg.Lookup(registry.CapabilitySpeechSynthesis, "kokoro")
	require.NoError(t, err)

	specs := registry.Describe(def)
	require.Len(t, specs, 2)
	specs[0].Name = "mutated"

	again := registry.Describe(def)
	assert.Equal(t, "voice", again[0].Name)
}

func TestHelpRendering(t *testing.T) {
	reg := builtin(t)
	def, err := reg.Lookup(registry.CapabilitySpeechSynthesis, "kokoro")
	require.NoError(t, err)

	help := registry.Help(def)
	assert.Contains(t, help, "Model: kokoro (speech-synthesis)")
	assert.Contains(t, help, `voice (string, default="af_bella")`)
	assert.Contains(t, help, "speed (number, default=1, range 0.5-2)")
	assert.Contains(t, help, "Speech speed multiplier")
}
