package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaagyebi/lumea-api/internal/models"
)

func TestWithDefaults_FillsMissingKeys(t *testing.T) {
	got := WithDefaults(models.SkinAnalysis{Tone: "Medium"})

	assert.Equal(t, "Medium", got.Tone)
	assert.Equal(t, DefaultSkinType, got.SkinType)
	assert.Equal(t, DefaultSkinAge, got.SkinAge)
	assert.Equal(t, DefaultSkinHealth, got.SkinHealth)
	assert.Equal(t, DefaultPoreVisibility, got.PoreVisibility)
	assert.Equal(t, DefaultTexture, got.Texture)
	assert.Equal(t, DefaultOilLevel, got.OilLevel)
	assert.Equal(t, DefaultSkinSummary, got.SkinSummary)
	assert.NotNil(t, got.Conditions)
	assert.NotNil(t, got.Precautions)
	assert.NotNil(t, got.QuantitativeAnalysis)
	assert.Nil(t, got.OverallScore)
}

func TestWithDefaults_KeepsProvidedValues(t *testing.T) {
	score := 81.5
	in := models.SkinAnalysis{
		Tone:         "Olive",
		SkinType:     "Oily",
		SkinAge:      31,
		Conditions:   []string{"acne"},
		Precautions:  []string{"use sunscreen"},
		OverallScore: &score,
	}

	got := WithDefaults(in)

	assert.Equal(t, "Oily", got.SkinType)
	assert.Equal(t, 31.0, got.SkinAge)
	assert.Equal(t, []string{"acne"}, got.Conditions)
	assert.Equal(t, 81.5, *got.OverallScore)
}

func TestParse(t *testing.T) {
	got, err := Parse("```json\n{\"tone\":\"Fair\",\"skinAge\":28,\"conditions\":[\"dryness\"]}\n```")
	require.NoError(t, err)

	assert.Equal(t, "Fair", got.Tone)
	assert.Equal(t, 28.0, got.SkinAge)
	assert.Equal(t, []string{"dryness"}, got.Conditions)

	_, err = Parse("   ")
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = Parse("not json")
	assert.Error(t, err)
}

func TestParse_LenientValues(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		check func(t *testing.T, got models.SkinAnalysis)
	}{
		{"fractional age", `{"skinAge":32.5}`, func(t *testing.T, got models.SkinAnalysis) {
			assert.Equal(t, 32.5, got.SkinAge)
		}},
		{"age as string", `{"skinAge":"30"}`, func(t *testing.T, got models.SkinAnalysis) {
			assert.Equal(t, 30.0, got.SkinAge)
		}},
		{"score as string", `{"overallScore":"78"}`, func(t *testing.T, got models.SkinAnalysis) {
			require.NotNil(t, got.OverallScore)
			assert.Equal(t, 78.0, *got.OverallScore)
		}},
		{"unparseable age", `{"skinAge":"about thirty","tone":"Fair"}`, func(t *testing.T, got models.SkinAnalysis) {
			assert.Zero(t, got.SkinAge)
			assert.Equal(t, "Fair", got.Tone)
		}},
		{"nan score", `{"overallScore":"NaN"}`, func(t *testing.T, got models.SkinAnalysis) {
			assert.Nil(t, got.OverallScore)
		}},
		{"single condition", `{"conditions":"acne","precautions":["sunscreen",3]}`, func(t *testing.T, got models.SkinAnalysis) {
			assert.Equal(t, []string{"acne"}, got.Conditions)
			assert.Equal(t, []string{"sunscreen", "3"}, got.Precautions)
		}},
		{"wrong shapes", `{"tone":["x"],"quantitativeAnalysis":[1,2]}`, func(t *testing.T, got models.SkinAnalysis) {
			assert.Empty(t, got.Tone)
			assert.Nil(t, got.QuantitativeAnalysis)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.raw)
			require.NoError(t, err)
			tc.check(t, got)
		})
	}
}

func TestParse_ThenDefaults(t *testing.T) {
	got, err := Parse(`{"skinAge":"unknown","skinType":42}`)
	require.NoError(t, err)

	got = WithDefaults(got)
	assert.Equal(t, DefaultSkinAge, got.SkinAge)
	assert.Equal(t, "42", got.SkinType)
	assert.Equal(t, DefaultTone, got.Tone)

	_, err = Parse(`["not","an","object"]`)
	assert.Error(t, err)
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Analyze(context.Background(), Image{})
	require.ErrorIs(t, err, ErrNotConfigured)
}
