package analysis

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/kaagyebi/lumea-api/internal/models"
)

// reply is the model's JSON as it actually arrives. Each field accepts the
// shapes models tend to produce; anything that cannot be coerced stays zero
// and is later filled by WithDefaults.
type reply struct {
	Tone                 text   `json:"tone"`
	SkinType             text   `json:"skinType"`
	Conditions           list   `json:"conditions"`
	SkinAge              number `json:"skinAge"`
	SkinHealth           text   `json:"skinHealth"`
	PoreVisibility       text   `json:"poreVisibility"`
	Texture              text   `json:"texture"`
	OilLevel             text   `json:"oilLevel"`
	Precautions          list   `json:"precautions"`
	OverallScore         number `json:"overallScore"`
	SkinSummary          text   `json:"skinSummary"`
	QuantitativeAnalysis object `json:"quantitativeAnalysis"`
}

func (r reply) analysis() models.SkinAnalysis {
	out := models.SkinAnalysis{
		Tone:                 string(r.Tone),
		SkinType:             string(r.SkinType),
		Conditions:           r.Conditions,
		SkinAge:              r.SkinAge.value,
		SkinHealth:           string(r.SkinHealth),
		PoreVisibility:       string(r.PoreVisibility),
		Texture:              string(r.Texture),
		OilLevel:             string(r.OilLevel),
		Precautions:          r.Precautions,
		SkinSummary:          string(r.SkinSummary),
		QuantitativeAnalysis: r.QuantitativeAnalysis,
	}
	if r.OverallScore.set {
		score := r.OverallScore.value
		out.OverallScore = &score
	}
	return out
}

// number accepts a JSON number or a numeric string.
type number struct {
	value float64
	set   bool
}

func (n *number) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}

	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n.value, n.set = f, true
	return nil
}

// text accepts a string, number or boolean.
type text string

func (s *text) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	*s = text(scalar(v))
	return nil
}

// list accepts an array of scalars or a single string.
type list []string

func (l *list) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}

	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := scalar(item); s != "" {
				out = append(out, s)
			}
		}
		*l = out
	case string:
		if s := strings.TrimSpace(t); s != "" {
			*l = []string{s}
		}
	}
	return nil
}

// object accepts only a JSON object.
type object map[string]any

func (o *object) UnmarshalJSON(b []byte) error {
	var v map[string]any
	if err := json.Unmarshal(b, &v); err == nil {
		*o = v
	}
	return nil
}

func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}
