package density

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_CanonicalCases(t *testing.T) {
	results, err := EvaluateCases(EntropyCases())
	require.NoError(t, err)
	require.Len(t, results, 5)

	model, ratio, err := Recommend(results)
	require.NoError(t, err)
	assert.Equal(t, ModelEntropySqrt, model)

	flow := results[0].Comparison[ModelEntropySqrt]
	panicked := results[1].Comparison[ModelEntropySqrt]
	assert.InDelta(t, flow/panicked, ratio, 1e-9)
}

func TestRecommend_ZeroDenominator(t *testing.T) {
	results := []CaseResult{
		{State: "Flow", Comparison: Comparison{
			ModelOriginal: 0.5, ModelEntropyLinear: 0.4, ModelEntropyQuadratic: 0.3, ModelEntropySqrt: 0.2,
		}},
		{State: "Panic", Comparison: Comparison{
			ModelOriginal: 0.1, ModelEntropyLinear: 0, ModelEntropyQuadratic: 0, ModelEntropySqrt: 0.1,
		}},
	}
	model, ratio, err := Recommend(results)
	require.NoError(t, err)
	assert.Equal(t, ModelEntropyLinear, model, "first +Inf model wins")
	assert.True(t, math.IsInf(ratio, 1))
}

func TestRecommend_BothZero(t *testing.T) {
	zero := Comparison{ModelOriginal: 0, ModelEntropyLinear: 0, ModelEntropyQuadratic: 0, ModelEntropySqrt: 0}
	model, ratio, err := Recommend([]CaseResult{{State: "Flow", Comparison: zero}, {State: "Panic", Comparison: zero}})
	require.NoError(t, err)
	assert.Equal(t, ModelOriginal, model)
	assert.Equal(t, 1.0, ratio)
}

func TestRecommend_NoSeparation(t *testing.T) {
	high := Comparison{ModelOriginal: 0, ModelEntropyLinear: 0, ModelEntropyQuadratic: 0, ModelEntropySqrt: 0}
	low := Comparison{ModelOriginal: 0.2, ModelEntropyLinear: 0.1, ModelEntropyQuadratic: 0.1, ModelEntropySqrt: 0.3}
	model, _, err := Recommend([]CaseResult{{State: "Flow", Comparison: high}, {State: "Panic", Comparison: low}})
	assert.ErrorIs(t, err, ErrNoSeparation)
	assert.Empty(t, model)
}

func TestRecommend_MissingCase(t *testing.T) {
	results, err := EvaluateCases([]Case{{"Flow State", 0.9, 0.9, 0.9, 0.1}})
	require.NoError(t, err)
	_, _, err = Recommend(results)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCaseNotFound))

	_, _, err = Recommend(nil)
	assert.True(t, errors.Is(err, ErrCaseNotFound))
}
