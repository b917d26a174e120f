package cmd

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adaptune/temper/constants"
	"github.com/adaptune/temper/model"
	"github.com/stretchr/testify/assert"
)

func TestReadSolveBodyAppliesDefaults(t *testing.T) {
	assert := assert.New(t)

	body := `{"input":{"targets":[{"n":3,"d":2}]}}`
	r := httptest.NewRequest("POST", "/solve", strings.NewReader(body))

	input, err := readSolveBody(r)
	assert.NoError(err)
	assert.Equal(constants.NominalCycleCents, input.CycleCents)
	assert.Equal(12, input.ScaleSize)
	assert.InDelta(261.625565, input.BaseFrequencyHz, 1e-9)
	assert.Equal(60, input.BaseMidiNote)
}

func TestReadSolveBodyKeepsExplicitValues(t *testing.T) {
	assert := assert.New(t)

	body := `{"input":{"scaleSize":19,"cycleCents":1200,"baseFrequencyHz":440,"baseMidiNote":69}}`
	r := httptest.NewRequest("POST", "/solve", strings.NewReader(body))

	input, err := readSolveBody(r)
	assert.NoError(err)
	assert.Equal(19, input.ScaleSize)
	assert.InDelta(440, input.BaseFrequencyHz, 1e-9)
	assert.Equal(69, input.BaseMidiNote)
}

func TestRpcInputAppliesDefaults(t *testing.T) {
	assert := assert.New(t)

	input, err := rpcInput(map[string]interface{}{
		"input": map[string]interface{}{
			"targets": []interface{}{map[string]interface{}{"n": 3, "d": 2}},
		},
	})
	assert.NoError(err)
	assert.Equal(constants.NominalCycleCents, input.CycleCents)
	assert.Equal(12, input.ScaleSize)
	assert.InDelta(261.625565, input.BaseFrequencyHz, 1e-9)
}

func TestHandleFrequenciesDefaultsBaseFrequency(t *testing.T) {
	assert := assert.New(t)

	body := `{"input":{"targets":[{"n":3,"d":2}]}}`
	r := httptest.NewRequest("POST", "/frequencies", strings.NewReader(body))
	w := httptest.NewRecorder()

	handleFrequencies(w, r)
	assert.Equal(200, w.Code)

	var res model.FrequenciesResponse
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(res.Frequencies, 12)
	assert.InDelta(261.625565, res.Frequencies[0], 1e-6)
	for _, f := range res.Frequencies {
		assert.Greater(f, 0.0)
	}
}
