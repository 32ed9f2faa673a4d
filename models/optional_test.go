package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesAbsentNullAndValue(t *testing.T) {
	var patch PlayerPatch
	payload := `{"team":"Arsenal FC","age":null}`
	require.NoError(t, json.Unmarshal([]byte(payload), &patch))

	assert.False(t, patch.Name.Set, "absent field stays unset")

	require.True(t, patch.Team.Set)
	require.NotNil(t, patch.Team.Value)
	assert.Equal(t, "Arsenal FC", *patch.Team.Value)

	require.True(t, patch.Age.Set)
	assert.Nil(t, patch.Age.Value, "explicit null keeps Set with nil value")
}

func TestOptionalMarshalRoundTrip(t *testing.T) {
	data, err := json.Marshal(Some(42))
	require.NoError(t, err)
	assert.Equal(t, "42", string(data))

	data, err = json.Marshal(Null[int]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDocumentNullHandling(t *testing.T) {
	var video Video
	require.NoError(t, json.Unmarshal([]byte(`{"title":"clip","fileName":"clip.mp4","status":"pending","analysisResults":null,"createdAt":"2025-01-01T00:00:00Z"}`), &video))
	assert.Nil(t, video.AnalysisResults)

	data, err := json.Marshal(video)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"analysisResults":null`)
}
