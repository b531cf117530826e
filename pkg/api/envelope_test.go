package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func TestDecodeList_EnvelopeShapes(t *testing.T) {
	// The same logical payload in the three shapes the backend produces.
	bodies := map[string]string{
		"results":    `{"success":true,"error":false,"message":"ok","results":[{"_id":"a1","name":"one"},{"_id":"a2","name":"two"}]}`,
		"data":       `{"success":true,"error":false,"message":"ok","data":[{"_id":"a1","name":"one"},{"_id":"a2","name":"two"}]}`,
		"bare array": `[{"_id":"a1","name":"one"},{"_id":"a2","name":"two"}]`,
	}

	want := []widget{{ID: "a1", Name: "one"}, {ID: "a2", Name: "two"}}
	for shape, body := range bodies {
		resp, err := DecodeList[widget]([]byte(body))
		require.NoError(t, err, shape)
		assert.Equal(t, want, resp.Items, shape)
	}
}

func TestDecodeList_ResultsTakesPrecedenceOverData(t *testing.T) {
	body := `{"results":[{"_id":"r1"}],"data":[{"_id":"d1"}]}`
	resp, err := DecodeList[widget]([]byte(body))
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "r1", resp.Items[0].ID)
}

func TestDecodeList_MalformedDefaultsToEmpty(t *testing.T) {
	for _, body := range []string{
		`{"success":true,"message":"ok"}`,
		`{"results":"not an array"}`,
		`"just a string"`,
		`{broken`,
		``,
	} {
		resp, err := DecodeList[widget]([]byte(body))
		require.NoError(t, err, body)
		assert.NotNil(t, resp.Items, body)
		assert.Empty(t, resp.Items, body)
	}
}

func TestDecodeList_KeepsMessage(t *testing.T) {
	resp, err := DecodeList[widget]([]byte(`{"message":"fetched","results":[]}`))
	require.NoError(t, err)
	assert.Equal(t, "fetched", resp.Message)
}

func TestDecodeItem_Precedence(t *testing.T) {
	resp, err := DecodeItem[widget]([]byte(`{"result":{"_id":"r1"},"data":{"_id":"d1"}}`))
	require.NoError(t, err)
	require.NotNil(t, resp.Item)
	assert.Equal(t, "r1", resp.Item.ID)

	resp, err = DecodeItem[widget]([]byte(`{"data":{"_id":"d1"},"message":"saved"}`))
	require.NoError(t, err)
	require.NotNil(t, resp.Item)
	assert.Equal(t, "d1", resp.Item.ID)
	assert.Equal(t, "saved", resp.Message)
}

func TestDecodeItem_MissingPayload(t *testing.T) {
	for _, body := range []string{
		`{"success":true,"message":"deleted"}`,
		`{"result":null,"message":"deleted"}`,
		`{broken`,
	} {
		resp, err := DecodeItem[widget]([]byte(body))
		require.NoError(t, err, body)
		assert.Nil(t, resp.Item, body)
	}
}
