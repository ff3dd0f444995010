package show

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString(t *testing.T) {
	tests := []struct {
		body string
		want FlexString
	}{
		{`{"fileSize": 2048}`, "2048"},
		{`{"fileSize": "1024"}`, "1024"},
		{`{"fileSize": null}`, ""},
		{`{}`, ""},
	}
	for _, tt := range tests {
		var req CreateResourceReq
		require.NoError(t, json.Unmarshal([]byte(tt.body), &req), tt.body)
		assert.Equal(t, tt.want, req.FileSize, tt.body)
	}

	var req CreateResourceReq
	assert.Error(t, json.Unmarshal([]byte(`{"fileSize": true}`), &req))
}
