package httpserver

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/indigo-web/indigo/http/status"
	"github.com/stretchr/testify/require"

	"github.com/rickm/huffzip"
	"github.com/rickm/huffzip/service"
)

func TestFormatSize(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{5 * 1024 * 1024 * 1024, "5.00 GB"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, formatSize(tc.n), "formatSize(%d)", tc.n)
	}
}

func TestNewCompressResponse(t *testing.T) {
	res := service.Result{
		OperationID:   "op-1",
		FileName:      "doc.txt.huff",
		Kind:          service.KindCompress,
		OriginalSize:  2048,
		ProcessedSize: 1024,
		Ratio:         0.5,
		Elapsed:       1500 * time.Millisecond,
		Data:          []byte{0x01, 0x02},
	}

	model := newCompressResponse(res)
	require.True(t, model.Success)
	require.Equal(t, "op-1", model.OperationID)
	require.Equal(t, "doc.txt.huff", model.FileName)
	require.Equal(t, 2048, model.OriginalSize)
	require.Equal(t, 1024, model.CompressedSize)
	require.Equal(t, "50.00%", model.FormattedRatio)
	require.Equal(t, "2.00 KB", model.FormattedOriginalSize)
	require.Equal(t, int64(1500), model.ProcessingTimeMillis)
	require.Equal(t, base64.StdEncoding.EncodeToString(res.Data), model.Data)

	body, err := json.Marshal(model)
	require.NoError(t, err)
	require.Contains(t, string(body), `"operationId":"op-1"`)
}

func TestNewProgressResponse(t *testing.T) {
	p := service.Progress{
		OperationID: "op-2",
		FileName:    "big.bin",
		Status:      service.StatusCompleted,
		Phase:       "completed",
		Percent:     100,
		TotalBytes:  99,
	}

	model := newProgressResponse(p)
	require.True(t, model.Complete)
	require.Equal(t, "completed", model.Status)
	require.Equal(t, 100, model.ProgressPercent)

	body, err := json.Marshal(model)
	require.NoError(t, err)
	require.NotContains(t, string(body), "errorMessage", "empty error must be omitted")
}

func TestNewValidateResponse(t *testing.T) {
	valid := newValidateResponse("a.huff", true)
	require.True(t, valid.Valid)
	require.Contains(t, valid.Message, "valid")

	invalid := newValidateResponse("a.txt", false)
	require.False(t, invalid.Valid)
	require.Contains(t, invalid.Message, "not")
}

func TestDecompressFailureCode(t *testing.T) {
	require.Equal(t, status.BadRequest, decompressFailureCode(huffzip.ErrBadMagic))
	require.Equal(t, status.BadRequest, decompressFailureCode(huffzip.ErrCorrupt))
	require.Equal(t, status.BadRequest, decompressFailureCode(service.ErrInvalidFormat))
	require.Equal(t, status.InternalServerError, decompressFailureCode(errors.New("disk on fire")))
}
