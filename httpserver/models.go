package httpserver

import (
	"encoding/base64"
	"fmt"

	"github.com/indigo-web/indigo/http"
	"github.com/indigo-web/indigo/http/mime"
	"github.com/indigo-web/indigo/http/status"
	jsoniter "github.com/json-iterator/go"

	"github.com/rickm/huffzip"
	"github.com/rickm/huffzip/service"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type compressResponse struct {
	Success                 bool    `json:"success"`
	OperationID             string  `json:"operationId"`
	FileName                string  `json:"fileName"`
	OriginalSize            int     `json:"originalSize"`
	CompressedSize          int     `json:"compressedSize"`
	CompressionRatio        float64 `json:"compressionRatio"`
	FormattedRatio          string  `json:"formattedCompressionRatio"`
	FormattedOriginalSize   string  `json:"formattedOriginalSize"`
	FormattedCompressedSize string  `json:"formattedCompressedSize"`
	ProcessingTimeMillis    int64   `json:"processingTimeMs"`
	Data                    string  `json:"data"`
}

type decompressResponse struct {
	Success              bool   `json:"success"`
	OperationID          string `json:"operationId"`
	FileName             string `json:"fileName"`
	CompressedSize       int    `json:"compressedSize"`
	OriginalSize         int    `json:"originalSize"`
	ProcessingTimeMillis int64  `json:"processingTimeMs"`
	Data                 string `json:"data"`
}

type analyzeResponse struct {
	FileName               string  `json:"fileName"`
	FileSize               int     `json:"fileSize"`
	FormattedFileSize      string  `json:"formattedFileSize"`
	UniqueSymbols          int     `json:"uniqueSymbols"`
	TotalSymbols           int     `json:"totalSymbols"`
	AverageCodeLength      float64 `json:"averageCodeLength"`
	MaxCodeLength          int     `json:"maxCodeLength"`
	MinCodeLength          int     `json:"minCodeLength"`
	TheoreticalCompression float64 `json:"theoreticalCompression"`
}

type validateResponse struct {
	Valid    bool   `json:"valid"`
	FileName string `json:"fileName"`
	Message  string `json:"message"`
}

type progressResponse struct {
	OperationID     string `json:"operationId"`
	FileName        string `json:"fileName"`
	Status          string `json:"status"`
	ProgressPercent int    `json:"progressPercent"`
	CurrentPhase    string `json:"currentPhase"`
	TotalBytes      int    `json:"totalBytes"`
	Complete        bool   `json:"complete"`
	ErrorMessage    string `json:"errorMessage,omitempty"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func newCompressResponse(res service.Result) compressResponse {
	return compressResponse{
		Success:                 true,
		OperationID:             res.OperationID,
		FileName:                res.FileName,
		OriginalSize:            res.OriginalSize,
		CompressedSize:          res.ProcessedSize,
		CompressionRatio:        res.Ratio,
		FormattedRatio:          fmt.Sprintf("%.2f%%", res.Ratio*100),
		FormattedOriginalSize:   formatSize(res.OriginalSize),
		FormattedCompressedSize: formatSize(res.ProcessedSize),
		ProcessingTimeMillis:    res.Elapsed.Milliseconds(),
		Data:                    base64.StdEncoding.EncodeToString(res.Data),
	}
}

func newDecompressResponse(res service.Result) decompressResponse {
	return decompressResponse{
		Success:              true,
		OperationID:          res.OperationID,
		FileName:             res.FileName,
		CompressedSize:       res.OriginalSize,
		OriginalSize:         res.ProcessedSize,
		ProcessingTimeMillis: res.Elapsed.Milliseconds(),
		Data:                 base64.StdEncoding.EncodeToString(res.Data),
	}
}

func newAnalyzeResponse(fileName string, fileSize int, stats huffzip.Stats) analyzeResponse {
	return analyzeResponse{
		FileName:               fileName,
		FileSize:               fileSize,
		FormattedFileSize:      formatSize(fileSize),
		UniqueSymbols:          stats.UniqueSymbols,
		TotalSymbols:           stats.TotalSymbols,
		AverageCodeLength:      stats.AverageCodeLength,
		MaxCodeLength:          stats.MaxCodeLength,
		MinCodeLength:          stats.MinCodeLength,
		TheoreticalCompression: stats.TheoreticalRatio,
	}
}

func newValidateResponse(fileName string, valid bool) validateResponse {
	message := "file is not a huffzip compressed file"
	if valid {
		message = "file is a valid huffzip compressed file"
	}
	return validateResponse{Valid: valid, FileName: fileName, Message: message}
}

func newProgressResponse(p service.Progress) progressResponse {
	return progressResponse{
		OperationID:     p.OperationID,
		FileName:        p.FileName,
		Status:          string(p.Status),
		ProgressPercent: p.Percent,
		CurrentPhase:    p.Phase,
		TotalBytes:      p.TotalBytes,
		Complete:        p.Done(),
		ErrorMessage:    p.Error,
	}
}

func respondJSON(request *http.Request, code status.Code, model any) *http.Response {
	body, err := json.Marshal(model)
	if err != nil {
		return http.Error(request, err)
	}
	return request.Respond().
		Code(code).
		ContentType(mime.JSON).
		Bytes(body)
}

func respondError(request *http.Request, code status.Code, message string) *http.Response {
	return respondJSON(request, code, errorResponse{Success: false, Error: message})
}

// decompressFailureCode maps codec failures onto HTTP statuses: malformed
// input is the client's fault, anything else is ours.
func decompressFailureCode(err error) status.Code {
	if service.IsFormatError(err) {
		return status.BadRequest
	}
	return status.InternalServerError
}

// formatSize renders a byte count for humans.
func formatSize(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	value := float64(n)
	for _, unit := range []string{"KB", "MB", "GB", "TB"} {
		value /= 1024
		if value < 1024 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
	}
	return fmt.Sprintf("%.2f PB", value/1024)
}
