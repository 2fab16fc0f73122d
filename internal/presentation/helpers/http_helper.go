package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	presentationProtocols "github.com/flavourly/flavourly-backend/internal/presentation/protocols"
)

func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	if body == nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader(nil)),
			StatusCode: statusCode,
		}
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"error":"an error occurred when encoding response"}`))),
			StatusCode: http.StatusInternalServerError,
		}
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(encoded)),
		StatusCode: statusCode,
	}
}

// CreateFileResponse serves raw bytes, used by the shopping list export.
func CreateFileResponse(data []byte, contentType string, statusCode int) *presentationProtocols.HttpResponse {
	return &presentationProtocols.HttpResponse{
		Body:        io.NopCloser(bytes.NewReader(data)),
		StatusCode:  statusCode,
		ContentType: contentType,
	}
}
