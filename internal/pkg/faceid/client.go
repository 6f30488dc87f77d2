package faceid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net"
	"net/http"

	"github.com/worklens/workforce-backend-go/internal/config"
)

// ErrUnavailable reports that the encoding sidecar could not be reached.
var ErrUnavailable = errors.New("face encoding service unavailable")

// ErrNoFace reports that the sidecar found no face in the image.
var ErrNoFace = errors.New("no face detected in image")

// Client talks to the face encoding sidecar over HTTP. The sidecar accepts
// an image and returns a 128-dimension face encoding vector.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new face encoding client
func NewClient(cfg config.FaceIDConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// APIError represents a sidecar API error
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("faceid API error [%d] %s: %s", e.StatusCode, e.ErrorCode, e.Message)
}

type encodeResponse struct {
	Success  bool      `json:"success"`
	Encoding []float64 `json:"encoding"`
	Error    string    `json:"error"`
}

// Encode submits an image and returns its face encoding. It returns
// ErrNoFace when the sidecar reports no detectable face, and ErrUnavailable
// when the sidecar cannot be reached.
func (c *Client) Encode(ctx context.Context, image []byte, contentType string) ([]float64, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", "face")
	if err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/encode", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrUnavailable
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, ErrUnavailable
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result encodeResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, ErrorCode: "BAD_RESPONSE", Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK || !result.Success {
		if result.Error == "NO_FACE_DETECTED" {
			return nil, ErrNoFace
		}
		return nil, &APIError{StatusCode: resp.StatusCode, ErrorCode: result.Error, Message: "encoding request rejected"}
	}

	if len(result.Encoding) == 0 {
		return nil, ErrNoFace
	}

	return result.Encoding, nil
}

// Distance implements the encoder contract expected by the face domain.
func (c *Client) Distance(a, b []float64) float64 {
	return Distance(a, b)
}

// Distance returns the euclidean distance between two face encodings.
// Mismatched vector lengths yield +Inf so they never compare as a match.
func Distance(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return math.Inf(1)
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
