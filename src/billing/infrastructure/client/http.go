package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"pos/src/billing/domain/entity"
)

// Config de transporte compartida por los clientes HTTP contra
// inventory-service. Timeout fijo en cada request para que la UI del
// terminal nunca quede colgada esperando.
const defaultTimeout = 10 * time.Second

// apiBaseURL obtiene la URL base del API remoto (incluye /api)
func apiBaseURL() string {
	base := os.Getenv("INVENTORY_API_URL")
	if base == "" {
		base = "http://localhost:8080/api" // Default para entorno local
	}
	return strings.TrimRight(base, "/")
}

// apiTimeout obtiene el timeout de requests en segundos
func apiTimeout() time.Duration {
	if v := os.Getenv("INVENTORY_HTTP_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultTimeout
}

// apiErrorBody cuerpo de error JSON de inventory-service
type apiErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// transportError arma un TransportError con el mensaje del servidor
// cuando viene en el body; si no, un mensaje genérico con el status
func transportError(statusCode int, body []byte) *entity.TransportError {
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return &entity.TransportError{StatusCode: statusCode, Message: parsed.Message}
		}
		if parsed.Error != "" {
			return &entity.TransportError{StatusCode: statusCode, Message: parsed.Error}
		}
	}
	return &entity.TransportError{StatusCode: statusCode, Message: strings.TrimSpace(string(body))}
}

// doJSON ejecuta un request JSON contra inventory-service y decodifica
// la respuesta en out (out puede ser nil para respuestas sin cuerpo).
// - fallo de red/timeout → TransportError sin status
// - 404 → entity.ErrProductNotFound cuando notFoundAsMiss es true
// - otro non-2xx → TransportError con mensaje del servidor
func doJSON(ctx context.Context, httpClient *http.Client, method, url string, payload any, out any, notFoundAsMiss bool) error {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("error marshalling request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return &entity.TransportError{Message: fmt.Sprintf("error calling inventory-service: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &entity.TransportError{Message: fmt.Sprintf("error reading response: %v", err)}
	}

	if resp.StatusCode == http.StatusNotFound && notFoundAsMiss {
		return entity.ErrProductNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return transportError(resp.StatusCode, body)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return &entity.TransportError{Message: fmt.Sprintf("error unmarshalling response: %v", err)}
		}
	}
	return nil
}
