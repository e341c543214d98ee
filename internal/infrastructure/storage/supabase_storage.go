// Package storage implementa el puerto BlobStorage contra la API REST de
// Supabase Storage usando net/http; no requiere el SDK oficial.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/agenciaflow/agencia-api/internal/application/ports"
)

// Verificar en tiempo de compilación que SupabaseStorage implementa BlobStorage.
var _ ports.BlobStorage = (*SupabaseStorage)(nil)

// SupabaseStorage adaptador HTTP del storage de archivos.
type SupabaseStorage struct {
	baseURL    string // https://<proyecto>.supabase.co/storage/v1
	apiKey     string
	httpClient *http.Client
}

// NewSupabaseStorage construye el adaptador.
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewSupabaseStorage(baseURL, apiKey string) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			// Subidas de video pueden ser lentas; timeout generoso.
			Timeout: 120 * time.Second,
		},
	}
}

type storageError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Upload sube el archivo al bucket y devuelve la URL pública.
func (s *SupabaseStorage) Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("storage: API key no configurada")
	}

	endpoint := fmt.Sprintf("%s/object/%s/%s", s.baseURL, url.PathEscape(bucket), escapePath(path))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("storage: crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: subir archivo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("storage: subir archivo: %s", readError(resp))
	}

	publicURL := fmt.Sprintf("%s/object/public/%s/%s", s.baseURL, url.PathEscape(bucket), escapePath(path))
	return publicURL, nil
}

// Delete borra el archivo del bucket. Borrar un path inexistente no es error.
func (s *SupabaseStorage) Delete(ctx context.Context, bucket, path string) error {
	if s.apiKey == "" {
		return fmt.Errorf("storage: API key no configurada")
	}

	endpoint := fmt.Sprintf("%s/object/%s/%s", s.baseURL, url.PathEscape(bucket), escapePath(path))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("storage: crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("storage: borrar archivo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("storage: borrar archivo: %s", readError(resp))
	}
	return nil
}

// escapePath escapa cada segmento del path conservando los separadores.
func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

func readError(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var se storageError
	if err := json.Unmarshal(body, &se); err == nil && se.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", resp.StatusCode, se.Message)
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode)
}
