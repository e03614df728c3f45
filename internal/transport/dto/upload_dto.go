// internal/transport/dto/upload_dto.go
package dto

// UploadResponse returns where an uploaded object can be fetched from.
type UploadResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
