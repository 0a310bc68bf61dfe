package models

import "time"

// ImageURLPrefix is the API path images are served from.
const ImageURLPrefix = "/api/images/"

// ImageStorage указывает, где хранятся байты изображения
type ImageStorage string

const (
	// ImageStorageObject байты лежат в объектном хранилище
	ImageStorageObject ImageStorage = "object"
	// ImageStorageInline байты закодированы и лежат в реляционной БД
	ImageStorageInline ImageStorage = "inline"
)

// Image описывает загруженное изображение визитки.
type Image struct {
	UploadedAt   time.Time    `json:"uploaded_at"`
	CardID       *int64       `json:"card_id,omitempty"`
	Filename     string       `json:"filename"`
	ContentType  string       `json:"content_type"`
	OriginalName string       `json:"original_name"`
	Storage      ImageStorage `json:"storage"`
	ETag         string       `json:"etag"`
	Data         []byte       `json:"-"` // Data заполняется только для inline-хранения
	Size         int64        `json:"size"`
}

// URL returns the public URL of the image.
func (i *Image) URL() string {
	return ImageURLPrefix + i.Filename
}
