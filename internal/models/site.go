package models

// PageResolution is the page a client path resolves to.
type PageResolution struct {
	Path     string            `json:"path"`
	Page     string            `json:"page"`
	Params   map[string]string `json:"params,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}

// SiteConfig is static client configuration.
type SiteConfig struct {
	LogoPath       string `json:"logoPath"`
	ImageBucket    string `json:"imageBucket"`
	BulletinBucket string `json:"bulletinBucket"`
}

// UploadRequest asks for a signed upload URL.
type UploadRequest struct {
	Bucket   string `json:"bucket" binding:"required"`
	FileName string `json:"fileName" binding:"required"`
}

// UploadTicket lets the client upload straight to object storage.
type UploadTicket struct {
	Bucket    string `json:"bucket"`
	Path      string `json:"path"`
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
}
