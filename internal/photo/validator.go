package photo

import (
	"log"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Rejection reasons shown to the user.
const (
	ReasonNoFile   = "no file uploaded"
	ReasonNotImage = "the file must be an image"
)

// imageExtensions are registered at init so validation does not depend on
// the host's /etc/mime.types, which slim container images often lack.
var imageExtensions = map[string]string{
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".ico":  "image/vnd.microsoft.icon",
	".heic": "image/heic",
	".heif": "image/heif",
}

func init() {
	for ext, typ := range imageExtensions {
		if err := mime.AddExtensionType(ext, typ); err != nil {
			log.Printf("photo: register %s as %s: %v", ext, typ, err)
		}
	}
}

// ValidateUpload checks an uploaded payload before anything is stored.
// The MIME type comes from the declared file name's extension only; a payload
// whose extension lies about its content is accepted.
//
// The content is also sniffed, but only as a diagnostic: a recognisable
// non-image format is logged and never changes the outcome.
func ValidateUpload(data []byte, declaredName string) *ValidationError {
	if len(data) == 0 {
		return &ValidationError{Reason: ReasonNoFile}
	}

	declared := mimeTypeFromName(declaredName)
	if primaryType(declared) != "image" {
		return &ValidationError{Reason: ReasonNotImage}
	}

	if sniffed, ok := suspiciousContent(data); ok {
		log.Printf("photo: %q declared as %s but content looks like %s", declaredName, declared, sniffed)
	}
	return nil
}

// mimeTypeFromName returns the media type registered for the extension of
// name, or "" when there is none.
func mimeTypeFromName(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(mime.TypeByExtension(ext))
	if err != nil {
		return ""
	}
	return mediaType
}

// suspiciousContent reports the sniffed type of data when it is a specific
// non-image format. Images and the generic text/binary fallbacks are not
// reported.
func suspiciousContent(data []byte) (string, bool) {
	sniffed := mimetype.Detect(data)
	if sniffed.Is("text/plain") || sniffed.Is("application/octet-stream") {
		return "", false
	}
	mediaType, _, _ := strings.Cut(sniffed.String(), ";")
	if primaryType(mediaType) == "image" {
		return "", false
	}
	return mediaType, true
}

func primaryType(mediaType string) string {
	primary, _, _ := strings.Cut(mediaType, "/")
	return primary
}
