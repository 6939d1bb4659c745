package document

import "strings"

// Kind is the rendering strategy for a document preview.
type Kind string

const (
	KindImage   Kind = "image"
	KindPdf     Kind = "pdf"
	KindGeneric Kind = "generic"
)

var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"bmp":  true,
	"webp": true,
}

// Classify decides how a document should be rendered without downloading it:
// by declared MIME type first, by file extension as fallback.
func Classify(doc Document) Kind {
	mime := strings.ToLower(strings.TrimSpace(doc.MimeHint))
	if strings.HasPrefix(mime, "image/") {
		return KindImage
	}
	if mime == "application/pdf" {
		return KindPdf
	}

	ext := extension(doc.Name)
	if ext == "" {
		ext = extension(doc.Location)
	}
	if imageExtensions[ext] {
		return KindImage
	}
	if ext == "pdf" {
		return KindPdf
	}
	return KindGeneric
}

// IsTransient reports whether a location is a session-local reference rather
// than a durable server path.
func IsTransient(location string) bool {
	return strings.HasPrefix(location, "blob:") || strings.HasPrefix(location, "data:")
}

// ResolveURL derives a servable URL for a document. Transient references pass
// through unchanged. Persisted locations arrive as full server filesystem
// paths, so the last path segment is re-joined under {origin}/uploads/; when
// no segment can be extracted the normalized path is joined to the origin
// directly.
func ResolveURL(doc Document, serverOrigin string) string {
	loc := doc.Location
	if loc == "" {
		return ""
	}
	if IsTransient(loc) {
		return loc
	}

	if name := lastSegment(loc); name != "" {
		return strings.TrimRight(serverOrigin, "/") + "/uploads/" + name
	}

	normalized := strings.ReplaceAll(loc, "\\", "/")
	return strings.TrimRight(serverOrigin, "/") + "/" + strings.TrimLeft(normalized, "/")
}

// lastSegment extracts the stored file name from a path, splitting on both
// separators since the backend may run on either platform.
func lastSegment(path string) string {
	normalized := strings.ReplaceAll(path, "\\", "/")
	normalized = strings.TrimRight(normalized, "/")
	if normalized == "" {
		return ""
	}
	idx := strings.LastIndex(normalized, "/")
	return normalized[idx+1:]
}

func extension(name string) string {
	seg := lastSegment(name)
	idx := strings.LastIndex(seg, ".")
	if idx < 0 || idx == len(seg)-1 {
		return ""
	}
	return strings.ToLower(seg[idx+1:])
}

// mimeFromExtension derives a MIME hint for persisted documents, which carry
// only a storage path.
func mimeFromExtension(name string) string {
	switch extension(name) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "bmp":
		return "image/bmp"
	case "webp":
		return "image/webp"
	case "pdf":
		return "application/pdf"
	case "txt":
		return "text/plain"
	case "csv":
		return "text/csv"
	case "doc":
		return "application/msword"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "xls":
		return "application/vnd.ms-excel"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return ""
	}
}
