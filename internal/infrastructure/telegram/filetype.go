package telegram

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	domain "file-vault-api/internal/domain/file"
)

// extensionTypes classifies by extension when the MIME type's top-level
// category is not image/video/audio. Unknown extensions are documents.
var extensionTypes = map[string]domain.Type{
	".pdf": domain.TypePDF,

	".doc":  domain.TypeDocument,
	".docx": domain.TypeDocument,
	".txt":  domain.TypeDocument,
	".xls":  domain.TypeDocument,
	".xlsx": domain.TypeDocument,
	".ppt":  domain.TypeDocument,
	".pptx": domain.TypeDocument,

	".jpg":  domain.TypeImage,
	".jpeg": domain.TypeImage,
	".png":  domain.TypeImage,
	".gif":  domain.TypeImage,
	".webp": domain.TypeImage,

	".mp4": domain.TypeVideo,
	".avi": domain.TypeVideo,
	".mov": domain.TypeVideo,
	".mkv": domain.TypeVideo,

	".mp3": domain.TypeAudio,
	".wav": domain.TypeAudio,
	".ogg": domain.TypeAudio,

	".js":   domain.TypeCode,
	".jsx":  domain.TypeCode,
	".html": domain.TypeCode,
	".css":  domain.TypeCode,
	".json": domain.TypeCode,
	".py":   domain.TypeCode,

	".zip": domain.TypeArchive,
	".rar": domain.TypeArchive,
	".7z":  domain.TypeArchive,
	".tar": domain.TypeArchive,
	".gz":  domain.TypeArchive,
}

// ClassifyFile prefers the reported MIME top-level category and falls back
// to the extension table.
func ClassifyFile(filename, mimeType string) domain.Type {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return domain.TypeImage
	case strings.HasPrefix(mimeType, "video/"):
		return domain.TypeVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return domain.TypeAudio
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}

	return domain.TypeDocument
}

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count the way listings display it: base 1024,
// two decimals, "1.5 MB".
func FormatSize(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	v := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100

	return fmt.Sprintf("%s %s", trimTrailingZeros(v), sizeUnits[i])
}

func trimTrailingZeros(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
