package file

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sk9212k/opaltech-aws/internal/core/domain"
)

const maxKeyNameLength = 255

func (f *fileService) storageKey(fileName string) (string, error) {
	switch f.fileUploadCfg.KeyStrategy {
	case domain.KeyStrategyUnique:
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("failed to generate object id: %w", err)
		}
		return fmt.Sprintf("%s/%s", id.String(), SanitizeFileName(fileName)), nil
	default:
		return fileName, nil
	}
}

// SanitizeFileName turns a client supplied name into a single safe key segment
func SanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	name = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsControl(r):
			return -1
		case r == '/' || r == ':' || r == '?' || r == '#' || r == '%':
			return '_'
		default:
			return r
		}
	}, name)

	name = strings.Trim(name, " .")

	if len(name) > maxKeyNameLength {
		ext := filepath.Ext(name)
		if len(ext) >= maxKeyNameLength {
			ext = ""
		}
		cut := maxKeyNameLength - len(ext)
		// keep whole runes, keys must stay valid UTF-8
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut] + ext
	}

	if name == "" {
		name = "unnamed"
	}
	return name
}
