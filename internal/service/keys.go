package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// keyDelimiter separates the hierarchical segments of an object key.
	keyDelimiter = "/"
	// keyDateFormat is the calendar-date bucket inside an object key.
	keyDateFormat = "2006/01/02"
	// maxFilenameBytes caps the UTF-8 byte length of the original filename.
	maxFilenameBytes = 900
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// buildObjectKey derives the storage key for a new upload:
// {orgCode}/{yyyy/MM/dd}/{uuid}/{originalFilename}. The UUID makes the key
// unique per upload, so identical filenames stored the same day never collide.
func buildObjectKey(orgCode, originalFilename string) (string, error) {
	if strings.TrimSpace(orgCode) == "" {
		return "", fmt.Errorf("%w: organization code is required", ErrInvalidRequest)
	}
	if len(originalFilename) > maxFilenameBytes {
		return "", fmt.Errorf("%w: filename exceeds %d bytes", ErrInvalidRequest, maxFilenameBytes)
	}

	return strings.Join([]string{
		orgCode,
		timeNow().Format(keyDateFormat),
		uuid.NewString(),
		originalFilename,
	}, keyDelimiter), nil
}

// buildListPrefix derives the listing prefix for an organization and an
// optional date fragment. Fragment lengths 4, 6 and 8 select year, year-month
// and year-month-day buckets; any other non-blank length is appended verbatim
// with no delimiter (kept for compatibility with existing callers). A blank
// orgCode yields an empty prefix, meaning no filter at all.
func buildListPrefix(orgCode, dateString string) string {
	if strings.TrimSpace(orgCode) == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(orgCode)
	b.WriteString(keyDelimiter)

	if strings.TrimSpace(dateString) == "" {
		return b.String()
	}

	switch len(dateString) {
	case 4:
		b.WriteString(dateString)
		b.WriteString(keyDelimiter)
	case 6:
		b.WriteString(dateString[0:4])
		b.WriteString(keyDelimiter)
		b.WriteString(dateString[4:6])
		b.WriteString(keyDelimiter)
	case 8:
		b.WriteString(dateString[0:4])
		b.WriteString(keyDelimiter)
		b.WriteString(dateString[4:6])
		b.WriteString(keyDelimiter)
		b.WriteString(dateString[6:8])
		b.WriteString(keyDelimiter)
	default:
		b.WriteString(dateString)
	}
	return b.String()
}
