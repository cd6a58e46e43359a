package upload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxAvatarBytes is the largest accepted avatar payload.
const MaxAvatarBytes = 2 * 1024 * 1024

var (
	ErrTooLarge = errors.New("image size must be less than 2MB")
	ErrNotImage = errors.New("file is not an image")
)

// ValidateAvatar checks an uploaded payload before it is handed to the
// account manager: it must be image content and fit the size cap.
// The detected mime type is returned for encoding.
func ValidateAvatar(data []byte) (string, error) {
	if len(data) > MaxAvatarBytes {
		return "", ErrTooLarge
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", ErrNotImage
	}
	return mtype.String(), nil
}

// DataURI encodes a validated payload as an image data URI, the format
// the avatar slots persist.
func DataURI(mime string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}
