package intake

import "errors"

var (
	ErrInvalidFileType = errors.New("invalid file type: only jpg, jpeg, png allowed")
	ErrInvalidImage    = errors.New("file is not a readable image")
	ErrFileTooLarge    = errors.New("file exceeds the upload limit")
)
