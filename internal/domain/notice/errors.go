package notice

import "errors"

var ErrNoticeNotFound = errors.New("Notice not found")
