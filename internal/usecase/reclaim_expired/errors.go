package reclaim_expired

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reclaim_expired: internal error")
)
