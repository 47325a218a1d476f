package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrAnonymous         = fmt.Errorf("no authenticated user")
	ErrEmptyMessage      = fmt.Errorf("message content is empty")
	ErrContentTooLong    = fmt.Errorf("message content exceeds the maximum length")
	ErrUnknownOptimistic = fmt.Errorf("no optimistic entry with this local id")
	ErrNotYourTurn       = fmt.Errorf("it is not your turn")
	ErrCooldownActive    = fmt.Errorf("turn cooldown has not elapsed")
	ErrNoActiveSession   = fmt.Errorf("no active turn session")
	ErrNotAnImage        = fmt.Errorf("submitted file is not an image")
	ErrImageTooLarge     = fmt.Errorf("submitted image exceeds the size limit")
	ErrAlreadyNudged     = fmt.Errorf("turn holder already nudged this turn")
	ErrStreamClosed      = fmt.Errorf("event stream closed")
	ErrCacheMiss         = fmt.Errorf("no cached history for this room")
	ErrInvalidToken      = fmt.Errorf("session token is invalid")
)
