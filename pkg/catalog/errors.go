package catalog

import "errors"

var (
	ErrEmptyLanguage  = errors.New("catalog: language cannot be empty")
	ErrEmptyNamespace = errors.New("catalog: namespace cannot be empty")
	ErrEmptyKey       = errors.New("catalog: key cannot be empty")
	ErrNotFound       = errors.New("catalog: message not found")
	ErrInvalidFile    = errors.New("catalog: invalid template file")
	ErrNilSource      = errors.New("catalog: source cannot be nil")
	ErrNilFactory     = errors.New("catalog: factory cannot be nil")
	ErrInvalidEntry   = errors.New("catalog: invalid source entry")
	ErrEmptyRedisURL  = errors.New("catalog: empty redis connection URL")
	ErrRedisURL       = errors.New("catalog: failed to parse redis connection URL")
	ErrRedisConnect   = errors.New("catalog: failed to establish redis connection")
)
