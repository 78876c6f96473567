package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrInvalidConfig     = goerr.New("invalid configuration")
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")
	ErrUnsupportedEvent  = goerr.New("unsupported event")
)
