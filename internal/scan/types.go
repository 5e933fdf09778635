package scan

import (
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	MinUsernameLength = 2
	MaxUsernameLength = 50

	// DefaultDelay is the pause inserted after every probe.
	DefaultDelay = 100 * time.Millisecond
)

var (
	ErrUsernameLength = errors.Errorf("username must be between %d and %d characters", MinUsernameLength, MaxUsernameLength)
	ErrTimeout        = errors.New("timeout must be a positive integer")
)

// RunConfig is validated once before a run and left untouched afterwards.
type RunConfig struct {
	Username       string
	Verbose        bool
	TimeoutSeconds int
}

func (c RunConfig) Validate() error {
	if n := utf8.RuneCountInString(c.Username); n < MinUsernameLength || n > MaxUsernameLength {
		return errors.Wrapf(ErrUsernameLength, "got %d", n)
	}
	if c.TimeoutSeconds <= 0 {
		return errors.Wrapf(ErrTimeout, "got %d", c.TimeoutSeconds)
	}
	return nil
}

func (c RunConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type Config struct {
	// Delay is slept after every platform regardless of its outcome.
	Delay time.Duration
}

// ProbeResult is the outcome of probing one platform.
type ProbeResult struct {
	Platform   string
	URL        string
	StatusCode int
	Succeeded  bool
	Err        error
}

// FoundProfile is a platform whose probe returned exactly 200.
type FoundProfile struct {
	Platform     string `json:"platform"`
	URL          string `json:"url"`
	ResponseCode int    `json:"response_code"`
}

// Progress is emitted before each platform is probed. Index is 1-based.
type Progress struct {
	Index    int
	Total    int
	Platform string
}

// Detail reports the status of a completed probe (verbose runs only).
type Detail struct {
	Platform   string
	StatusCode int
	URL        string
}

// Failure reports a transport error (verbose runs only).
type Failure struct {
	Platform string
	URL      string
	Err      error
}

// Observer receives run events. Calls happen on the goroutine running the scan.
type Observer interface {
	Progress(Progress)
	Detail(Detail)
	Found(FoundProfile)
	Failure(Failure)
}

type nopObserver struct{}

func (nopObserver) Progress(Progress) {}
func (nopObserver) Detail(Detail) {}
func (nopObserver) Found(FoundProfile) {}
func (nopObserver) Failure(Failure) {}
