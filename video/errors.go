package video

import (
	"errors"
	"time"
)

var (
	// ErrInvalidInput means the URL was empty.
	ErrInvalidInput = errors.New("please enter a video URL")
	// ErrUnrecognizedURL means no video id could be found in the input.
	ErrUnrecognizedURL = errors.New("not a valid YouTube URL")
	// ErrNoEligibleVariant means there is no MP4 with audio to offer.
	ErrNoEligibleVariant = errors.New("no MP4 videos with audio available")
	// ErrNoDownloadURL means the chosen variant carries no link.
	ErrNoDownloadURL = errors.New("could not get the download link")
)

// FallbackMessage is used when the upstream gives no reason for a failure.
const FallbackMessage = "could not reach the video API"

// UpstreamError is any failure talking to the video API.
type UpstreamError struct {
	// Message is the service-provided reason, or FallbackMessage.
	Message string
	Status  int
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return FallbackMessage
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ErrorKind groups errors by how they are presented.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidInput
	KindUnrecognizedURL
	KindUpstream
	KindNoEligibleVariant
	KindNoDownloadURL
)

var kindNames = map[ErrorKind]string{
	KindUnknown:           "unknown",
	KindInvalidInput:      "invalid_input",
	KindUnrecognizedURL:   "unrecognized_url",
	KindUpstream:          "upstream",
	KindNoEligibleVariant: "no_eligible_variant",
	KindNoDownloadURL:     "no_download_url",
}

func (k ErrorKind) String() string {
	return kindNames[k]
}

// Kind classifies err.
func Kind(err error) ErrorKind {
	var upstream *UpstreamError
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrUnrecognizedURL):
		return KindUnrecognizedURL
	case errors.Is(err, ErrNoEligibleVariant):
		return KindNoEligibleVariant
	case errors.Is(err, ErrNoDownloadURL):
		return KindNoDownloadURL
	case errors.As(err, &upstream):
		return KindUpstream
	default:
		return KindUnknown
	}
}

const (
	inputErrorDelay = 3 * time.Second
	otherErrorDelay = 5 * time.Second
)

// ClearDelay is how long an error of the given kind stays on screen.
func ClearDelay(kind ErrorKind) time.Duration {
	switch kind {
	case KindInvalidInput, KindUnrecognizedURL:
		return inputErrorDelay
	default:
		return otherErrorDelay
	}
}
