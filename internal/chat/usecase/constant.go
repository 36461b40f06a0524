package usecase

import "time"

// Log prefixes
const (
	LogPrefixMessage    = "chat.usecase.Message"
	LogPrefixTranscribe = "chat.usecase.Transcribe"
)

// Video defaults applied when neither hint nor config supplies a value.
const (
	DefaultVideoSeconds      = "4"
	DefaultVideoSize         = "720x1280"
	DefaultVideoPollInterval = 2 * time.Second
	DefaultVideoTimeout      = 180 * time.Second
)

// Assistant marker prefixes recorded into session history after media turns.
// Keeps future routing context aware media was produced without embedding
// binary data in conversational memory.
const (
	MarkerImageGenerated = "[image generated]"
	MarkerVideoGenerated = "[video generated]"
)

// Asset file extensions per modality.
const (
	ImageExt = "png"
	VideoExt = "mp4"
)
