package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Message runs one full conversational turn: resolve session, route,
	// dispatch to the matching generator, update session state.
	Message(ctx context.Context, input MessageInput) (MessageOutput, error)

	// Transcribe converts uploaded audio into plain text.
	Transcribe(ctx context.Context, input TranscribeInput) (TranscribeOutput, error)
}
