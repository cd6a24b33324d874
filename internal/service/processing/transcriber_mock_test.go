package processing

import (
	"context"
	"sync"
)

var _ transcriber = &transcriberMock{}

type transcriberMock struct {
	TranscribeFunc func(ctx context.Context, filename string, audio []byte) (string, error)

	calls struct {
		Transcribe []struct {
			Ctx      context.Context
			Filename string
			Audio    []byte
		}
	}
	lockTranscribe sync.RWMutex
}

func (mock *transcriberMock) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	if mock.TranscribeFunc == nil {
		panic("transcriberMock.TranscribeFunc: method is nil but transcriber.Transcribe was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Filename string
		Audio    []byte
	}{
		Ctx:      ctx,
		Filename: filename,
		Audio:    audio,
	}
	mock.lockTranscribe.Lock()
	mock.calls.Transcribe = append(mock.calls.Transcribe, callInfo)
	mock.lockTranscribe.Unlock()
	return mock.TranscribeFunc(ctx, filename, audio)
}

func (mock *transcriberMock) TranscribeCalls() []struct {
	Ctx      context.Context
	Filename string
	Audio    []byte
} {
	var calls []struct {
		Ctx      context.Context
		Filename string
		Audio    []byte
	}
	mock.lockTranscribe.RLock()
	calls = mock.calls.Transcribe
	mock.lockTranscribe.RUnlock()
	return calls
}
