package rest

import (
	"context"
	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"github.com/heartmarshall/voicejournal-backend/internal/service/processing"
	"sync"
)

var _ processingService = &processingServiceMock{}

type processingServiceMock struct {
	AnalyzeFunc       func(ctx context.Context, input processing.AnalyzeInput) (domain.Analysis, error)
	GenerateImageFunc func(ctx context.Context, input processing.GenerateImageInput) (domain.GeneratedImage, error)
	TranscribeFunc    func(ctx context.Context, input processing.TranscribeInput) (processing.TranscribeResult, error)

	calls struct {
		Analyze []struct {
			Ctx   context.Context
			Input processing.AnalyzeInput
		}
		GenerateImage []struct {
			Ctx   context.Context
			Input processing.GenerateImageInput
		}
		Transcribe []struct {
			Ctx   context.Context
			Input processing.TranscribeInput
		}
	}
	lockAnalyze       sync.RWMutex
	lockGenerateImage sync.RWMutex
	lockTranscribe    sync.RWMutex
}

func (mock *processingServiceMock) Analyze(ctx context.Context, input processing.AnalyzeInput) (domain.Analysis, error) {
	if mock.AnalyzeFunc == nil {
		panic("processingServiceMock.AnalyzeFunc: method is nil but processingService.Analyze was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input processing.AnalyzeInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, callInfo)
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(ctx, input)
}

func (mock *processingServiceMock) AnalyzeCalls() []struct {
	Ctx   context.Context
	Input processing.AnalyzeInput
} {
	var calls []struct {
		Ctx   context.Context
		Input processing.AnalyzeInput
	}
	mock.lockAnalyze.RLock()
	calls = mock.calls.Analyze
	mock.lockAnalyze.RUnlock()
	return calls
}

func (mock *processingServiceMock) GenerateImage(ctx context.Context, input processing.GenerateImageInput) (domain.GeneratedImage, error) {
	if mock.GenerateImageFunc == nil {
		panic("processingServiceMock.GenerateImageFunc: method is nil but processingService.GenerateImage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input processing.GenerateImageInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockGenerateImage.Lock()
	mock.calls.GenerateImage = append(mock.calls.GenerateImage, callInfo)
	mock.lockGenerateImage.Unlock()
	return mock.GenerateImageFunc(ctx, input)
}

func (mock *processingServiceMock) GenerateImageCalls() []struct {
	Ctx   context.Context
	Input processing.GenerateImageInput
} {
	var calls []struct {
		Ctx   context.Context
		Input processing.GenerateImageInput
	}
	mock.lockGenerateImage.RLock()
	calls = mock.calls.GenerateImage
	mock.lockGenerateImage.RUnlock()
	return calls
}

func (mock *processingServiceMock) Transcribe(ctx context.Context, input processing.TranscribeInput) (processing.TranscribeResult, error) {
	if mock.TranscribeFunc == nil {
		panic("processingServiceMock.TranscribeFunc: method is nil but processingService.Transcribe was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input processing.TranscribeInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockTranscribe.Lock()
	mock.calls.Transcribe = append(mock.calls.Transcribe, callInfo)
	mock.lockTranscribe.Unlock()
	return mock.TranscribeFunc(ctx, input)
}

func (mock *processingServiceMock) TranscribeCalls() []struct {
	Ctx   context.Context
	Input processing.TranscribeInput
} {
	var calls []struct {
		Ctx   context.Context
		Input processing.TranscribeInput
	}
	mock.lockTranscribe.RLock()
	calls = mock.calls.Transcribe
	mock.lockTranscribe.RUnlock()
	return calls
}
