package processing

import (
	"context"
	"sync"
)

var _ imageGenerator = &imageGeneratorMock{}

type imageGeneratorMock struct {
	GenerateImageFunc func(ctx context.Context, prompt string) ([]byte, error)

	calls struct {
		GenerateImage []struct {
			Ctx    context.Context
			Prompt string
		}
	}
	lockGenerateImage sync.RWMutex
}

func (mock *imageGeneratorMock) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if mock.GenerateImageFunc == nil {
		panic("imageGeneratorMock.GenerateImageFunc: method is nil but imageGenerator.GenerateImage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{
		Ctx:    ctx,
		Prompt: prompt,
	}
	mock.lockGenerateImage.Lock()
	mock.calls.GenerateImage = append(mock.calls.GenerateImage, callInfo)
	mock.lockGenerateImage.Unlock()
	return mock.GenerateImageFunc(ctx, prompt)
}

func (mock *imageGeneratorMock) GenerateImageCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	var calls []struct {
		Ctx    context.Context
		Prompt string
	}
	mock.lockGenerateImage.RLock()
	calls = mock.calls.GenerateImage
	mock.lockGenerateImage.RUnlock()
	return calls
}
