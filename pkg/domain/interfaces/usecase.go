package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/aavshr/fixcache/pkg/domain/model"
)

type UseCase interface {
	HandleEvent(ctx context.Context, event *model.Event) error
}
