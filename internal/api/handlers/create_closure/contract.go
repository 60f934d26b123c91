package create_closure

import (
	"context"

	createClosure "github.com/m04kA/ORS-RoomBookingService/internal/usecase/create_closure"
)

type CreateClosureUseCase interface {
	Execute(ctx context.Context, req *createClosure.Request) (*createClosure.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
