package export_room_report

import (
	"context"
	"io"
	"time"
)

type ExportService interface {
	BuildRoomMonthReport(ctx context.Context, w io.Writer, roomID int64, year int, month time.Month) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
