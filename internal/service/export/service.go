package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/ORS-RoomBookingService/pkg/ptr"
)

// Названия листов отчёта
const (
	sheetBookings     = "Bookings"
	sheetAvailability = "Availability"
)

// Service сервис выгрузки месячных отчётов по комнатам в XLSX
type Service struct {
	bookingRepo BookingRepository
	closureRepo ClosureRepository
	roomRepo    RoomRepository
	classifier  AvailabilityClassifier
	location    *time.Location
	logger      Logger
}

// NewService создает новый экземпляр сервиса выгрузки
func NewService(
	bookingRepo BookingRepository,
	closureRepo ClosureRepository,
	roomRepo RoomRepository,
	classifier AvailabilityClassifier,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		closureRepo: closureRepo,
		roomRepo:    roomRepo,
		classifier:  classifier,
		location:    location,
		logger:      logger,
	}
}

// BuildRoomMonthReport формирует XLSX отчёт по комнате за месяц и пишет его в w.
// Возвращает имя файла для Content-Disposition.
func (s *Service) BuildRoomMonthReport(ctx context.Context, w io.Writer, roomID int64, year int, month time.Month) (string, error) {
	s.logger.Info("BuildRoomMonthReport: room=%d, period=%d-%02d", roomID, year, int(month))

	if year < 2000 || year > 2100 || month < time.January || month > time.December {
		return "", fmt.Errorf("%w: %d-%02d", ErrInvalidPeriod, year, int(month))
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("BuildRoomMonthReport: room id=%d not found", roomID)
			return "", ErrRoomNotFound
		}
		s.logger.Error("BuildRoomMonthReport: repository error for room=%d: %v", roomID, err)
		return "", fmt.Errorf("%w: BuildRoomMonthReport - repository error: %v", ErrInternal, err)
	}

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, s.location)
	lastDay := firstDay.AddDate(0, 1, -1)

	bookings, err := s.bookingRepo.GetByRoomWithFilter(ctx, domain.RoomBookingsFilter{
		RoomID:          roomID,
		StartDate:       ptr.Ptr(firstDay),
		EndDate:         ptr.Ptr(lastDay),
		IncludeInactive: true,
	})
	if err != nil {
		s.logger.Error("BuildRoomMonthReport: bookings repository error for room=%d: %v", roomID, err)
		return "", fmt.Errorf("%w: BuildRoomMonthReport - repository error: %v", ErrInternal, err)
	}

	closures, err := s.closureRepo.GetByRoomAndDateRange(ctx, roomID, firstDay, lastDay)
	if err != nil {
		s.logger.Error("BuildRoomMonthReport: closures repository error for room=%d: %v", roomID, err)
		return "", fmt.Errorf("%w: BuildRoomMonthReport - repository error: %v", ErrInternal, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeBookingsSheet(f, bookings); err != nil {
		return "", fmt.Errorf("%w: BuildRoomMonthReport - write bookings sheet: %v", ErrInternal, err)
	}
	if err := s.writeAvailabilitySheet(f, year, month, bookings, closures); err != nil {
		return "", fmt.Errorf("%w: BuildRoomMonthReport - write availability sheet: %v", ErrInternal, err)
	}

	if err := f.Write(w); err != nil {
		s.logger.Error("BuildRoomMonthReport: write xlsx for room=%d: %v", roomID, err)
		return "", fmt.Errorf("%w: BuildRoomMonthReport - write xlsx: %v", ErrInternal, err)
	}

	filename := fmt.Sprintf("room-%d-%d-%02d.xlsx", room.ID, year, int(month))
	s.logger.Info("BuildRoomMonthReport: report %s built, bookings=%d, closures=%d",
		filename, len(bookings), len(closures))
	return filename, nil
}

func (s *Service) writeBookingsSheet(f *excelize.File, bookings []*domain.Booking) error {
	// Переименовываем дефолтный лист
	f.SetSheetName("Sheet1", sheetBookings)

	headers := []string{"Date", "Start", "End", "User ID", "Status", "Reference", "Cancellation Reason"}
	if err := writeRow(f, sheetBookings, 1, toCells(headers)); err != nil {
		return err
	}
	if err := boldRow(f, sheetBookings, 1, len(headers)); err != nil {
		return err
	}

	for i, b := range bookings {
		reason := ""
		if b.CancellationReason != nil {
			reason = *b.CancellationReason
		}
		row := []interface{}{
			b.Date.Format(domain.DateFormat),
			b.StartTime.String(),
			b.EndTime.String(),
			b.UserID,
			string(b.Status),
			b.Reference,
			reason,
		}
		if err := writeRow(f, sheetBookings, i+2, row); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) writeAvailabilitySheet(
	f *excelize.File,
	year int,
	month time.Month,
	bookings []*domain.Booking,
	closures []*domain.Closure,
) error {
	if _, err := f.NewSheet(sheetAvailability); err != nil {
		return err
	}

	headers := []string{"Date", "Availability"}
	if err := writeRow(f, sheetAvailability, 1, toCells(headers)); err != nil {
		return err
	}
	if err := boldRow(f, sheetAvailability, 1, len(headers)); err != nil {
		return err
	}

	perDayBookings := make(map[string][]*domain.Booking)
	for _, b := range bookings {
		key := b.Date.Format(domain.DateFormat)
		perDayBookings[key] = append(perDayBookings[key], b)
	}
	perDayClosures := make(map[string][]*domain.Closure)
	for _, c := range closures {
		key := c.Date.Format(domain.DateFormat)
		perDayClosures[key] = append(perDayClosures[key], c)
	}

	byDay := s.classifier.ClassifyMonth(year, month, perDayBookings, perDayClosures)

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, s.location)
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()

	for day := 1; day <= daysInMonth; day++ {
		key := time.Date(year, month, day, 0, 0, 0, 0, s.location).Format(domain.DateFormat)
		row := []interface{}{key, string(byDay[key])}
		if err := writeRow(f, sheetAvailability, day+1, row); err != nil {
			return err
		}
	}

	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	for i, val := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, val); err != nil {
			return err
		}
	}
	return nil
}

func boldRow(f *excelize.File, sheet string, rowNum, cols int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}
	startCell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	endCell, err := excelize.CoordinatesToCellName(cols, rowNum)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, startCell, endCell, style)
}

func toCells(headers []string) []interface{} {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}
