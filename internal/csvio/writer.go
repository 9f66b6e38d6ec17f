package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"

	"github.com/limaJavier/examscheduling/internal/model"
)

const exportDateLayout = "02-01-2006"

// ScheduleRow is the CSV row shape for schedule exports.
type ScheduleRow struct {
	Date    string `csv:"date"`
	Code    string `csv:"code"`
	Subject string `csv:"subject"`
	Room    string `csv:"room"`
	Time    string `csv:"time"`
}

// ExportSchedule writes a produced schedule to the CSV file at path,
// replacing any existing file.
func ExportSchedule(schedule []model.ScheduleItem, path string) error {
	rows := scheduleRows(schedule)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create schedule file: %v", err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("cannot write schedule file: %v", err)
	}
	return nil
}

// ExportScheduleString renders a produced schedule as a CSV document.
func ExportScheduleString(schedule []model.ScheduleItem) (string, error) {
	rows := scheduleRows(schedule)
	return gocsv.MarshalString(&rows)
}

func scheduleRows(schedule []model.ScheduleItem) []*ScheduleRow {
	return lo.Map(schedule, func(item model.ScheduleItem, _ int) *ScheduleRow {
		return &ScheduleRow{
			Date:    item.Date.Format(exportDateLayout),
			Code:    item.Subject.Code,
			Subject: item.Subject.Name,
			Room:    item.Room.Name,
			Time:    fmt.Sprintf("%v - %v", item.StartTime, item.EndTime),
		}
	})
}
