package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"

	"github.com/limaJavier/examscheduling/internal/model"
)

// SubjectRecord is the CSV row shape for subject imports.
type SubjectRecord struct {
	Id              uint64 `csv:"id"`
	Code            string `csv:"code"`
	Name            string `csv:"name"`
	Kind            string `csv:"kind"`
	Semester        string `csv:"semester"`
	Difficulty      string `csv:"difficulty"`
	DurationMinutes uint64 `csv:"duration_minutes"`
}

// RoomRecord is the CSV row shape for room imports.
type RoomRecord struct {
	Id       uint64 `csv:"id"`
	Name     string `csv:"name"`
	Kind     string `csv:"kind"`
	Capacity uint64 `csv:"capacity"`
}

var (
	subjectKinds = []model.SubjectKind{model.Theory, model.Practical}
	roomKinds    = []model.RoomKind{model.Classroom, model.Lab}
	difficulties = []model.Difficulty{model.Easy, model.Medium, model.Hard}
)

// LoadSubjects reads and parses the given CSV file for subject data.
func LoadSubjects(path string, delim rune) ([]model.Subject, error) {
	setDelimiter(delim)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open subjects file: %v", err)
	}
	defer file.Close()

	records := []*SubjectRecord{}
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("cannot parse subjects file: %v", err)
	}

	subjects := make([]model.Subject, 0, len(records))
	for _, record := range records {
		if !lo.Contains(subjectKinds, model.SubjectKind(record.Kind)) {
			return nil, fmt.Errorf("subject %v has invalid kind %q", record.Code, record.Kind)
		}
		if !lo.Contains(difficulties, model.Difficulty(record.Difficulty)) {
			return nil, fmt.Errorf("subject %v has invalid difficulty %q", record.Code, record.Difficulty)
		}
		subjects = append(subjects, model.Subject{
			Id:              record.Id,
			Code:            record.Code,
			Name:            record.Name,
			Kind:            model.SubjectKind(record.Kind),
			Semester:        record.Semester,
			Difficulty:      model.Difficulty(record.Difficulty),
			DurationMinutes: record.DurationMinutes,
		})
	}
	return subjects, nil
}

// LoadRooms reads and parses the given CSV file for room data.
func LoadRooms(path string, delim rune) ([]model.Room, error) {
	setDelimiter(delim)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open rooms file: %v", err)
	}
	defer file.Close()

	records := []*RoomRecord{}
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("cannot parse rooms file: %v", err)
	}

	rooms := make([]model.Room, 0, len(records))
	for _, record := range records {
		if !lo.Contains(roomKinds, model.RoomKind(record.Kind)) {
			return nil, fmt.Errorf("room %v has invalid kind %q", record.Name, record.Kind)
		}
		rooms = append(rooms, model.Room{
			Id:       record.Id,
			Name:     record.Name,
			Kind:     model.RoomKind(record.Kind),
			Capacity: record.Capacity,
		})
	}
	return rooms, nil
}

func setDelimiter(delim rune) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		reader := csv.NewReader(in)
		reader.Comma = delim
		return reader
	})
}
