package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/limaJavier/examscheduling/internal/csvio"
	"github.com/limaJavier/examscheduling/internal/fd"
	"github.com/limaJavier/examscheduling/internal/model"
)

// Exit codes follow the solver convention used across the project: 10 for a
// produced schedule, 20 for proved infeasibility, 25 for an exhausted budget
// and 15 for a schedule that failed verification.
const (
	exitScheduled  = 10
	exitVerifyFail = 15
	exitInfeasible = 20
	exitUnknown    = 25
)

func main() {
	// Define arguments
	filePtr := flag.String("file", "", "Path to a JSON input file carrying subjects, rooms, window and settings")
	subjectsPtr := flag.String("subjects", "", "Path to a subjects CSV file (used with -rooms, -start and -end instead of -file)")
	roomsPtr := flag.String("rooms", "", "Path to a rooms CSV file")
	startPtr := flag.String("start", "", "First candidate exam day (YYYY-MM-DD)")
	endPtr := flag.String("end", "", "Last candidate exam day (YYYY-MM-DD)")
	outPtr := flag.String("out", "", "Path to the output file (written as CSV when it ends in .csv, JSON otherwise); if empty, JSON is written to the standard output")
	timeoutPtr := flag.Duration("timeout", 0, "Wall-clock budget for the solver; 0 means no deadline")
	stepsPtr := flag.Uint64("steps", 0, "Search-step budget for the solver; 0 means the default budget")
	delimPtr := flag.String("delimiter", ",", "Field delimiter of the CSV input files")
	flag.Parse()

	// Validate arguments
	if *filePtr == "" && (*subjectsPtr == "" || *roomsPtr == "" || *startPtr == "" || *endPtr == "") {
		log.Fatal("either an input file or subjects/rooms CSV files with a start and end date must be specified")
	} else if len(*delimPtr) != 1 {
		log.Fatalf("%v is not a valid delimiter", *delimPtr)
	}

	// Extract input
	input, err := readInput(*filePtr, *subjectsPtr, *roomsPtr, *startPtr, *endPtr, rune((*delimPtr)[0]))
	if err != nil {
		log.Fatalf("cannot read input: %v", err)
	}

	// Initialize engines
	solver := fd.NewBacktrackSolver(*stepsPtr)
	scheduler := model.NewScheduler(solver)

	ctx := context.Background()
	if *timeoutPtr > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeoutPtr)
		defer cancel()
	}

	// Build schedule
	schedule, err := scheduler.Build(ctx, input)
	if errors.Is(err, model.ErrInfeasible) {
		fmt.Println("No feasible schedule under the given constraints")
		os.Exit(exitInfeasible)
	} else if errors.Is(err, model.ErrUnknown) {
		fmt.Println("Solver budget exhausted without an answer")
		os.Exit(exitUnknown)
	} else if err != nil {
		log.Fatalf("an error occurred during schedule construction: %v", err)
	}

	// Verify schedule correctness
	if !scheduler.Verify(schedule, input) {
		log.Println("produced schedule failed verification")
		os.Exit(exitVerifyFail)
	}

	if err := writeOutput(schedule, *outPtr); err != nil {
		log.Fatalf("cannot write output: %v", err)
	}
	os.Exit(exitScheduled)
}

func readInput(file, subjectsFile, roomsFile, start, end string, delim rune) (model.ScheduleInput, error) {
	if file != "" {
		return model.InputFromJson(file)
	}

	subjects, err := csvio.LoadSubjects(subjectsFile, delim)
	if err != nil {
		return model.ScheduleInput{}, err
	}
	rooms, err := csvio.LoadRooms(roomsFile, delim)
	if err != nil {
		return model.ScheduleInput{}, err
	}

	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return model.ScheduleInput{}, fmt.Errorf("cannot parse start date %q: %v", start, err)
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return model.ScheduleInput{}, fmt.Errorf("cannot parse end date %q: %v", end, err)
	}

	return model.ScheduleInput{
		Subjects: subjects,
		Rooms:    rooms,
		Window:   model.CalendarWindow{Start: startDate, End: endDate},
		Settings: model.DefaultSettings(),
	}, nil
}

func writeOutput(schedule []model.ScheduleItem, outFile string) error {
	if strings.HasSuffix(outFile, ".csv") {
		return csvio.ExportSchedule(schedule, outFile)
	}

	scheduleJson, err := json.Marshal(schedule)
	if err != nil {
		return err
	}

	if outFile == "" {
		fmt.Println(string(scheduleJson))
		return nil
	}
	return os.WriteFile(outFile, scheduleJson, 0666)
}
