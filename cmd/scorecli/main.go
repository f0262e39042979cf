package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/nutridiary/internal/diary"
	"github.com/2beens/nutridiary/internal/logging"
	"github.com/2beens/nutridiary/internal/nutrients"
	"github.com/2beens/nutridiary/internal/profile"
	"github.com/2beens/nutridiary/internal/scoring"
	"github.com/2beens/nutridiary/internal/trends"
)

type inputDay struct {
	Date   string             `json:"date"`
	Record *diary.DailyRecord `json:"record"`
}

// Input is a self-contained scoring request: the day to score and the
// history to analyse.
type Input struct {
	Profile *profile.UserProfile `json:"profile"`
	Targets nutrients.Targets    `json:"targets"`
	Today   *diary.DailyRecord   `json:"today"`
	History []inputDay           `json:"history"`
}

type Output struct {
	Score  *scoring.Report  `json:"score"`
	Trends *trends.Insights `json:"trends"`
}

func main() {
	inputPath := flag.String("input", "-", "input JSON file, - for stdin")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{
		LogLevel:    *logLevel,
		LogToStdout: false,
	})
	log.SetOutput(os.Stderr)

	in := io.Reader(os.Stdin)
	if *inputPath != "-" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatalf("open input: %s", err)
		}
		defer f.Close()
		in = f
	}

	if err := run(in, os.Stdout, *pretty); err != nil {
		log.Errorf("score: %s", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, pretty bool) error {
	var input Input
	if err := json.NewDecoder(in).Decode(&input); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	days := make([]diary.Day, 0, len(input.History))
	for _, d := range input.History {
		date, err := diary.ParseDate(d.Date)
		if err != nil {
			log.Warnf("skipping history day with bad date [%s]: %s", d.Date, err)
			continue
		}
		days = append(days, diary.Day{Date: date, Record: d.Record})
	}
	log.Debugf("scoring with %d history days", len(days))

	output := Output{
		Score:  scoring.NewScorer(scoring.DefaultRules()).Score(input.Profile, input.Today, input.Targets),
		Trends: trends.NewAnalyzer(trends.DefaultThresholds()).Analyze(trends.NewSeries(days), input.Profile),
	}

	encoder := json.NewEncoder(out)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(output)
}
