package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/azfstudy/qextract/internal/extract"
	"github.com/azfstudy/qextract/internal/sink"
	"github.com/azfstudy/qextract/internal/source"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qextract",
		Short: "Convert a linearized exam document into a structured question bank",
	}

	ext := extractCmd()
	root.AddCommand(ext)

	// Make "extract" the default when no subcommand is given.
	root.RunE = ext.RunE
	root.Args = ext.Args

	// Register extract flags on root so bare `qextract input.pdf` still works.
	root.Flags().AddFlagSet(ext.Flags())

	return root
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <input>",
		Short: "Extract question records from a PDF or text document",
		Long: `Extract question records from a linearized exam document.

The input may be a PDF file, a plain text file, or - for stdin. Each
question yields an id, a stem and four options A-D, with A marked
correct per the source document's convention. Blocks that cannot be
extracted are reported, not fatal.`,
		Args: cobra.ExactArgs(1),
		RunE: runExtract,
	}
	f := cmd.Flags()
	f.StringP("output", "o", "", "Output JSON path (default: questions.json beside the input, - for stdout)")
	f.String("csv", "", "Also write a CSV file to this path")
	f.String("bank", "", "Also write a SQLite question-bank file to this path")
	f.String("report", "", "Extraction report path (default: derived from the output path)")
	f.String("mode", extract.ModeGuarded, "Boundary detection strategy (guarded, naive)")
	f.Int("min-stem", 10, "Minimum question stem length in characters")
	f.Int("lookahead", 20, "Guarded mode: lines scanned for the A-D sequence")
	f.Float64("length-ratio", 2.0, "Guarded mode: candidate-to-option length ratio treated as prose")
	f.IntP("expected", "n", 289, "Expected total question count (0 disables missing-ID accounting)")
	f.StringSlice("strip", nil, "Extra boilerplate patterns to strip (repeatable)")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("QEXTRACT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("qextract")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/qextract")
	v.AddConfigPath("/etc/qextract")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

func runExtract(cmd *cobra.Command, args []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	input := args[0]

	loader := source.Loader{PDF: source.PDFExtractor{}}
	text, err := loader.Load(input)
	if err != nil {
		return err
	}
	slog.Info("document loaded", "input", input, "chars", len(text))

	cfg := extract.Config{
		Mode:             v.GetString("mode"),
		MinStemLen:       v.GetInt("min-stem"),
		Lookahead:        v.GetInt("lookahead"),
		LengthRatio:      v.GetFloat64("length-ratio"),
		ExpectedTotal:    v.GetInt("expected"),
		ExtraBoilerplate: v.GetStringSlice("strip"),
	}
	extractor, err := extract.New(cfg)
	if err != nil {
		return fmt.Errorf("configure extractor: %w", err)
	}

	res := extractor.Extract(text)

	for _, skip := range res.Skips {
		slog.Warn("skipped question",
			"id", skip.ID,
			"reason", skip.Reason,
			"answers_found", skip.AnswersFound,
		)
	}

	missing := res.MissingIDs(cfg.ExpectedTotal)
	slog.Info("extraction complete",
		"extracted", len(res.Records),
		"skipped", len(res.Skips),
		"expected", cfg.ExpectedTotal,
		"missing", len(missing),
	)
	if len(missing) > 0 {
		slog.Warn("missing question IDs", "ids", extract.FormatRanges(missing))
	}
	if len(res.Records) > 0 {
		sample := res.Records[0]
		slog.Debug("sample question",
			"id", sample.ID,
			"question", sample.Question,
			"correct", sample.Answers[0].Text,
		)
	}

	outPath := v.GetString("output")
	if outPath == "" {
		if input == "-" {
			outPath = "questions.json"
		} else {
			outPath = filepath.Join(filepath.Dir(input), "questions.json")
		}
	}
	if err := sink.WriteJSON(outPath, res.Records); err != nil {
		return err
	}
	if outPath != "-" {
		slog.Info("wrote questions", "path", outPath)
	}

	if csvPath := v.GetString("csv"); csvPath != "" {
		if err := sink.WriteCSV(csvPath, res.Records); err != nil {
			return err
		}
		slog.Info("wrote CSV", "path", csvPath)
	}

	if bankPath := v.GetString("bank"); bankPath != "" {
		bank, err := sink.OpenBank(bankPath)
		if err != nil {
			return err
		}
		defer bank.Close()
		if err := bank.WriteAll(res.Records); err != nil {
			return fmt.Errorf("write question bank: %w", err)
		}
		slog.Info("wrote question bank", "path", bankPath)
	}

	reportPath := v.GetString("report")
	if reportPath == "" {
		reportPath = defaultReportPath(outPath)
	}
	if err := sink.SaveReport(reportPath, res, cfg.ExpectedTotal); err != nil {
		return err
	}
	slog.Info("wrote extraction report", "path", reportPath)

	return nil
}

// defaultReportPath derives the report location from the JSON output
// path, e.g. questions.json -> questions_extraction_log.txt.
func defaultReportPath(outPath string) string {
	if outPath == "-" {
		return "extraction_log.txt"
	}
	base := strings.TrimSuffix(outPath, filepath.Ext(outPath))
	return base + "_extraction_log.txt"
}
