package cmd

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/dev-shimada/csv-relativize-tool/internal/csv"
	"github.com/dev-shimada/csv-relativize-tool/internal/relativize"
	"github.com/dev-shimada/csv-relativize-tool/internal/summary"
	"github.com/spf13/cobra"
)

var (
	verbose       bool
	humanReadable bool
)

var rootCmd = &cobra.Command{
	Use:   "relativize [file]",
	Short: "A CLI tool to rewrite a CSV's measurement columns as ratios to a baseline column.",
	Long: `Reads a CSV file whose second column holds a reference value, divides every
other measurement column by the first data row's reference value, drops the
reference column and writes the result to standard output.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// ログレベルの設定
		var programLevel = new(slog.LevelVar)
		switch {
		case verbose:
			programLevel.Set(slog.LevelDebug)
		default:
			programLevel.Set(slog.LevelInfo)
		}
		handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: programLevel})
		logger := slog.New(handler)
		slog.SetDefault(logger)
		// logをslog経由で出力
		log.SetOutput(slog.NewLogLogger(handler, slog.LevelInfo).Writer())

		csvPath := args[0]
		if strings.HasPrefix(csvPath, "s3://") {
			splitedPath := strings.Split(strings.TrimPrefix(csvPath, "s3://"), "/")
			// パスを上書き
			csvPath = fmt.Sprintf("/tmp/%s", splitedPath[len(splitedPath)-1])
			sess := session.Must(session.NewSession())
			downloader := s3manager.NewDownloader(sess)
			f, err := os.Create(csvPath)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to create file: %v\n", err))
				os.Exit(1)
			}
			n, err := downloader.Download(f, &s3.GetObjectInput{
				Bucket: aws.String(splitedPath[0]),
				Key:    aws.String(strings.Join(splitedPath[1:], "/")),
			})
			if err != nil {
				slog.Error(fmt.Sprintf("failed to download file from S3: %v\n", err))
				os.Exit(1)
			}
			slog.Debug(fmt.Sprintf("file downloaded, %d bytes", n))
		}

		if err := run(csvPath, os.Stdout, os.Stderr); err != nil {
			slog.Error(fmt.Sprintf("failed to relativize csv: %v", err))
			os.Exit(1)
		}
	},
}

// run opens path, relativizes it to stdout and, when -H is set, writes the
// ratio summary to stderr. The caller owns the fatal exit.
func run(path string, stdout, stderr io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return &relativize.FileAccessError{Path: path, Err: err}
	}
	defer func() { _ = file.Close() }()

	data, err := csv.Load(file)
	if err != nil {
		return fmt.Errorf("failed to read csv: %w", err)
	}

	res, err := relativize.Run(data, stdout)
	if err != nil {
		return err
	}
	slog.Debug(fmt.Sprintf("relativized %d row(s)", len(res.Ratios)))

	if humanReadable {
		cols, err := summary.Compute(res.Header, res.Ratios)
		if err != nil {
			return fmt.Errorf("failed to summarize ratios: %w", err)
		}
		summary.Render(stderr, cols)
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error(fmt.Sprintf("command execution failed: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().BoolVarP(&humanReadable, "human-readable", "H", false, "Print a ratio summary table to stderr")
}
